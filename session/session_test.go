package session

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/tshort/redex/parse"
)

// runLines executes each line of source in turn and returns the
// QuerySteps of the last query encountered, mirroring how the CLI
// drives a Session line by line.
func runLines(t *testing.T, s *Session, lines ...string) []string {
	t.Helper()
	var lastQuery []string
	for _, line := range lines {
		res, err := s.ExecuteLine(line)
		if err != nil {
			t.Fatalf("ExecuteLine(%q): %v", line, err)
		}
		if res.IsQuery {
			lastQuery = res.QuerySteps
		}
	}
	return lastQuery
}

func TestScenarioPeanoSuccessorAddition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "redex.session")
	defer teardown()
	s := New()
	steps := runLines(t, s,
		"$x + 0 -> $x",
		"$x + (S $y) -> (S $x) + $y",
		"0 + (S (S 0)) -> ?",
	)
	if len(steps) == 0 {
		t.Fatalf("expected at least one query step")
	}
	if got := steps[len(steps)-1]; got != "S (S 0)" {
		t.Errorf("final form = %q, want %q", got, "S (S 0)")
	}
}

func TestScenarioIdentityThroughGroups(t *testing.T) {
	s := New()
	steps := runLines(t, s,
		"($x) -> $x",
		"(((a)))    -> ?",
	)
	if len(steps) == 0 {
		t.Fatalf("expected at least one query step")
	}
	if got := steps[len(steps)-1]; got != "a" {
		t.Errorf("final form = %q, want %q", got, "a")
	}
}

func TestScenarioRuleOrderTieBreak(t *testing.T) {
	s := New()
	steps := runLines(t, s,
		"a -> b",
		"a -> c",
		"a -> ?",
	)
	if len(steps) == 0 {
		t.Fatalf("expected at least one query step")
	}
	if got := steps[0]; got != "b" {
		t.Errorf("first-step output = %q, want %q", got, "b")
	}
}

func TestScenarioLinearityRejection(t *testing.T) {
	s := New()
	steps := runLines(t, s,
		"$x + $x -> 0",
		"a + b -> ?",
	)
	if len(steps) != 1 || steps[0] != "a + b" {
		t.Errorf("steps = %v, want [\"a + b\"] (rule does not apply)", steps)
	}
}

func TestScenarioNoopAndComment(t *testing.T) {
	s := New()
	steps := runLines(t, s,
		"// a comment",
		"  ",
		"foo -> bar",
		"foo -> ?",
	)
	if len(steps) == 0 {
		t.Fatalf("expected at least one query step")
	}
	if got := steps[len(steps)-1]; got != "bar" {
		t.Errorf("final form = %q, want %q", got, "bar")
	}
}

func TestScenarioReservedSymbol(t *testing.T) {
	s := New()
	_, err := s.ExecuteLine("-> x")
	if err == nil {
		t.Fatalf("expected a reserved-symbol parse error")
	}
	perr, ok := err.(*parse.Error)
	if !ok || perr.Kind != parse.ReservedSymbol {
		t.Fatalf("expected a ReservedSymbol parse error, got %v", err)
	}
	// The session must remain usable after a parse error.
	if _, err := s.ExecuteLine("a -> b"); err != nil {
		t.Errorf("session did not continue after a parse error: %v", err)
	}
}

func TestLoadDiscardsNoopsAndLogsErrors(t *testing.T) {
	s := New()
	s.Load("// header\n\na -> b\n-> bad\nc -> d")
	if s.Rules.Len() != 2 {
		t.Errorf("expected 2 rules loaded, got %d", s.Rules.Len())
	}
}

func TestSessionReduceOnce(t *testing.T) {
	s := New()
	s.Load("a -> b")
	if got := s.ReduceOnce("a"); got != "b" {
		t.Errorf("ReduceOnce(%q) = %q, want %q", "a", got, "b")
	}
}

func TestSessionReduceOnceParseError(t *testing.T) {
	s := New()
	if got := s.ReduceOnce("-> x"); got != "<ERR>" {
		t.Errorf("ReduceOnce on invalid input = %q, want %q", got, "<ERR>")
	}
}
