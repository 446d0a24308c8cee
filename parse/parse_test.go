package parse

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/tshort/redex/symtab"
	"github.com/tshort/redex/term"
)

func TestStatementSimpleRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "redex.parse")
	defer teardown()
	in := symtab.New()
	it, err := Statement("a -> b", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Stmt.Kind != term.RewriteStatement {
		t.Fatalf("expected a rewrite statement")
	}
	if got := it.Render(in); got != "a -> b" {
		t.Errorf("Render() = %q, want %q", got, "a -> b")
	}
}

func TestStatementEmptyLineIsNoop(t *testing.T) {
	in := symtab.New()
	it, err := Statement("", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !it.Stmt.IsNoop() {
		t.Errorf("expected a no-op statement for an empty line")
	}
}

func TestStatementCommentOnlyIsNoop(t *testing.T) {
	in := symtab.New()
	it, err := Statement("// just a remark", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !it.Stmt.IsNoop() {
		t.Errorf("expected a no-op statement")
	}
	if it.Comment == nil || string(*it.Comment) != " just a remark" {
		t.Errorf("unexpected comment: %v", it.Comment)
	}
}

func TestStatementLabeledRuleWithComment(t *testing.T) {
	in := symtab.New()
	it, err := Statement("[step1] a -> b // explains it", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Label == nil || string(*it.Label) != "step1" {
		t.Errorf("unexpected label: %v", it.Label)
	}
	if it.Comment == nil || string(*it.Comment) != " explains it" {
		t.Errorf("unexpected comment: %v", it.Comment)
	}
}

func TestStatementReservedSymbolOnEmptyLHS(t *testing.T) {
	in := symtab.New()
	_, err := Statement("-> x", in)
	if err == nil {
		t.Fatalf("expected a ReservedSymbol error for an empty LHS before \"->\"")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Kind != ReservedSymbol {
		t.Errorf("expected ReservedSymbol, got %v", perr.Kind)
	}
}

func TestStatementArrowTerminatesLHSWithoutError(t *testing.T) {
	in := symtab.New()
	it, err := Statement("a b -> c", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(it.Stmt.Rule.LHS) != 2 {
		t.Errorf("expected a two-terminal LHS, got %v", it.Stmt.Rule.LHS)
	}
}

func TestExpressionEmptyParens(t *testing.T) {
	in := symtab.New()
	expr, rest, err := Expression("()", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rest != "" {
		t.Errorf("expected no remainder, got %q", rest)
	}
	if len(expr) != 1 || expr[0].Kind() != term.ParensKind {
		t.Fatalf("expected a single empty Parens terminal, got %v", expr)
	}
	if len(expr[0].Group()) != 0 {
		t.Errorf("expected an empty group, got %v", expr[0].Group())
	}
}

func TestExpressionNestedParens(t *testing.T) {
	in := symtab.New()
	expr, _, err := Expression("(a (b c))", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expr) != 1 {
		t.Fatalf("expected one top-level terminal, got %v", expr)
	}
	group := expr[0].Group()
	if len(group) != 2 {
		t.Fatalf("expected two terminals inside outer parens, got %v", group)
	}
	inner := group[1].Group()
	if len(inner) != 2 {
		t.Fatalf("expected two terminals inside inner parens, got %v", inner)
	}
}

func TestExpressionVariables(t *testing.T) {
	in := symtab.New()
	expr, _, err := Expression("$x + $$y", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expr) != 3 {
		t.Fatalf("expected 3 terminals, got %v", expr)
	}
	if expr[0].Kind() != term.VariableKind || expr[0].VarKind() != term.Any {
		t.Errorf("expected an Any variable, got %v", expr[0])
	}
	if expr[2].Kind() != term.VariableKind || expr[2].VarKind() != term.Distinct {
		t.Errorf("expected a Distinct variable, got %v", expr[2])
	}
}

func TestExpressionUnterminatedParens(t *testing.T) {
	in := symtab.New()
	_, _, err := Expression("(a b", in)
	if err == nil {
		t.Fatalf("expected an UnexpectedEoF error")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != UnexpectedEoF {
		t.Fatalf("expected UnexpectedEoF, got %v", err)
	}
}

func TestStatementUnterminatedLabel(t *testing.T) {
	in := symtab.New()
	_, err := Statement("[step1 a -> b", in)
	if err == nil {
		t.Fatalf("expected an UnexpectedEoF error for an unterminated label")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != UnexpectedEoF {
		t.Fatalf("expected UnexpectedEoF, got %v", err)
	}
}

func TestStatementMissingArrow(t *testing.T) {
	in := symtab.New()
	_, err := Statement("a b c", in)
	if err == nil {
		t.Fatalf("expected an ExpectedToken error for a missing arrow")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != ExpectedToken {
		t.Fatalf("expected ExpectedToken, got %v", err)
	}
}

func TestStatementRenderRoundTrip(t *testing.T) {
	in := symtab.New()
	src := "[r1] $x + 0 -> $x // identity"
	it, err := Statement(src, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := it.Render(in); got != src {
		t.Errorf("Render() round trip = %q, want %q", got, src)
	}
}
