package session

import (
	"strings"

	"github.com/tshort/redex/parse"
	"github.com/tshort/redex/rewrite"
	"github.com/tshort/redex/symtab"
	"github.com/tshort/redex/term"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// querySymbol is the single RHS symbol text that marks an item as a
// query rather than a rule (§4.7 "Query handling").
const querySymbol = "?"

// Session owns an interner and a rule base: the shared state of a
// running interpreter, per §5. A Session is not safe for concurrent
// use; a host embedding it across goroutines must provide its own
// mutual exclusion — the core offers none.
type Session struct {
	Interner *symtab.Interner
	Rules    *rewrite.RuleBase
}

// New creates an empty Session.
func New() *Session {
	return &Session{
		Interner: symtab.New(),
		Rules:    rewrite.NewRuleBase(),
	}
}

// Load parses source line by line and extends the rule base with
// every rewrite statement found. No-op lines are discarded silently;
// parse errors are logged via the package tracer and do not abort the
// load. Query lines (RHS "?") are evaluated but their result is
// discarded — Load is a bulk seeding operation, not an interactive one.
func (s *Session) Load(source string) {
	for _, line := range strings.Split(source, "\n") {
		if _, err := s.ExecuteLine(line); err != nil {
			tracer().Errorf("%s", err)
		}
	}
}

// ExecResult describes the effect of executing one line of source.
type ExecResult struct {
	IsNoop     bool
	IsQuery    bool
	Echo       string   // canonical rendering of a non-query item
	QuerySteps []string // one entry per emitted intermediate form, for a query
}

// ExecuteLine parses and executes one line, per §6's line grammar: a
// no-op is discarded, a query reduces its LHS to normal form without
// extending the rule base, and any other item extends the rule base
// and is echoed back in canonical form.
func (s *Session) ExecuteLine(line string) (ExecResult, error) {
	item, err := parse.Statement(line, s.Interner)
	if err != nil {
		return ExecResult{}, err
	}
	if item.Stmt.IsNoop() {
		return ExecResult{IsNoop: true}, nil
	}
	rule := item.Stmt.Rule
	if s.isQuery(rule.RHS) {
		expr := rule.LHS.Clone()
		var steps []string
		for rewrite.ReduceOnce(&expr, s.Rules) {
			steps = append(steps, expr.Render(s.Interner))
		}
		if len(steps) == 0 {
			// No rule ever applied: report the unchanged expression
			// rather than silence, so a query always yields output.
			steps = []string{expr.Render(s.Interner)}
		}
		return ExecResult{IsQuery: true, QuerySteps: steps}, nil
	}
	s.Rules.Add(rule)
	return ExecResult{Echo: item.Render(s.Interner)}, nil
}

func (s *Session) isQuery(rhs term.Expression) bool {
	return len(rhs) == 1 &&
		rhs[0].Kind() == term.SymbolKind &&
		s.Interner.Lookup(rhs[0].Handle()) == querySymbol
}

// ReduceOnce is the embedded one-shot reduction entry point (§6): it
// parses exprText, performs a single reduction step against the
// current rule base, and returns the unparsed result. A parse failure
// returns the literal string "<ERR>" and logs via the package tracer,
// matching trs_reduce_once in the original implementation.
func (s *Session) ReduceOnce(exprText string) string {
	expr, _, err := parse.Expression(exprText, s.Interner)
	if err != nil {
		tracer().Errorf("%s", err)
		return "<ERR>"
	}
	rewrite.ReduceOnce(&expr, s.Rules)
	return expr.Render(s.Interner)
}
