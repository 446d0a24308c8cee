package rewrite

import (
	"github.com/tshort/redex/term"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// ReduceOnce performs a single reduction step on expr against rb, per
// §4.7: descend first (leftmost, innermost-by-grouping), then try to
// apply a rule at the top level. It reports whether a step happened;
// on success, *expr is replaced in place by the result of that step.
func ReduceOnce(expr *term.Expression, rb *RuleBase) bool {
	if len(*expr) > 1 {
		for i, t := range *expr {
			if reduced, ok := reduceTerminal(t, rb); ok {
				(*expr)[i] = reduced
				return true
			}
		}
	}
	matches := rb.FindMatches(*expr)
	if len(matches) == 0 {
		return false
	}
	m := matches[0]
	*expr = Interpolate(m.Rule.RHS, m.Bindings)
	return true
}

// reduceTerminal attempts a sub-reduction at a single terminal
// position, per the "singleton-expression redex wrapping" design
// note: a Symbol or Variable is wrapped in a one-element expression
// before the attempt, so single-atom rules can fire on isolated
// positions.
func reduceTerminal(t term.Terminal, rb *RuleBase) (term.Terminal, bool) {
	var sub term.Expression
	if t.Kind() == term.ParensKind {
		sub = t.Group().Clone()
	} else {
		sub = term.Expression{t}
	}
	if !ReduceOnce(&sub, rb) {
		return term.Terminal{}, false
	}
	if len(sub) == 1 {
		return sub[0], true
	}
	return term.Parens(sub), true
}
