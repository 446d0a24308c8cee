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

// RuleBase is an ordered list of rules; order is the authoritative
// tie-breaker when multiple rules match the same redex (§4.7).
type RuleBase struct {
	rules []term.Rule
}

// NewRuleBase creates an empty rule base.
func NewRuleBase() *RuleBase {
	return &RuleBase{}
}

// Add appends a rule, extending the base after its existing rules.
func (rb *RuleBase) Add(r term.Rule) {
	rb.rules = append(rb.rules, r)
}

// Len returns the number of rules in the base.
func (rb *RuleBase) Len() int {
	return len(rb.rules)
}

// RuleMatch pairs a matching rule with the bindings that witnessed it.
type RuleMatch struct {
	Rule     term.Rule
	Bindings Bindings
}

// FindMatches returns every rule in the base whose LHS matches expr,
// in rule-base order, together with the bindings each match produced.
// ReduceOnce only ever consumes the first; FindMatches is exposed as
// an extension point for rule-order introspection.
func (rb *RuleBase) FindMatches(expr term.Expression) []RuleMatch {
	var out []RuleMatch
	for _, r := range rb.rules {
		if bindings, ok := Match(r.LHS, expr); ok {
			out = append(out, RuleMatch{Rule: r, Bindings: bindings})
		}
	}
	return out
}
