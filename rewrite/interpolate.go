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

// Interpolate substitutes bindings into template, per §4.6: symbols
// pass through unchanged, parens recurse, and a bound variable is
// replaced by a clone of its bound terminal; an unbound variable
// passes through unchanged (it is not an error, §7).
//
// If the resulting expression has length 1 and its sole terminal is a
// Parens, the wrapper is stripped. This unwrapping is applied once at
// this call's own level, not recursively into nested Parens produced
// along the way.
func Interpolate(template term.Expression, bindings Bindings) term.Expression {
	out := make(term.Expression, len(template))
	for i, t := range template {
		out[i] = interpolateTerminal(t, bindings)
	}
	if len(out) == 1 && out[0].Kind() == term.ParensKind {
		return out[0].Group()
	}
	return out
}

func interpolateTerminal(t term.Terminal, bindings Bindings) term.Terminal {
	switch t.Kind() {
	case term.SymbolKind:
		return t
	case term.ParensKind:
		return term.Parens(Interpolate(t.Group(), bindings))
	case term.VariableKind:
		if bound, ok := bindings.lookup(t.Handle()); ok {
			return bound.Clone()
		}
		return t
	}
	return t
}
