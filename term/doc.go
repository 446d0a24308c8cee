/*
Package term implements the tree-shaped term model shared by the
parser, matcher, interpolator and reducer: terminals (symbols,
variables, parenthesized groups), expressions (sequences of
terminals), rewrite rules, and parsed items.

Values in this package are immutable by convention: construction,
cloning, equality and rendering to canonical text (Render) are the
only operations defined here. Rewriting
replaces values rather than mutating them in place.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package term

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'redex.term'.
func tracer() tracing.Trace {
	return tracing.Select("redex.term")
}
