/*
Package parse implements the line-oriented grammar for rewrite-system
source: labels, rewrite rules, queries, no-ops and trailing comments.
It is a straightforward hand-written recursive-descent parser; the
entry points are Statement (one full line) and Expression (a bare
expression).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'redex.parse'.
func tracer() tracing.Trace {
	return tracing.Select("redex.parse")
}
