/*
Command redexrepl is an interactive shell for the redex term-rewriting
language: enter rules to extend the rule base, or a query ("expr ->
?") to reduce an expression to normal form, printing each intermediate
form. An optional file argument is loaded before switching to
standard input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'redex.repl'.
func tracer() tracing.Trace {
	return tracing.Select("redex.repl")
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
