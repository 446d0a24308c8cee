/*
Package rewrite implements pattern matching, template interpolation
and single-step term reduction over the term model in package term,
plus an ordered rule base. This is the counterpart of the teacher's
termr package: RuleBase/Match/Interpolate map onto
termr.RewriteRule/termr.Match/termr.RewriteWith.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rewrite

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'redex.rewrite'.
func tracer() tracing.Trace {
	return tracing.Select("redex.rewrite")
}
