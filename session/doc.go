/*
Package session is the small embedding facade described in §6 of the
specification: a host creates a Session from source text and then
drives single reduction steps through it. It mirrors the teacher's
pattern of a thin facade package consumed directly by a cmd/ binary
(compare terex/termr's relationship to terex/terexlang/trepl).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package session

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'redex.session'.
func tracer() tracing.Trace {
	return tracing.Select("redex.session")
}
