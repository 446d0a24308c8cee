/*
Package symtab implements a symbol interner: a bidirectional mapping
between textual atoms and small, stable integer handles.

Handles are only meaningful relative to the Interner instance that
issued them; there is no cross-instance meaning, and no attempt is
made to detect a handle used with the wrong Interner — that is a
programmer error, not a recoverable condition.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symtab

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'redex.symtab'.
func tracer() tracing.Trace {
	return tracing.Select("redex.symtab")
}
