package symtab

import (
	"github.com/emirpasic/gods/maps/hashbidimap"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Handle is an opaque small integer identifying an interned string.
// Handles are comparable in O(1) and are stable for the lifetime of
// the Interner that issued them.
type Handle int

// Interner maintains an ordered, append-only sequence of distinct
// strings. The handle of a string is its first-insertion index.
//
// The zero value is not ready to use; call New.
type Interner struct {
	table *hashbidimap.Map // string <-> Handle
	next  Handle
}

// New creates an empty Interner.
func New() *Interner {
	return &Interner{
		table: hashbidimap.New(),
	}
}

// Intern returns the handle for s, interning it if this is the first
// time s has been seen. Interning is case-sensitive and
// whitespace-sensitive: "+" and "plus" are distinct atoms, and a
// string containing embedded whitespace may be interned when
// constructed programmatically even though the parser can never
// produce such a token itself.
func (in *Interner) Intern(s string) Handle {
	if v, found := in.table.Get(s); found {
		return v.(Handle)
	}
	h := in.next
	in.table.Put(s, h)
	in.next++
	tracer().Debugf("interned %q as %d", s, h)
	return h
}

// Lookup returns the string associated with h. Behavior is undefined
// (and, in this implementation, panics) if h was not issued by this
// Interner.
func (in *Interner) Lookup(h Handle) string {
	s, found := in.table.GetKey(h)
	if !found {
		panic("symtab: handle not issued by this interner")
	}
	return s.(string)
}

// Len returns the number of distinct strings interned so far.
func (in *Interner) Len() int {
	return in.table.Size()
}
