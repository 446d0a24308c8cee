package rewrite

import (
	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/tshort/redex/symtab"
	"github.com/tshort/redex/term"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Binding associates a pattern variable with the subject terminal it
// matched. The terminal is the subject's own value, not a copy (§5:
// matching borrows into the subject).
type Binding struct {
	Var  symtab.Handle
	Term term.Terminal
}

// Bindings is an ordered list of Binding, in the order variables were
// first bound.
type Bindings []Binding

// lookup returns the terminal bound to v, if any.
func (bs Bindings) lookup(v symtab.Handle) (term.Terminal, bool) {
	for _, b := range bs {
		if b.Var == v {
			return b.Term, true
		}
	}
	return term.Terminal{}, false
}

// termSnapshot is an exported, structurally-equivalent mirror of a
// Terminal, built purely from its exported accessors. structhash
// hashes exported struct fields via reflection; Terminal's own fields
// are unexported, so matching is hashed through this mirror instead
// of the type directly.
type termSnapshot struct {
	Kind    term.Kind
	Handle  symtab.Handle
	VarKind term.VarKind
	Group   []termSnapshot
}

func snapshot(t term.Terminal) termSnapshot {
	if t.Kind() == term.ParensKind {
		group := t.Group()
		subs := make([]termSnapshot, len(group))
		for i, e := range group {
			subs[i] = snapshot(e)
		}
		return termSnapshot{Kind: t.Kind(), Group: subs}
	}
	return termSnapshot{Kind: t.Kind(), Handle: t.Handle(), VarKind: t.VarKind()}
}

// termDigest returns a stable hash key for t, for use as a treeset
// member. The hash is an optimization only: a collision is resolved
// by falling back to Terminal.Equal (see boundSet.contains), so
// correctness never depends on structhash's collision resistance.
func termDigest(t term.Terminal) string {
	h, err := structhash.Hash(snapshot(t), 1)
	if err != nil {
		// structhash only errors on unhashable types; termSnapshot is
		// a plain value type, so this cannot happen.
		panic(err)
	}
	return h
}

// boundSet tracks the terminals already bound to some variable during
// a single match attempt, to enforce distinctness across variables
// (§4.5 rule 4). It is a treeset of digests for O(log n) lookup, with
// the underlying terminals kept alongside for exact collision
// resolution.
type boundSet struct {
	digests *treeset.Set
	terms   []term.Terminal
}

func newBoundSet() *boundSet {
	return &boundSet{digests: treeset.NewWith(utils.StringComparator)}
}

func (bs *boundSet) contains(t term.Terminal) bool {
	d := termDigest(t)
	if !bs.digests.Contains(d) {
		return false
	}
	for _, known := range bs.terms {
		if known.Equal(t) {
			return true
		}
	}
	return false
}

func (bs *boundSet) add(t term.Terminal) {
	bs.digests.Add(termDigest(t))
	bs.terms = append(bs.terms, t)
}

// Match attempts to match pattern against subject, per §4.5. On
// success it returns the witnessing bindings and true; on failure it
// returns nil, false, with no partial bindings observable by the
// caller.
func Match(pattern, subject term.Expression) (Bindings, bool) {
	bindings, _, ok := matchExpr(pattern, subject, nil, newBoundSet())
	if !ok {
		return nil, false
	}
	return bindings, true
}

func matchExpr(pattern, subject term.Expression, bindings Bindings, bound *boundSet) (Bindings, *boundSet, bool) {
	if len(pattern) != len(subject) {
		return nil, nil, false
	}
	for i := range pattern {
		var ok bool
		bindings, bound, ok = matchTerminal(pattern[i], subject[i], bindings, bound)
		if !ok {
			return nil, nil, false
		}
	}
	return bindings, bound, true
}

func matchTerminal(p, s term.Terminal, bindings Bindings, bound *boundSet) (Bindings, *boundSet, bool) {
	switch p.Kind() {
	case term.SymbolKind:
		if s.Kind() != term.SymbolKind || p.Handle() != s.Handle() {
			return nil, nil, false
		}
		return bindings, bound, true
	case term.ParensKind:
		if s.Kind() != term.ParensKind {
			return nil, nil, false
		}
		return matchExpr(p.Group(), s.Group(), bindings, bound)
	case term.VariableKind:
		if prior, ok := bindings.lookup(p.Handle()); ok {
			if !prior.Equal(s) {
				return nil, nil, false
			}
			return bindings, bound, true
		}
		if bound.contains(s) {
			return nil, nil, false
		}
		bindings = append(bindings, Binding{Var: p.Handle(), Term: s})
		bound.add(s)
		return bindings, bound, true
	}
	return nil, nil, false
}
