package term

import (
	"github.com/tshort/redex/symtab"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Kind distinguishes the three terminal variants.
type Kind int

//go:generate stringer -type Kind
const (
	SymbolKind Kind = iota
	VariableKind
	ParensKind
)

// VarKind is the binding discipline of a Variable terminal.
//
// Distinct is parsed and round-tripped but, per spec, matches
// identically to Any; its semantics are reserved for future use.
type VarKind int

const (
	Any VarKind = iota
	Distinct
)

func (k VarKind) String() string {
	if k == Distinct {
		return "Distinct"
	}
	return "Any"
}

// Terminal is a tagged variant: exactly one of a Symbol, a Variable,
// or a parenthesized sub-Expression.
type Terminal struct {
	kind  Kind
	sym   symtab.Handle // Symbol and Variable
	vkind VarKind       // Variable only
	group Expression    // Parens only
}

// Symbol constructs a literal-atom terminal.
func Symbol(h symtab.Handle) Terminal {
	return Terminal{kind: SymbolKind, sym: h}
}

// Variable constructs a pattern-variable terminal.
func Variable(h symtab.Handle, vkind VarKind) Terminal {
	return Terminal{kind: VariableKind, sym: h, vkind: vkind}
}

// Parens constructs an explicitly grouped sub-expression terminal.
func Parens(e Expression) Terminal {
	return Terminal{kind: ParensKind, group: e}
}

// Kind returns which variant t is.
func (t Terminal) Kind() Kind { return t.kind }

// Handle returns the interned handle of a Symbol or Variable
// terminal. Calling it on a Parens terminal returns the zero handle.
func (t Terminal) Handle() symtab.Handle { return t.sym }

// VarKind returns the binding discipline of a Variable terminal.
func (t Terminal) VarKind() VarKind { return t.vkind }

// Group returns the sub-expression of a Parens terminal.
func (t Terminal) Group() Expression { return t.group }

// Equal implements the structural-equality invariant from §3: equal
// length and pairwise-equal terminals, recursing through Parens.
func (t Terminal) Equal(other Terminal) bool {
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case SymbolKind:
		return t.sym == other.sym
	case VariableKind:
		return t.sym == other.sym && t.vkind == other.vkind
	case ParensKind:
		return t.group.Equal(other.group)
	}
	return false
}

// Clone deep-copies a terminal, including nested Parens groups.
func (t Terminal) Clone() Terminal {
	if t.kind == ParensKind {
		return Parens(t.group.Clone())
	}
	return t
}

// Expression is an ordered sequence of terminals.
type Expression []Terminal

// Equal reports whether two expressions have equal length and
// pairwise-equal terminals.
func (e Expression) Equal(other Expression) bool {
	if len(e) != len(other) {
		return false
	}
	for i := range e {
		if !e[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Clone deep-copies an expression.
func (e Expression) Clone() Expression {
	if e == nil {
		return nil
	}
	out := make(Expression, len(e))
	for i, t := range e {
		out[i] = t.Clone()
	}
	return out
}

// Rule is a pair (LHS pattern, RHS template).
type Rule struct {
	LHS Expression
	RHS Expression
}

// Clone deep-copies a rule.
func (r Rule) Clone() Rule {
	return Rule{LHS: r.LHS.Clone(), RHS: r.RHS.Clone()}
}

// StatementKind distinguishes a no-op line from a rewrite rule.
type StatementKind int

const (
	NoopStatement StatementKind = iota
	RewriteStatement
)

// Statement is a parsed line's payload, before any label/comment.
type Statement struct {
	Kind StatementKind
	Rule Rule // meaningful only when Kind == RewriteStatement
}

// IsNoop reports whether the statement carries no rewrite rule.
func (s Statement) IsNoop() bool {
	return s.Kind == NoopStatement
}

// Label is the optional bracketed name of an Item.
type Label string

// Comment is the optional trailing "// ..." text of an Item,
// excluding the leading "//".
type Comment string

// Item is a fully parsed line: optional label, a statement, and an
// optional trailing comment.
type Item struct {
	Label   *Label
	Stmt    Statement
	Comment *Comment
}
