package term

import (
	"strings"

	"github.com/tshort/redex/symtab"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Render renders a terminal to its canonical text form, resolving
// symbol/variable names through in.
func (t Terminal) Render(in *symtab.Interner) string {
	switch t.kind {
	case SymbolKind:
		return in.Lookup(t.sym)
	case VariableKind:
		if t.vkind == Distinct {
			return "$$" + in.Lookup(t.sym)
		}
		return "$" + in.Lookup(t.sym)
	case ParensKind:
		return "(" + t.group.Render(in) + ")"
	}
	return ""
}

// Render renders an expression, separating terminals by a single
// space.
func (e Expression) Render(in *symtab.Interner) string {
	parts := make([]string, len(e))
	for i, t := range e {
		parts[i] = t.Render(in)
	}
	return strings.Join(parts, " ")
}

// Render renders a rule as "LHS -> RHS".
func (r Rule) Render(in *symtab.Interner) string {
	return r.LHS.Render(in) + " -> " + r.RHS.Render(in)
}

// Render renders a statement; a no-op renders as the empty string.
func (s Statement) Render(in *symtab.Interner) string {
	if s.IsNoop() {
		return ""
	}
	return s.Rule.Render(in)
}

// Render renders a full item: label (with a trailing space) if
// present, then the statement, then the comment. A comment following
// a label-less no-op gets no leading space; otherwise a single space
// precedes it.
func (it Item) Render(in *symtab.Interner) string {
	var b strings.Builder
	if it.Label != nil {
		b.WriteString("[")
		b.WriteString(string(*it.Label))
		b.WriteString("] ")
	}
	stmtText := it.Stmt.Render(in)
	b.WriteString(stmtText)
	if it.Comment != nil {
		if !(it.Stmt.IsNoop() && it.Label == nil) {
			b.WriteString(" ")
		}
		b.WriteString("//")
		b.WriteString(string(*it.Comment))
	}
	return b.String()
}
