package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tshort/redex/symtab"
	"github.com/tshort/redex/term"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// cursor walks a single input line, tracking a byte offset used both
// for slicing and for the column index carried by Error. We track
// bytes rather than runes: the corpus this parser is modeled on mixes
// the two inconsistently, and every reserved atom and delimiter in
// this grammar is itself single-byte ASCII, so byte offsets are exact
// for all inputs the grammar can produce without the bug that entails.
type cursor struct {
	s   string
	pos int
}

func (c *cursor) rest() string { return c.s[c.pos:] }

func (c *cursor) eof() bool { return c.pos >= len(c.s) }

func (c *cursor) skipWhitespace() {
	for !c.eof() {
		r, size := utf8.DecodeRuneInString(c.rest())
		if !unicode.IsSpace(r) {
			break
		}
		c.pos += size
	}
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// peekSymbolAtom returns the maximal run of non-whitespace,
// non-'(', non-')' characters starting at the cursor, without
// consuming it. ok is false if the cursor is at EOF or already
// sitting on a character that cannot start such a run.
func (c *cursor) peekSymbolAtom() (string, bool) {
	if c.eof() {
		return "", false
	}
	rest := c.rest()
	idx := strings.IndexFunc(rest, func(r rune) bool {
		return unicode.IsSpace(r) || r == '(' || r == ')'
	})
	if idx == 0 {
		return "", false
	}
	if idx < 0 {
		idx = len(rest)
	}
	return rest[:idx], true
}

// tryVariable attempts a Variable terminal ('$' ['$'] alphanumeric+).
// ok is false (with a nil error) when the cursor isn't on a '$' at
// all; once committed past the '$', a malformed variable is a hard
// error rather than a silent non-match.
func (c *cursor) tryVariable(in *symtab.Interner) (term.Terminal, bool, error) {
	if c.eof() || c.s[c.pos] != '$' {
		return term.Terminal{}, false, nil
	}
	start := c.pos
	c.pos++
	vkind := term.Any
	if !c.eof() && c.s[c.pos] == '$' {
		vkind = term.Distinct
		c.pos++
	}
	nameStart := c.pos
	for !c.eof() {
		r, size := utf8.DecodeRuneInString(c.rest())
		if !isIdentRune(r) {
			break
		}
		c.pos += size
	}
	if c.pos == nameStart {
		return term.Terminal{}, false, &Error{Col: start, Kind: ExpectedToken, Arg: "a variable name"}
	}
	name := c.s[nameStart:c.pos]
	h := in.Intern(name)
	return term.Variable(h, vkind), true, nil
}

// tryParens attempts a Parens terminal: '(' Expression ')'.
func (c *cursor) tryParens(in *symtab.Interner) (term.Terminal, bool, error) {
	if c.eof() || c.s[c.pos] != '(' {
		return term.Terminal{}, false, nil
	}
	openCol := c.pos
	c.pos++
	inner, err := parseExpr(c, in)
	if err != nil {
		return term.Terminal{}, false, err
	}
	c.skipWhitespace()
	if c.eof() || c.s[c.pos] != ')' {
		return term.Terminal{}, false, &Error{Col: openCol, Kind: UnexpectedEoF}
	}
	c.pos++
	return term.Parens(inner), true, nil
}

// trySymbol attempts a SymbolAtom terminal. Per grammar, "->" and
// "//" are excluded from what a SymbolAtom can consume; encountering
// either here is reported as "no terminal starts here" (ok=false,
// err=nil), not as an error — callers decide whether that absence is
// a legitimate end of expression or a reserved-symbol misuse.
func (c *cursor) trySymbol(in *symtab.Interner) (term.Terminal, bool, error) {
	atom, ok := c.peekSymbolAtom()
	if !ok {
		return term.Terminal{}, false, nil
	}
	if atom == "->" || atom == "//" {
		return term.Terminal{}, false, nil
	}
	c.pos += len(atom)
	return term.Symbol(in.Intern(atom)), true, nil
}

func (c *cursor) tryTerminal(in *symtab.Interner) (term.Terminal, bool, error) {
	if t, ok, err := c.tryVariable(in); ok || err != nil {
		return t, ok, err
	}
	if t, ok, err := c.tryParens(in); ok || err != nil {
		return t, ok, err
	}
	return c.trySymbol(in)
}

// parseExprRun accumulates Terminal* greedily but tolerantly: it
// stops, without error, at the first position that begins no valid
// terminal (EOF, a closing ')', or a bare "->"/"//").
func parseExprRun(c *cursor, in *symtab.Interner) (term.Expression, error) {
	var out term.Expression
	for {
		c.skipWhitespace()
		if c.eof() {
			return out, nil
		}
		save := c.pos
		t, ok, err := c.tryTerminal(in)
		if err != nil {
			return nil, err
		}
		if !ok {
			c.pos = save
			return out, nil
		}
		out = append(out, t)
	}
}

// parseExpr parses a full Expression. If the tolerant run above
// accumulates zero terminals and the very next atom is exactly the
// reserved "->" or "//", that is surfaced as a ReservedSymbol error:
// it means the reserved atom was standing in for a terminal that
// never arrived, rather than legitimately terminating a non-empty
// expression.
func parseExpr(c *cursor, in *symtab.Interner) (term.Expression, error) {
	expr, err := parseExprRun(c, in)
	if err != nil {
		return nil, err
	}
	if len(expr) == 0 {
		if atom, ok := c.peekSymbolAtom(); ok && (atom == "->" || atom == "//") {
			return nil, &Error{Col: c.pos, Kind: ReservedSymbol, Arg: atom}
		}
	}
	return expr, nil
}

// Expression parses a single Expression from the start of s. It
// returns the parsed expression and whatever of s was not consumed:
// empty when the whole of s was an expression (trailing whitespace is
// consumed), otherwise the text from the first position that begins no
// terminal, such as "->", "//" or an unmatched ')'.
func Expression(s string, in *symtab.Interner) (term.Expression, string, error) {
	c := &cursor{s: s}
	expr, err := parseExpr(c, in)
	if err != nil {
		return nil, "", err
	}
	return expr, c.rest(), nil
}

func parseLabel(c *cursor) (*term.Label, error) {
	if c.eof() || c.s[c.pos] != '[' {
		return nil, nil
	}
	start := c.pos
	body := c.s[c.pos+1:]
	idx := strings.IndexByte(body, ']')
	if idx < 0 {
		return nil, &Error{Col: start, Kind: UnexpectedEoF}
	}
	name := term.Label(body[:idx])
	c.pos += 1 + idx + 1
	return &name, nil
}

func parseStatement(c *cursor, in *symtab.Interner) (term.Statement, error) {
	c.skipWhitespace()
	if c.eof() || strings.HasPrefix(c.rest(), "//") {
		return term.Statement{Kind: term.NoopStatement}, nil
	}
	lhs, err := parseExpr(c, in)
	if err != nil {
		return term.Statement{}, err
	}
	c.skipWhitespace()
	arrowCol := c.pos
	if !strings.HasPrefix(c.rest(), "->") {
		return term.Statement{}, &Error{Col: arrowCol, Kind: ExpectedToken, Arg: `"->"`}
	}
	c.pos += 2
	c.skipWhitespace()
	rhs, err := parseExpr(c, in)
	if err != nil {
		return term.Statement{}, err
	}
	return term.Statement{Kind: term.RewriteStatement, Rule: term.Rule{LHS: lhs, RHS: rhs}}, nil
}

// Statement parses one full input line into an Item: an optional
// label, a no-op or rewrite statement, and an optional trailing
// comment.
func Statement(line string, in *symtab.Interner) (term.Item, error) {
	c := &cursor{s: line}
	label, err := parseLabel(c)
	if err != nil {
		return term.Item{}, err
	}
	stmt, err := parseStatement(c, in)
	if err != nil {
		return term.Item{}, err
	}
	c.skipWhitespace()
	var comment *term.Comment
	if !c.eof() {
		if !strings.HasPrefix(c.rest(), "//") {
			return term.Item{}, &Error{Col: c.pos, Kind: ExpectedToken, Arg: "end of line or a comment"}
		}
		cm := term.Comment(c.rest()[2:])
		comment = &cm
	}
	tracer().Debugf("parsed item: label=%v stmt=%+v comment=%v", label, stmt, comment)
	return term.Item{Label: label, Stmt: stmt, Comment: comment}, nil
}
