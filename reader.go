package rholisp

import (
	"fmt"
	"strings"
)

// escapes is the shared escape-sequence table used by both the reader
// (string and character literals) and the printer (repr output), the
// direct port of the original implementation's nine-entry
// escapes[][2] table.
var escapes = []struct {
	ch  rune
	lit rune
}{
	{0, '0'},
	{'\t', 't'},
	{'\v', 'v'},
	{'\r', 'r'},
	{'\n', 'n'},
	{'\\', '\\'},
	{'"', '"'},
	{'\a', 'a'},
	{'\b', 'b'},
}

func escapeFor(lit rune) (rune, bool) {
	for _, e := range escapes {
		if e.lit == lit {
			return e.ch, true
		}
	}
	return 0, false
}

func literalFor(ch rune) (rune, bool) {
	for _, e := range escapes {
		if e.ch == ch {
			return e.lit, true
		}
	}
	return 0, false
}

// isBreak reports whether r ends a token: one of ( ) " ; or
// whitespace, matching the original's is_break exactly (it does not
// special-case ', despite ' being sugar, since quote sugar is
// recognised by what follows it rather than by it being a break
// itself).
func isBreak(r rune) bool {
	switch r {
	case eof, '(', ')', '"', ';', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

const eof = -1

// Reader is a cursor over a rune buffer, generalizing the teacher's
// BaseParser from PEG-grammar matching to the token productions of
// the rholisp grammar: atoms, numbers, strings, characters, quote
// sugar and lists.
type Reader struct {
	input  []rune
	cursor int
	line   int
	column int
}

// NewReader creates a Reader over src.
func NewReader(src string) *Reader {
	return &Reader{input: []rune(src)}
}

func (r *Reader) Location() Location {
	return Location{Line: r.line, Column: r.column, Cursor: r.cursor}
}

func (r *Reader) Backtrack(l Location) {
	r.cursor, r.line, r.column = l.Cursor, l.Line, l.Column
}

func (r *Reader) Peek() rune {
	if r.cursor >= len(r.input) {
		return eof
	}
	return r.input[r.cursor]
}

func (r *Reader) peekAt(offset int) rune {
	i := r.cursor + offset
	if i >= len(r.input) {
		return eof
	}
	return r.input[i]
}

func (r *Reader) Any() (rune, error) {
	c := r.Peek()
	if c == eof {
		return 0, r.NewError("unexpected end of input")
	}
	r.cursor++
	r.column++
	if c == '\n' {
		r.line++
		r.column = 0
	}
	return c, nil
}

func (r *Reader) NewError(msg string) error {
	return ParseError{Message: msg, Span: Span{Start: r.Location(), End: r.Location()}}
}

// SkipSpace consumes whitespace and ;-to-end-of-line comments, the
// direct port of skip_ws.
func (r *Reader) SkipSpace() {
	for {
		switch r.Peek() {
		case ' ', '\t', '\n', '\r':
			r.Any()
		case ';':
			for r.Peek() != '\n' && r.Peek() != eof {
				r.Any()
			}
		default:
			return
		}
	}
}

// AtEOF reports whether, after skipping whitespace, no more forms
// remain to read.
func (r *Reader) AtEOF() bool {
	r.SkipSpace()
	return r.Peek() == eof
}

// ReadAll parses every top-level form in the input, returning a fresh
// owned list of them.
func (r *Reader) ReadAll() ([]Value, error) {
	var forms []Value
	for !r.AtEOF() {
		v, err := r.Read()
		if err != nil {
			return nil, err
		}
		forms = append(forms, v)
	}
	return forms, nil
}

// Read parses exactly one form, dispatching in the same order as
// lisp_val_parse: list, string, digit run, T/F boolean, quote sugar,
// character literal, else symbol.
func (r *Reader) Read() (Value, error) {
	r.SkipSpace()
	switch c := r.Peek(); {
	case c == eof:
		return Value{}, r.NewError("unexpected end of input")
	case c == '(':
		return r.readList()
	case c == ')':
		return Value{}, r.NewError("unexpected ')'")
	case c == '"':
		return r.readString()
	case c >= '0' && c <= '9':
		return r.readNumber()
	case (c == 'T' || c == 'F') && isBreak(r.peekAt(1)):
		r.Any()
		return Bool(c == 'T'), nil
	case c == '\'' && isBreak(r.peekAt(1)):
		r.Any()
		inner, err := r.Read()
		if err != nil {
			return Value{}, err
		}
		quote := SymV(internLiteral("quote"))
		return wrapList(Cons(quote, Cons(inner, nil))), nil
	case c == '#' && isBreak(r.peekAt(1)):
		return r.readChar()
	default:
		return r.readSymbol()
	}
}

func (r *Reader) readList() (Value, error) {
	r.Any() // consume '('
	var items []Value
	for {
		r.SkipSpace()
		if r.Peek() == ')' {
			r.Any()
			break
		}
		if r.Peek() == eof {
			return Value{}, r.NewError("unterminated list")
		}
		v, err := r.Read()
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	list := wrapList(SliceToList(items))
	for _, v := range items {
		Release(v)
	}
	return list, nil
}

// readNumber consumes a pure unsigned digit run, the direct port of
// num_parse: there is no sign handling here at all; a leading '-' is
// ordinary symbol text, and negation is the unary '-' builtin's job.
func (r *Reader) readNumber() (Value, error) {
	digits, err := OneOrMore(r, r.digit)
	if err != nil {
		return Value{}, err
	}
	var n int64
	for _, d := range digits {
		n = n*10 + int64(d-'0')
	}
	return Num(n), nil
}

func (r *Reader) digit(c Cursor) (rune, error) {
	return r.ExpectRange('0', '9')
}

func (r *Reader) ExpectRange(l, h rune) (rune, error) {
	c := r.Peek()
	if c >= l && c <= h {
		return r.Any()
	}
	return 0, r.NewError(fmt.Sprintf("expected digit, got %q", c))
}

func (r *Reader) readSymbol() (Value, error) {
	var b strings.Builder
	for !isBreak(r.Peek()) {
		c, err := r.Any()
		if err != nil {
			return Value{}, err
		}
		b.WriteRune(c)
	}
	if b.Len() == 0 {
		return Value{}, r.NewError("expected a symbol")
	}
	return SymV(internLiteral(b.String())), nil
}

func (r *Reader) readString() (Value, error) {
	r.Any() // consume opening quote
	var b []byte
	for r.Peek() != '"' {
		c, err := r.Any()
		if err != nil {
			return Value{}, r.NewError("unterminated string")
		}
		if c == '\\' {
			lit, err := r.Any()
			if err != nil {
				return Value{}, r.NewError("unterminated escape")
			}
			ch, ok := escapeFor(lit)
			if !ok {
				return Value{}, r.NewError(fmt.Sprintf("unknown escape \\%c", lit))
			}
			b = append(b, string(ch)...)
			continue
		}
		b = append(b, string(c)...)
	}
	r.Any() // consume closing quote
	return wrapString(NewString(b)), nil
}

// readChar parses the #-prefixed character literal: optional leading
// whitespace, then exactly one source character (honouring a '\'
// escape via the shared escapes table), yielding its byte value as a
// Num. This is the direct port of char_parse; it has nothing to do
// with Scheme's #t/#f/#\c sugar, which this dialect does not have
// (T/F read as booleans directly, with no # prefix at all).
func (r *Reader) readChar() (Value, error) {
	r.Any() // consume '#'
	r.SkipSpace()
	c, err := r.Any()
	if err != nil {
		return Value{}, r.NewError("unterminated character literal")
	}
	if c == '\\' {
		lit, err := r.Any()
		if err != nil {
			return Value{}, r.NewError("unterminated character escape")
		}
		ch, ok := escapeFor(lit)
		if !ok {
			return Value{}, r.NewError(fmt.Sprintf("unknown escape \\%c", lit))
		}
		c = ch
	}
	return Num(int64(byte(c))), nil
}
