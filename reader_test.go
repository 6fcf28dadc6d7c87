package rholisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustRead(t *testing.T, src string) Value {
	t.Helper()
	v, err := NewReader(src).Read()
	assert.NoError(t, err)
	return v
}

func TestReadAtoms(t *testing.T) {
	assert.Equal(t, int64(42), mustRead(t, "42").Num)
	assert.True(t, mustRead(t, "T").Bool)
	assert.False(t, mustRead(t, "F").Bool)
	assert.Equal(t, "foo-bar?", mustRead(t, "foo-bar?").Sym.Text)
}

// The reader has no sign handling: a leading '-' is ordinary symbol
// text, and negation is the unary '-' builtin's job, not the reader's.
func TestReadNegativeNumberIsASymbol(t *testing.T) {
	v := mustRead(t, "-7")
	assert.Equal(t, KindSym, v.Kind)
	assert.Equal(t, "-7", v.Sym.Text)
}

// Like quote sugar, # is a character literal only when a break follows
// it; the character itself comes after optional whitespace.
func TestReadCharLiteral(t *testing.T) {
	assert.Equal(t, int64('a'), mustRead(t, "# a").Num)
	assert.Equal(t, int64('\n'), mustRead(t, `# \n`).Num)
}

func TestReadString(t *testing.T) {
	v := mustRead(t, `"hi\nthere"`)
	assert.Equal(t, "hi\nthere", string(v.Str.Bytes))
}

func TestReadList(t *testing.T) {
	v := mustRead(t, "(1 2 3)")
	items := ListToSlice(v.List)
	assert.Len(t, items, 3)
	assert.Equal(t, int64(1), items[0].Num)
	assert.Equal(t, int64(3), items[2].Num)
}

// ' is quote sugar only when a break follows it; 'x reads as one symbol.
func TestReadQuoteSugar(t *testing.T) {
	v := mustRead(t, "' x")
	assert.Equal(t, "quote", v.List.Head.Sym.Text)
	assert.Equal(t, "x", v.List.Tail.Head.Sym.Text)
}

func TestReadAllMultipleForms(t *testing.T) {
	forms, err := NewReader("1 2 (+ 1 2)").ReadAll()
	assert.NoError(t, err)
	assert.Len(t, forms, 3)
}

func TestReadSkipsComments(t *testing.T) {
	forms, err := NewReader("; a comment\n42").ReadAll()
	assert.NoError(t, err)
	assert.Len(t, forms, 1)
	assert.Equal(t, int64(42), forms[0].Num)
}

func TestReadUnterminatedListErrors(t *testing.T) {
	_, err := NewReader("(1 2").Read()
	assert.Error(t, err)
}

func TestReadEmptyListIsNil(t *testing.T) {
	v := mustRead(t, "()")
	assert.True(t, v.IsNil())
}
