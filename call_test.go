package rholisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidParamsFixedOnly(t *testing.T) {
	paramsV := mustRead(t, "(a b c)")
	assert.True(t, validParams(paramsV.List))
}

func TestValidParamsWithRest(t *testing.T) {
	paramsV := mustRead(t, "(a () rest)")
	assert.True(t, validParams(paramsV.List))
}

func TestValidParamsRestOnly(t *testing.T) {
	paramsV := mustRead(t, "(() xs)")
	assert.True(t, validParams(paramsV.List))
}

func TestValidParamsMalformed(t *testing.T) {
	paramsV := mustRead(t, "(1 2)")
	assert.False(t, validParams(paramsV.List))
}

func TestListIsFnRequiresFourElements(t *testing.T) {
	assert.True(t, listIsFn(mustRead(t, "(() (x) F (* x x))").List))
	assert.False(t, listIsFn(mustRead(t, "((x) F (* x x))").List))
	assert.False(t, listIsFn(mustRead(t, "(() (x) F (* x x) 1)").List))
}

func TestListIsFnRejectsBadMetadata(t *testing.T) {
	assert.False(t, listIsFn(mustRead(t, "((1 \"doc\") (x) F x)").List))
	assert.True(t, listIsFn(mustRead(t, "((sq \"squares x\") (x) F (* x x))").List))
}

func TestListToFnDecodesMetadata(t *testing.T) {
	l := mustRead(t, `((sq "squares x") (x) F (* x x))`).List
	assert.True(t, listIsFn(l))
	lf := listToFn(l)
	assert.Equal(t, "sq", lf.name.Text)
	assert.Equal(t, "squares x", string(lf.doc.Bytes))
	assert.False(t, lf.isMacro)
}

func TestCallFunctionBindsFixedAndRest(t *testing.T) {
	in := newTestInterpreter(t)
	evalSrc(t, in, "(def f (() (a () rest) F (list a rest)))")
	v := evalSrc(t, in, "(f 1 2 3)")
	assert.Equal(t, "(1 (2 3))", ReprString(v))
}

// §8 scenario #2: a function with only a rest parameter conses onto
// the full argument list. Literal, verbatim scenario text.
func TestCallFunctionRestOnlyParam(t *testing.T) {
	in := newTestInterpreter(t)
	evalSrc(t, in, "(def f (() (() xs) F (cons 0 xs)))")
	v := evalSrc(t, in, "(f 1 2 3)")
	assert.Equal(t, "(0 1 2 3)", ReprString(v))
}

func TestCallFunctionTailSplicesSameFrame(t *testing.T) {
	in := newTestInterpreter(t)
	evalSrc(t, in, `
(def loop (() (n) F (if n (loop (- n 1)) ' done)))
`)
	v := evalSrc(t, in, "(loop 50000)")
	assert.Equal(t, "done", v.Sym.Text)
}

func TestCallFunctionHasNoClosureOverDefiningFrame(t *testing.T) {
	in := newTestInterpreter(t)
	evalSrc(t, in, "(def make-const (() (x) F (() () F x)))")
	// Function literals are plain data carrying no closure over their
	// defining environment; x was a parameter of make-const's own
	// call frame, already gone by the time the returned literal is
	// called from a fresh call site.
	v, err := in.RunSource("((make-const 5))")
	assert.NoError(t, err)
	assert.True(t, v.IsNil())
}

func TestCallMacroExpandsBeforeSecondEval(t *testing.T) {
	in := newTestInterpreter(t)
	evalSrc(t, in, `
(def my-if2 (() (c t e) T (eval (list ' if c t e))))
`)
	v := evalSrc(t, in, "(my-if2 T 1 2)")
	assert.Equal(t, int64(1), v.Num)
}

func TestCallMacroRestParamQuoted(t *testing.T) {
	in := newTestInterpreter(t)
	evalSrc(t, in, `
(def my-do (() (() body) T (eval (cons ' do ' body))))
`)
	v := evalSrc(t, in, "(my-do 1 2 3)")
	assert.Equal(t, int64(3), v.Num)
}

func TestCallBuiltinViaCallDispatchesPreEvaluated(t *testing.T) {
	in := newTestInterpreter(t)
	v := evalSrc(t, in, "(call + (list 1 2 3))")
	assert.Equal(t, int64(6), v.Num)
}

func TestCallListViaCallDispatchesPreEvaluated(t *testing.T) {
	in := newTestInterpreter(t)
	evalSrc(t, in, "(def f (() (a b) F (+ a b)))")
	v := evalSrc(t, in, "(call f (list 1 2))")
	assert.Equal(t, int64(3), v.Num)
}
