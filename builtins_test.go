package rholisp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinArithmetic(t *testing.T) {
	in := newTestInterpreter(t)
	assert.Equal(t, int64(0), evalSrc(t, in, "(+)").Num)
	assert.Equal(t, int64(10), evalSrc(t, in, "(+ 1 2 3 4)").Num)
	assert.Equal(t, int64(-1), evalSrc(t, in, "(- 1)").Num)
	assert.Equal(t, int64(-4), evalSrc(t, in, "(- 1 2 3)").Num)
	assert.Equal(t, int64(3), evalSrc(t, in, "(/ 12 4)").Num)
	assert.Equal(t, int64(1), evalSrc(t, in, "(% 7 3)").Num)
}

func TestBuiltinBitwise(t *testing.T) {
	in := newTestInterpreter(t)
	assert.Equal(t, int64(8), evalSrc(t, in, "(<< 1 3)").Num)
	assert.Equal(t, int64(1), evalSrc(t, in, "(>> 8 3)").Num)
	assert.Equal(t, int64(2), evalSrc(t, in, "(& 3 6)").Num)
	assert.Equal(t, int64(7), evalSrc(t, in, "(| 3 6)").Num)
	assert.Equal(t, int64(5), evalSrc(t, in, "(^ 3 6)").Num)
	assert.Equal(t, int64(-1), evalSrc(t, in, "(~ 0)").Num)
}

func TestBuiltinCmp(t *testing.T) {
	in := newTestInterpreter(t)
	assert.Equal(t, int64(-1), evalSrc(t, in, "(cmp 1 2)").Num)
	assert.Equal(t, int64(0), evalSrc(t, in, "(cmp 2 2)").Num)
	assert.Equal(t, int64(1), evalSrc(t, in, "(cmp 3 2)").Num)
	assert.Equal(t, int64(-1), evalSrc(t, in, "(cmp F T)").Num)
	assert.Equal(t, int64(0), evalSrc(t, in, `(cmp "ab" "ab")`).Num)
	assert.Equal(t, int64(-1), evalSrc(t, in, `(cmp (list 1 2) (list 1 2 3))`).Num)
	assert.Equal(t, int64(1), evalSrc(t, in, `(cmp (list 2) (list 1 9))`).Num)
}

func TestBuiltinCmpDisparateKindsIsRecoverable(t *testing.T) {
	in := newTestInterpreter(t)
	v, err := in.RunSource(`(cmp 1 "1")`)
	assert.NoError(t, err)
	assert.True(t, v.IsNil())
}

func TestBuiltinListOps(t *testing.T) {
	in := newTestInterpreter(t)
	assert.Equal(t, "(1 2 3)", ReprString(evalSrc(t, in, "(cons 1 (list 2 3))")))
	assert.Equal(t, int64(1), evalSrc(t, in, "(head (list 1 2 3))").Num)
	assert.Equal(t, "(2 3)", ReprString(evalSrc(t, in, "(tail (list 1 2 3))")))
	assert.Equal(t, int64(2), evalSrc(t, in, "(nth (list 1 2 3) 1)").Num)
	assert.Equal(t, "(1 2 3)", ReprString(evalSrc(t, in, "(append (list 1 2) 3)")))
	assert.Equal(t, "number", evalSrc(t, in, "(type 1)").Sym.Text)
	assert.Equal(t, "boolean", evalSrc(t, in, "(type T)").Sym.Text)
	assert.Equal(t, "symbol", evalSrc(t, in, "(type ' x)").Sym.Text)
	assert.Equal(t, "list", evalSrc(t, in, "(type (list))").Sym.Text)
	assert.Equal(t, "string", evalSrc(t, in, `(type "s")`).Sym.Text)
	assert.Equal(t, "builtin", evalSrc(t, in, "(type +)").Sym.Text)
}

func TestBuiltinHeadTailOfEmptyListIsRecoverable(t *testing.T) {
	in := newTestInterpreter(t)
	v, err := in.RunSource("(head (list))")
	assert.NoError(t, err)
	assert.True(t, v.IsNil())
	v, err = in.RunSource("(tail (list))")
	assert.NoError(t, err)
	assert.True(t, v.IsNil())
}

func TestBuiltinStringOps(t *testing.T) {
	in := newTestInterpreter(t)
	assert.Equal(t, `"helloworld"`, ReprString(evalSrc(t, in, `(&' "hello" "world")`)))
	assert.Equal(t, int64(5), evalSrc(t, in, `(len' "hello")`).Num)
	assert.Equal(t, `"ell"`, ReprString(evalSrc(t, in, `([]' "hello" 1 4)`)))
}

// §8 scenario #6: repr must round-trip escapes and render booleans as
// bare letters.
func TestBuiltinRepr(t *testing.T) {
	in := newTestInterpreter(t)
	v := evalSrc(t, in, `(repr (list 1 "a\n" T))`)
	assert.Equal(t, `"(1 \"a\\n\" T)"`, ReprString(v))
}

// §8 scenario #7: (parse "42 rest") -> (" rest" 42): remainder first,
// value second.
func TestBuiltinParse(t *testing.T) {
	in := newTestInterpreter(t)
	v := evalSrc(t, in, `(parse "42 rest")`)
	assert.Equal(t, `(" rest" 42)`, ReprString(v))
}

func TestBuiltinFileRoundTrip(t *testing.T) {
	in := newTestInterpreter(t)
	path := filepath.Join(t.TempDir(), "out.txt")
	src := `
(def f (open "` + path + `" "w"))
(write f "line one\nline two")
(close f)
(def g (open "` + path + `" "r"))
(def l1 (readline g))
(def l2 (readline g))
(close g)
(list l1 l2)
`
	v := evalSrc(t, in, src)
	assert.Equal(t, `("line one" "line two")`, ReprString(v))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "line one\nline two", string(data))
}

func TestBuiltinReadSlurpsRemainingContents(t *testing.T) {
	in := newTestInterpreter(t)
	path := filepath.Join(t.TempDir(), "slurp.txt")
	assert.NoError(t, os.WriteFile(path, []byte("all of it"), 0644))
	v := evalSrc(t, in, `
(def f (open "`+path+`" "r"))
(read f)
`)
	assert.Equal(t, `"all of it"`, ReprString(v))
}

func TestBuiltinIntrospection(t *testing.T) {
	in := newTestInterpreter(t)
	// one reference from the binding, one from :refs's own evaluated argument
	v := evalSrc(t, in, `(def s "hi") (:refs s)`)
	assert.Equal(t, int64(2), v.Num)

	v = evalSrc(t, in, `(:docs +)`)
	assert.Equal(t, KindString, v.Kind)

	v = evalSrc(t, in, `(:macro? quote)`)
	assert.True(t, v.Bool)
	v = evalSrc(t, in, `(:macro? +)`)
	assert.False(t, v.Bool)

	v = evalSrc(t, in, `(:callable? +)`)
	assert.True(t, v.Bool)
	v = evalSrc(t, in, `(:callable? 1)`)
	assert.False(t, v.Bool)

	evalSrc(t, in, `(def sq ((sq "squares x") (x) F (+ x x)))`)
	v = evalSrc(t, in, `(:name sq)`)
	assert.Equal(t, "sq", v.Sym.Text)
	v = evalSrc(t, in, `(:docs sq)`)
	assert.Equal(t, "squares x", string(v.Str.Bytes))
}

func TestBuiltinSubs(t *testing.T) {
	in := newTestInterpreter(t)
	v := evalSrc(t, in, "(subs ' x 99 '(+ x 1))")
	assert.Equal(t, "(+ 99 1)", ReprString(v))
}

// §8 scenario #8: (subs-with (a 10) (+ a a)) -> 20. Bindings are a
// single flat binding-list form, the body is unquoted and is
// evaluated after substitution, in the caller's environment.
func TestBuiltinSubsWith(t *testing.T) {
	in := newTestInterpreter(t)
	v := evalSrc(t, in, "(subs-with (a 10) (+ a a))")
	assert.Equal(t, int64(20), v.Num)
}

func TestBuiltinAssoc(t *testing.T) {
	in := newTestInterpreter(t)
	// later bindings see earlier ones, evaluated in the new scope
	v := evalSrc(t, in, "(assoc (a 10 b (+ a 1)) (+ a b))")
	assert.Equal(t, int64(21), v.Num)
}

func TestBuiltinEnvNew(t *testing.T) {
	in := newTestInterpreter(t)
	evalSrc(t, in, "(def x 1)")
	v := evalSrc(t, in, "(env-new (do (def x 2) x))")
	assert.Equal(t, int64(2), v.Num)
	// def inside env-new's non-fixed frame binds locally, not globally
	assert.Equal(t, int64(1), evalSrc(t, in, "x").Num)
}

func TestBuiltinAssign(t *testing.T) {
	in := newTestInterpreter(t)
	evalSrc(t, in, "(def x 1)")
	v := evalSrc(t, in, "(:= x 2)")
	assert.Equal(t, int64(2), v.Num)
	assert.Equal(t, int64(2), evalSrc(t, in, "x").Num)
}

func TestBuiltinAssignUndefinedIsRecoverable(t *testing.T) {
	in := newTestInterpreter(t)
	v, err := in.RunSource("(:= never-defined 1)")
	assert.NoError(t, err)
	assert.True(t, v.IsNil())
}

func TestBuiltinEvalBuiltin(t *testing.T) {
	in := newTestInterpreter(t)
	v := evalSrc(t, in, "(eval '(+ 1 2))")
	assert.Equal(t, int64(3), v.Num)
}

func TestBuiltinTruthy(t *testing.T) {
	in := newTestInterpreter(t)
	assert.False(t, evalSrc(t, in, `(truthy? "")`).Bool)
	assert.True(t, evalSrc(t, in, `(truthy? "x")`).Bool)
	assert.False(t, evalSrc(t, in, `(truthy? 0)`).Bool)
	assert.False(t, evalSrc(t, in, `(truthy? F)`).Bool)
	assert.False(t, evalSrc(t, in, `(truthy? ())`).Bool)
}

func TestBuiltinArityErrorsAreRecoverable(t *testing.T) {
	in := newTestInterpreter(t)
	v, err := in.RunSource("(cons 1)")
	assert.NoError(t, err)
	assert.True(t, v.IsNil())
}

// §8 scenario #4: a self-tail-calling function counts to a large
// bound without growing the Go call stack, and `:=` mutates a
// variable captured across iterations via the global environment.
func TestScenarioTailSpliceLoopWithAssign(t *testing.T) {
	in := newTestInterpreter(t)
	evalSrc(t, in, `(def count F)`)
	evalSrc(t, in, `
(def loop (() (n) F
  (if (cmp n 100000)
      (do (:= count (+ count 1)) (loop (+ n 1)))
      n)))
`)
	evalSrc(t, in, `(:= count 0)`)
	v := evalSrc(t, in, "(loop 0)")
	assert.Equal(t, int64(100000), v.Num)
	assert.Equal(t, int64(100000), evalSrc(t, in, "count").Num)
}

// §8 scenario #2, literal verbatim text: (def f (() (() xs) F (cons 0
// xs)))  (f 1 2 3).
func TestScenarioRestParamFunction(t *testing.T) {
	in := newTestInterpreter(t)
	evalSrc(t, in, "(def f (() (() xs) F (cons 0 xs)))")
	v := evalSrc(t, in, "(f 1 2 3)")
	assert.Equal(t, "(0 1 2 3)", ReprString(v))
}
