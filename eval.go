package rholisp

var symUnderscore = internLiteral("_")

// CallResult is the trampoline's tri-state return value: either a
// finished Value, or an instruction to keep evaluating (ReEval) a new
// expression, possibly in a new Env, without growing the Go call
// stack. Scoped marks that Env is a freshly pushed frame the
// trampoline owns and must release once it finally returns a value,
// the direct port of the original's {value, re_eval, destroy_env}
// call_res record. This is what lets tail calls run at constant stack
// depth: Eval is a for loop, never mutual recursion.
type CallResult struct {
	Value  Value
	ReEval bool
	Env    *Environment
	Scoped bool
}

func done(v Value) CallResult { return CallResult{Value: v} }

func reEval(v Value, e *Environment, scoped bool) CallResult {
	return CallResult{Value: v, ReEval: true, Env: e, Scoped: scoped}
}

// Eval evaluates expr in env to a final Value. It is the trampoline
// loop: each iteration calls evalStep once and either returns or
// substitutes in the next expression/environment, so self-recursive
// tail calls never deepen the Go stack. tailcall starts false and
// becomes true after the first iteration, so the very first call a
// given Eval invocation makes is never treated as a tail call, but
// every re-evaluation after it is — the direct port of eval's local
// tailcall variable. pushed counts scoped frames entered during this
// run; they are unwound (cleared, one per frame, walking to parent)
// in the same order destroy_envs does, once a final value is ready.
func (in *Interpreter) Eval(expr Value, env *Environment) Value {
	owned := false
	tailcall := false
	pushed := 0
	cur := env
	for {
		res := in.evalStep(expr, cur, tailcall)
		if owned {
			Release(expr)
		}
		if !res.ReEval {
			unwind(cur, pushed)
			return res.Value
		}
		expr = res.Value
		owned = true
		if res.Env != nil {
			cur = res.Env
		}
		if res.Scoped {
			pushed++
		}
		tailcall = true
	}
}

func unwind(env *Environment, n int) {
	frame := env
	for i := 0; i < n; i++ {
		frame.Clear()
		frame = frame.parent
	}
}

func (in *Interpreter) evalStep(expr Value, env *Environment, tailcall bool) CallResult {
	switch expr.Kind {
	case KindNum, KindBool, KindString, KindBuiltin:
		return done(Acquire(expr))
	case KindSym:
		if expr.Sym == symUnderscore {
			return done(Acquire(in.lastResult))
		}
		if v, ok := env.Lookup(expr.Sym); ok {
			return done(Acquire(v))
		}
		return done(in.recoverable("undefined symbol `%s`", expr.Sym.Text))
	case KindList:
		if expr.List == nil {
			return done(Acquire(expr)) // () evaluates to itself
		}
		if listIsFn(expr.List) {
			return done(Acquire(expr)) // a function/macro literal is self-representing data
		}
		return in.evalCall(expr.List, env, tailcall)
	}
	return done(in.recoverable("cannot evaluate value of kind %s", expr.Kind))
}

// evalCall evaluates a list's head to find a callable, then dispatches
// to the builtin or list-function branch of the call protocol. A
// list-shaped head that doesn't match the function shape (§3) is
// reported the same way a non-callable head is, rather than hitting
// the original's fatal shape assertion — the upgrade to a recoverable
// error the error-handling design invites.
func (in *Interpreter) evalCall(form *ListCell, env *Environment, tailcall bool) CallResult {
	fn := in.Eval(form.Head, env)
	defer Release(fn)

	switch fn.Kind {
	case KindBuiltin:
		return in.callBuiltinForm(fn.Builtin, form.Tail, env)
	case KindList:
		if fn.List != nil && listIsFn(fn.List) {
			return in.callListForm(fn.List, form.Tail, env, tailcall)
		}
	}
	return done(in.recoverable("error: tried calling value %s as function", ReprString(fn)))
}
