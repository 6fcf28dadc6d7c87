package rholisp

// registerControl installs the evaluation-control and binding
// builtins (§4.7): the special forms of the original's hardcoded
// eval() dispatch, reborn here as ordinary entries in the global
// environment, looked up exactly like any other symbol. Nothing in
// evalStep/evalCall special-cases any of these names.
func (in *Interpreter) registerControl() {
	in.def("quote", "(quote form) returns form unevaluated.", false, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("quote", args, 1) {
			return done(EmptyList())
		}
		return done(Acquire(args[0]))
	})

	in.def("eval", "(eval form) evaluates the already-evaluated value form as rholisp code in the caller's environment.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("eval", args, 1) {
			return done(EmptyList())
		}
		return reEval(Acquire(args[0]), env, false)
	})

	in.def("if", "(if cond then else) evaluates then when cond is truthy, else otherwise.", false, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("if", args, 3) {
			return done(EmptyList())
		}
		cond := in.Eval(args[0], env)
		truthy := cond.Truthy()
		Release(cond)
		if truthy {
			return reEval(Acquire(args[1]), env, false)
		}
		return reEval(Acquire(args[2]), env, false)
	})

	in.def("do", "(do a b ...) evaluates each form in turn, yielding the last.", false, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if len(args) == 0 {
			return done(EmptyList())
		}
		for _, a := range args[:len(args)-1] {
			Release(in.Eval(a, env))
		}
		return reEval(Acquire(args[len(args)-1]), env, false)
	})

	in.def("and", "(and a b ...) evaluates forms until one is falsey, yielding it, or the last form's value.", false, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if len(args) == 0 {
			return done(Bool(true))
		}
		for _, a := range args[:len(args)-1] {
			v := in.Eval(a, env)
			if !v.Truthy() {
				return done(v)
			}
			Release(v)
		}
		return reEval(Acquire(args[len(args)-1]), env, false)
	})

	in.def("or", "(or a b ...) evaluates forms until one is truthy, yielding it, or the last form's value.", false, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if len(args) == 0 {
			return done(Bool(false))
		}
		for _, a := range args[:len(args)-1] {
			v := in.Eval(a, env)
			if v.Truthy() {
				return done(v)
			}
			Release(v)
		}
		return reEval(Acquire(args[len(args)-1]), env, false)
	})

	in.def("def", "(def sym val ...) defines each sym to the value of its val expression, evaluated in the caller's environment.", false, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if len(args)%2 != 0 {
			return done(in.recoverable("def: expected an even number of sym/value forms"))
		}
		for i := 0; i+1 < len(args); i += 2 {
			sym, errv, ok := in.wantSym("def", args[i])
			if !ok {
				return done(errv)
			}
			v := in.Eval(args[i+1], env)
			env.Def(sym, v)
			Release(v)
		}
		return done(EmptyList())
	})

	in.def(":=", "(:= sym val) overwrites sym's existing binding with the value of val, evaluated in the caller's environment.", false, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity(":=", args, 2) {
			return done(EmptyList())
		}
		sym, errv, ok := in.wantSym(":=", args[0])
		if !ok {
			return done(errv)
		}
		v := in.Eval(args[1], env)
		if !env.Assign(sym, v) {
			Release(v)
			return done(in.recoverable(":=: undefined symbol `%s`", sym.Text))
		}
		return done(v)
	})

	in.def("assoc", "(assoc (sym val ...) body) evaluates body in a fresh scope where each sym is bound to its val expression, evaluated left to right in that same scope.", false, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("assoc", args, 2) {
			return done(EmptyList())
		}
		if args[0].Kind != KindList {
			return done(in.recoverable("assoc: expected a binding list, got %s", args[0].Kind))
		}
		bindings := ListToSlice(args[0].List)
		if len(bindings)%2 != 0 {
			return done(in.recoverable("assoc: expected an even number of forms in the binding list"))
		}
		frame := NewEnvironment(env, true)
		for i := 0; i+1 < len(bindings); i += 2 {
			sym, errv, ok := in.wantSym("assoc", bindings[i])
			if !ok {
				return done(errv)
			}
			v := in.Eval(bindings[i+1], frame)
			frame.Bind(sym, v)
			Release(v)
		}
		return reEval(Acquire(args[1]), frame, true)
	})

	in.def("env-new", "(env-new body) evaluates body in a fresh, otherwise empty scope chained to the caller's environment.", false, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("env-new", args, 1) {
			return done(EmptyList())
		}
		frame := NewEnvironment(env, false)
		return reEval(Acquire(args[0]), frame, true)
	})

	in.def("call", "(call fn args) calls the already-evaluated callable fn with the already-evaluated argument list args.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("call", args, 2) {
			return done(EmptyList())
		}
		argList, errv, ok := in.wantList("call", args[1])
		if !ok {
			return done(errv)
		}
		switch args[0].Kind {
		case KindBuiltin:
			return in.callBuiltinArgs(args[0].Builtin, argList, env, true)
		case KindList:
			if args[0].List != nil && listIsFn(args[0].List) {
				return in.callListArgs(args[0].List, argList, env, false, true)
			}
		}
		return done(in.recoverable("call: %s is not callable", ReprString(args[0])))
	})

	in.def("truthy?", "(truthy? v) reports whether v is truthy.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("truthy?", args, 1) {
			return done(EmptyList())
		}
		return done(Bool(args[0].Truthy()))
	})

	in.def("subs", "(subs target replacement tree) substitutes every occurrence of symbol target in tree with replacement.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("subs", args, 3) {
			return done(EmptyList())
		}
		target, errv, ok := in.wantSym("subs", args[0])
		if !ok {
			return done(errv)
		}
		frame := NewEnvironment(nil, false)
		frame.Bind(target, args[1])
		v := substituteEnv(args[2], frame)
		frame.Clear()
		return done(v)
	})

	in.def("subs-with", "(subs-with (sym val ...) tree) simultaneously substitutes each sym, bound to the value of its val expression (evaluated in the caller's environment), throughout the unevaluated tree, then evaluates the result in the caller's environment.", false, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("subs-with", args, 2) {
			return done(EmptyList())
		}
		if args[0].Kind != KindList {
			return done(in.recoverable("subs-with: expected a binding list, got %s", args[0].Kind))
		}
		bindings := ListToSlice(args[0].List)
		if len(bindings)%2 != 0 {
			return done(in.recoverable("subs-with: expected an even number of forms in the binding list"))
		}
		frame := NewEnvironment(nil, false)
		for i := 0; i+1 < len(bindings); i += 2 {
			sym, errv, ok := in.wantSym("subs-with", bindings[i])
			if !ok {
				frame.Clear()
				return done(errv)
			}
			v := in.Eval(bindings[i+1], env)
			frame.Bind(sym, v)
			Release(v)
		}
		expanded := substituteEnv(args[1], frame)
		frame.Clear()
		return reEval(expanded, env, false)
	})
}
