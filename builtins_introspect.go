package rholisp

// registerIntrospect installs the heap and callable-introspection
// builtins (§4.7). :name, :docs and :macro? work directly on an
// already-evaluated callable value (a Builtin or a list-shaped
// function/macro), not through a symbol+environment-lookup
// indirection — a callable has no privileged name of its own besides
// whatever optional (name doc) metadata it carries.
func (in *Interpreter) registerIntrospect() {
	in.def(":id", "(:id v) returns a stable integer identity for a heap-allocated value, or nil for inline values.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity(":id", args, 1) {
			return done(EmptyList())
		}
		id := args[0].ID()
		if id == 0 {
			return done(EmptyList())
		}
		return done(Num(id))
	})
	in.def(":refs", "(:refs v) returns v's current reference count, or nil for inline values.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity(":refs", args, 1) {
			return done(EmptyList())
		}
		n := args[0].RefCount()
		if n < 0 {
			return done(EmptyList())
		}
		return done(Num(int64(n)))
	})

	in.def(":name", "(:name callable) returns the name symbol a function/macro literal or builtin carries, or nil.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity(":name", args, 1) {
			return done(EmptyList())
		}
		switch {
		case args[0].Kind == KindBuiltin:
			return done(SymV(internLiteral(args[0].Builtin.Name)))
		case args[0].Kind == KindList && args[0].List != nil && listIsFn(args[0].List):
			if name := listToFn(args[0].List).name; name != nil {
				return done(SymV(name))
			}
		}
		return done(EmptyList())
	})

	in.def(":docs", "(:docs callable) returns the docstring a function/macro literal or builtin carries, or nil.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity(":docs", args, 1) {
			return done(EmptyList())
		}
		switch {
		case args[0].Kind == KindBuiltin:
			return done(wrapString(NewString([]byte(args[0].Builtin.Doc))))
		case args[0].Kind == KindList && args[0].List != nil && listIsFn(args[0].List):
			if doc := listToFn(args[0].List).doc; doc != nil {
				return done(StringV(doc))
			}
		}
		return done(EmptyList())
	})

	in.def(":macro?", "(:macro? callable) reports whether callable receives its arguments unevaluated, as a macro/special form does.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity(":macro?", args, 1) {
			return done(EmptyList())
		}
		switch {
		case args[0].Kind == KindBuiltin:
			return done(Bool(!args[0].Builtin.EvalArgs))
		case args[0].Kind == KindList && args[0].List != nil && listIsFn(args[0].List):
			return done(Bool(listToFn(args[0].List).isMacro))
		}
		return done(Bool(false))
	})

	in.def(":callable?", "(:callable? v) reports whether v can appear in call position.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity(":callable?", args, 1) {
			return done(EmptyList())
		}
		if args[0].Kind == KindBuiltin {
			return done(Bool(true))
		}
		return done(Bool(args[0].Kind == KindList && args[0].List != nil && listIsFn(args[0].List)))
	})
}
