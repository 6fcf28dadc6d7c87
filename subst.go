package rholisp

// substituteEnv walks tree and, at every symbol leaf, replaces it
// with the value env binds it to (searched through the whole parent
// chain), leaving unbound symbols and every other shape untouched.
// Lists are rebuilt fresh; atoms are cloned. This is the sole
// mechanism behind macro expansion (formal parameters are bound into
// a transient environment, substituted through the body) and the
// subs/subs-with builtins, the direct port of substitute(value, env).
func substituteEnv(tree Value, env *Environment) Value {
	switch tree.Kind {
	case KindSym:
		if v, ok := env.Lookup(tree.Sym); ok {
			return Acquire(v)
		}
		return Acquire(tree)
	case KindList:
		if tree.List == nil {
			return Acquire(tree)
		}
		items := ListToSlice(tree.List)
		out := make([]Value, len(items))
		for i, item := range items {
			out[i] = substituteEnv(item, env)
		}
		result := SliceToList(out)
		for _, v := range out {
			Release(v)
		}
		return wrapList(result)
	default:
		return Acquire(tree)
	}
}
