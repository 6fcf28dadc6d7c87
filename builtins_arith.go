package rholisp

func (in *Interpreter) registerArith() {
	in.def("+", "(+ a b ...) sums its numeric arguments; (+) is 0.", true, func(in *Interpreter, _ *Environment, args []Value) CallResult {
		var sum int64
		for _, a := range args {
			n, errv, ok := in.wantNum("+", a)
			if !ok {
				return done(errv)
			}
			sum += n
		}
		return done(Num(sum))
	})
	in.def("-", "(- a) negates a; (- a b ...) subtracts the rest from the first argument.", true, func(in *Interpreter, _ *Environment, args []Value) CallResult {
		if !in.arityAtLeast("-", args, 1) {
			return done(EmptyList())
		}
		first, errv, ok := in.wantNum("-", args[0])
		if !ok {
			return done(errv)
		}
		if len(args) == 1 {
			return done(Num(-first))
		}
		for _, a := range args[1:] {
			n, errv, ok := in.wantNum("-", a)
			if !ok {
				return done(errv)
			}
			first -= n
		}
		return done(Num(first))
	})
	in.def("/", "(/ a b ...) integer-divides a by the rest, left to right.", true, func(in *Interpreter, _ *Environment, args []Value) CallResult {
		if !in.arityAtLeast("/", args, 1) {
			return done(EmptyList())
		}
		first, errv, ok := in.wantNum("/", args[0])
		if !ok {
			return done(errv)
		}
		for _, a := range args[1:] {
			n, errv, ok := in.wantNum("/", a)
			if !ok {
				return done(errv)
			}
			first /= n
		}
		return done(Num(first))
	})
	in.def("%", "(% a b) is the remainder of a divided by b.", true, func(in *Interpreter, _ *Environment, args []Value) CallResult {
		if !in.arity("%", args, 2) {
			return done(EmptyList())
		}
		a, errv, ok := in.wantNum("%", args[0])
		if !ok {
			return done(errv)
		}
		b, errv, ok := in.wantNum("%", args[1])
		if !ok {
			return done(errv)
		}
		return done(Num(a % b))
	})

	bitwise := func(name string, fn func(a, b int64) int64) {
		in.def(name, "("+name+" a b) is the bitwise "+name+" of a and b.", true, func(in *Interpreter, _ *Environment, args []Value) CallResult {
			if !in.arity(name, args, 2) {
				return done(EmptyList())
			}
			a, errv, ok := in.wantNum(name, args[0])
			if !ok {
				return done(errv)
			}
			b, errv, ok := in.wantNum(name, args[1])
			if !ok {
				return done(errv)
			}
			return done(Num(fn(a, b)))
		})
	}
	bitwise("<<", func(a, b int64) int64 { return a << uint(b) })
	bitwise(">>", func(a, b int64) int64 { return a >> uint(b) })
	bitwise("&", func(a, b int64) int64 { return a & b })
	bitwise("|", func(a, b int64) int64 { return a | b })
	bitwise("^", func(a, b int64) int64 { return a ^ b })

	in.def("~", "(~ a) is the bitwise complement of a.", true, func(in *Interpreter, _ *Environment, args []Value) CallResult {
		if !in.arity("~", args, 1) {
			return done(EmptyList())
		}
		a, errv, ok := in.wantNum("~", args[0])
		if !ok {
			return done(errv)
		}
		return done(Num(^a))
	})

	in.def("cmp", "(cmp a b) orders a and b, returning -1, 0 or 1.", true, func(in *Interpreter, _ *Environment, args []Value) CallResult {
		if !in.arity("cmp", args, 2) {
			return done(EmptyList())
		}
		c, errv, ok := compareValues(in, args[0], args[1])
		if !ok {
			return done(errv)
		}
		return done(Num(int64(c)))
	})
}

// compareValues implements cmp's ordering (§4.7): numbers compare
// arithmetically, booleans order F before T, symbols and strings
// compare lexicographically by byte, lists compare lexicographically
// by element with a shorter list ordering before a longer one that
// shares its prefix. Comparing values of different kinds (or two
// builtins that aren't the same one) has no defined ordering, which
// this implementation reports as a recoverable error rather than the
// original's unchecked union access.
func compareValues(in *Interpreter, a, b Value) (int, Value, bool) {
	if a.Kind != b.Kind {
		return 0, in.recoverable("cmp: cannot compare %s with %s", a.Kind, b.Kind), false
	}
	switch a.Kind {
	case KindNum:
		return cmpInt(a.Num, b.Num), Value{}, true
	case KindBool:
		return cmpInt(boolRank(a.Bool), boolRank(b.Bool)), Value{}, true
	case KindSym:
		return cmpString(a.Sym.Text, b.Sym.Text), Value{}, true
	case KindString:
		return cmpString(string(a.Str.Bytes), string(b.Str.Bytes)), Value{}, true
	case KindList:
		ac, bc := a.List, b.List
		for ac != nil && bc != nil {
			c, errv, ok := compareValues(in, ac.Head, bc.Head)
			if !ok {
				return 0, errv, false
			}
			if c != 0 {
				return c, Value{}, true
			}
			ac, bc = ac.Tail, bc.Tail
		}
		return cmpInt(int64(listLen(ac)), int64(listLen(bc))), Value{}, true
	case KindBuiltin:
		if a.Builtin == b.Builtin {
			return 0, Value{}, true
		}
		return 0, in.recoverable("cmp: builtins have no defined order"), false
	}
	return 0, in.recoverable("cmp: cannot compare %s with %s", a.Kind, b.Kind), false
}

func boolRank(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func listLen(l *ListCell) int {
	n := 0
	for ; l != nil; l = l.Tail {
		n++
	}
	return n
}
