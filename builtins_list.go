package rholisp

func (in *Interpreter) registerList() {
	in.def("cons", "(cons a b) prepends a onto list b.", true, func(in *Interpreter, _ *Environment, args []Value) CallResult {
		if !in.arity("cons", args, 2) {
			return done(EmptyList())
		}
		tail, errv, ok := in.wantList("cons", args[1])
		if !ok {
			return done(errv)
		}
		return done(wrapList(Cons(Acquire(args[0]), acquireListCell(tail))))
	})
	in.def("head", "(head l) returns the first element of l.", true, func(in *Interpreter, _ *Environment, args []Value) CallResult {
		if !in.arity("head", args, 1) {
			return done(EmptyList())
		}
		l, errv, ok := in.wantList("head", args[0])
		if !ok {
			return done(errv)
		}
		if l == nil {
			return done(in.recoverable("head: empty list"))
		}
		return done(Acquire(l.Head))
	})
	in.def("tail", "(tail l) returns l with its first element removed.", true, func(in *Interpreter, _ *Environment, args []Value) CallResult {
		if !in.arity("tail", args, 1) {
			return done(EmptyList())
		}
		l, errv, ok := in.wantList("tail", args[0])
		if !ok {
			return done(errv)
		}
		if l == nil {
			return done(in.recoverable("tail: empty list"))
		}
		return done(ListV(l.Tail))
	})
	in.def("list", "(list a b ...) builds a list of its arguments.", true, func(in *Interpreter, _ *Environment, args []Value) CallResult {
		return done(wrapList(SliceToList(args)))
	})
	in.def("nth", "(nth l n) returns the n-th (0-based) element of l.", true, func(in *Interpreter, _ *Environment, args []Value) CallResult {
		if !in.arity("nth", args, 2) {
			return done(EmptyList())
		}
		l, errv, ok := in.wantList("nth", args[0])
		if !ok {
			return done(errv)
		}
		n, errv, ok := in.wantNum("nth", args[1])
		if !ok {
			return done(errv)
		}
		c := l
		for i := int64(0); i < n && c != nil; i++ {
			c = c.Tail
		}
		if c == nil {
			return done(in.recoverable("nth: index out of range"))
		}
		return done(Acquire(c.Head))
	})
	in.def("append", "(append l v) appends v as the new last element of l.", true, func(in *Interpreter, _ *Environment, args []Value) CallResult {
		if !in.arity("append", args, 2) {
			return done(EmptyList())
		}
		l, errv, ok := in.wantList("append", args[0])
		if !ok {
			return done(errv)
		}
		items := append(ListToSlice(l), args[1])
		return done(wrapList(SliceToList(items)))
	})
	in.def("type", "(type v) returns a symbol naming v's kind.", true, func(in *Interpreter, _ *Environment, args []Value) CallResult {
		if !in.arity("type", args, 1) {
			return done(EmptyList())
		}
		return done(SymV(internLiteral(args[0].Kind.String())))
	})
}
