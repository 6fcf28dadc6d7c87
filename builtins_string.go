package rholisp

// registerString installs the I/O-adjacent string/char builtins
// (§4.7). This dialect has no generic str-* family: strings are
// manipulated with the same handful of primitives regardless of
// what's inside them, distinguished from their list/bitwise
// namesakes by a trailing prime.
func (in *Interpreter) registerString() {
	in.def("pstr", "(pstr v) writes v's raw bytes (a string, or a single byte given as a number) directly to stdout and returns v.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("pstr", args, 1) {
			return done(EmptyList())
		}
		switch args[0].Kind {
		case KindString:
			in.Stdout.Write(args[0].Str.Bytes)
		case KindNum:
			in.Stdout.Write([]byte{byte(args[0].Num)})
		default:
			return done(in.recoverable("pstr: expected a string or number, got %s", args[0].Kind))
		}
		return done(Acquire(args[0]))
	})

	in.def("&'", "(&' a b ...) concatenates strings.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		var out []byte
		for _, a := range args {
			s, errv, ok := in.wantString("&'", a)
			if !ok {
				return done(errv)
			}
			out = append(out, s.Bytes...)
		}
		return done(wrapString(NewString(out)))
	})

	in.def("len'", "(len' s) returns the byte length of string s.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("len'", args, 1) {
			return done(EmptyList())
		}
		s, errv, ok := in.wantString("len'", args[0])
		if !ok {
			return done(errv)
		}
		return done(Num(int64(len(s.Bytes))))
	})

	in.def("[]'", "([]' s lo hi) returns the zero-copy substring s[lo:hi).", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("[]'", args, 3) {
			return done(EmptyList())
		}
		s, errv, ok := in.wantString("[]'", args[0])
		if !ok {
			return done(errv)
		}
		lo, errv, ok := in.wantNum("[]'", args[1])
		if !ok {
			return done(errv)
		}
		hi, errv, ok := in.wantNum("[]'", args[2])
		if !ok {
			return done(errv)
		}
		if lo < 0 || hi > int64(len(s.Bytes)) || lo > hi {
			return done(in.recoverable("[]': index out of range"))
		}
		return done(wrapString(Substring(s, int(lo), int(hi))))
	})

	in.def("repr", "(repr v) returns v's round-trip-safe text form as a string.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("repr", args, 1) {
			return done(EmptyList())
		}
		return done(wrapString(NewString([]byte(ReprString(args[0])))))
	})

	in.def("parse", "(parse s) parses the first form out of string s, returning a list (remainder value).", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("parse", args, 1) {
			return done(EmptyList())
		}
		s, errv, ok := in.wantString("parse", args[0])
		if !ok {
			return done(errv)
		}
		r := NewReader(string(s.Bytes))
		v, err := r.Read()
		if err != nil {
			return done(in.recoverable("parse: %s", err))
		}
		remainder := string(s.Bytes[r.Location().Cursor:])
		items := []Value{StringFromGo(remainder), v}
		result := wrapList(SliceToList(items))
		Release(items[0])
		Release(items[1])
		return done(result)
	})
}
