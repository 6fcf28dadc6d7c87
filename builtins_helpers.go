package rholisp

// arity reports whether args has exactly want elements, reporting a
// recoverable error and returning false otherwise. This is the
// upgrade, invited by the error-handling design, of the original's
// fatal argument-count assertions inside builtins to non-fatal
// diagnostics.
func (in *Interpreter) arity(name string, args []Value, want int) bool {
	if len(args) != want {
		in.recoverable("%s: expected %d argument(s), got %d", name, want, len(args))
		return false
	}
	return true
}

func (in *Interpreter) arityAtLeast(name string, args []Value, min int) bool {
	if len(args) < min {
		in.recoverable("%s: expected at least %d argument(s), got %d", name, min, len(args))
		return false
	}
	return true
}

func (in *Interpreter) wantNum(name string, v Value) (int64, Value, bool) {
	if v.Kind != KindNum {
		return 0, in.recoverable("%s: expected a number, got %s", name, v.Kind), false
	}
	return v.Num, Value{}, true
}

func (in *Interpreter) wantList(name string, v Value) (*ListCell, Value, bool) {
	if v.Kind != KindList {
		return nil, in.recoverable("%s: expected a list, got %s", name, v.Kind), false
	}
	return v.List, Value{}, true
}

func (in *Interpreter) wantString(name string, v Value) (*StringBuf, Value, bool) {
	if v.Kind != KindString {
		return nil, in.recoverable("%s: expected a string, got %s", name, v.Kind), false
	}
	return v.Str, Value{}, true
}

func (in *Interpreter) wantSym(name string, v Value) (*Symbol, Value, bool) {
	if v.Kind != KindSym {
		return nil, in.recoverable("%s: expected a symbol, got %s", name, v.Kind), false
	}
	return v.Sym, Value{}, true
}

// valuesEqual implements rholisp's structural equality, recursing
// through list structure and comparing strings by content. Symbols
// and builtins compare by pointer.
func valuesEqual(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNum:
		return a.Num == b.Num
	case KindBool:
		return a.Bool == b.Bool
	case KindSym:
		return a.Sym == b.Sym
	case KindString:
		return string(a.Str.Bytes) == string(b.Str.Bytes)
	case KindBuiltin:
		return a.Builtin == b.Builtin
	case KindList:
		ac, bc := a.List, b.List
		for ac != nil && bc != nil {
			if !valuesEqual(ac.Head, bc.Head) {
				return false
			}
			ac, bc = ac.Tail, bc.Tail
		}
		return ac == nil && bc == nil
	}
	return false
}
