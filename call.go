package rholisp

// listFn is the decoded view of a function-shaped list, always
// exactly four elements wide:
//
//	( <metadata> <params> <is-macro: Bool> <body> )
//
// metadata is () when the literal carries no name/docstring, or the
// two-cell (name-sym docstring) when it does; the slot is always
// present, never omitted, the direct port of struct list_fn /
// list_to_fn's fixed field layout.
type listFn struct {
	params  *ListCell
	name    *Symbol
	doc     *StringBuf
	isMacro bool
	body    Value
}

// validParams reports whether every element of a function's parameter
// list is a bare symbol, or, marking the rest of the arguments, a
// lone () element immediately followed by exactly one more element —
// the rest-binding symbol — and nothing after it. A params list can
// therefore be rest-only: (() xs) binds every argument into xs, with
// no fixed parameters at all. The direct port of list_is_fn's
// parameter-shape loop.
func validParams(params *ListCell) bool {
	for p := params; p != nil; p = p.Tail {
		if p.Head.Kind == KindSym {
			continue
		}
		if p.Head.Kind != KindList || p.Head.List != nil {
			return false
		}
		if p.Tail == nil || p.Tail.Head.Kind != KindSym || p.Tail.Tail != nil {
			return false
		}
		break
	}
	return true
}

// validMeta reports whether v is a valid metadata cell: either ()
// (no name/docstring carried) or the two-cell (name-sym docstring).
func validMeta(v Value) bool {
	if v.Kind != KindList {
		return false
	}
	if v.List == nil {
		return true
	}
	m := v.List
	return m.Head.Kind == KindSym && m.Tail != nil && m.Tail.Head.Kind == KindString && m.Tail.Tail == nil
}

// listIsFn reports whether l matches the function/macro shape of §3:
// an untagged, exactly-four-element list — metadata, params,
// is-macro flag, body — with no leading tag symbol. The direct port
// of list_is_fn.
func listIsFn(l *ListCell) bool {
	if l == nil || l.Tail == nil || l.Tail.Tail == nil || l.Tail.Tail.Tail == nil {
		return false
	}
	if l.Tail.Tail.Tail.Tail != nil {
		return false
	}
	if !validMeta(l.Head) {
		return false
	}
	paramsV := l.Tail.Head
	if paramsV.Kind != KindList || !validParams(paramsV.List) {
		return false
	}
	return l.Tail.Tail.Head.Kind == KindBool
}

// listToFn decodes a list already known (via listIsFn) to match the
// function shape. The direct port of list_to_fn.
func listToFn(l *ListCell) listFn {
	meta := l.Head
	params := l.Tail.Head
	isMacro := l.Tail.Tail.Head
	body := l.Tail.Tail.Tail.Head
	lf := listFn{params: params.List, isMacro: isMacro.Bool, body: body}
	if meta.List != nil {
		lf.name = meta.List.Head.Sym
		lf.doc = meta.List.Tail.Head.Str
	}
	return lf
}

// callBuiltinForm implements the builtin branch of the call protocol
// for an ordinary call site: argForms are raw, unevaluated syntax
// trees straight from the call form.
func (in *Interpreter) callBuiltinForm(b *Builtin, argForms *ListCell, env *Environment) CallResult {
	return in.callBuiltinArgs(b, argForms, env, false)
}

// callBuiltinArgs is the full builtin call protocol (§4.5): when the
// builtin wants evaluated arguments, each is evaluated in env unless
// preEvaluated says argForms already holds final values (the call
// builtin's case), in which case they are merely acquired.
func (in *Interpreter) callBuiltinArgs(b *Builtin, argForms *ListCell, env *Environment, preEvaluated bool) CallResult {
	var args []Value
	for c := argForms; c != nil; c = c.Tail {
		var v Value
		switch {
		case !b.EvalArgs:
			v = Acquire(c.Head)
		case preEvaluated:
			v = Acquire(c.Head)
		default:
			v = in.Eval(c.Head, env)
		}
		args = append(args, v)
	}
	defer func() {
		for _, a := range args {
			Release(a)
		}
	}()
	return b.Fn(in, env, args)
}

// callListForm implements the list-function/macro branch for an
// ordinary call site.
func (in *Interpreter) callListForm(fn *ListCell, argForms *ListCell, env *Environment, tailcall bool) CallResult {
	return in.callListArgs(fn, argForms, env, tailcall, false)
}

// callListArgs is the full list-function call protocol (§4.5):
// validate shape (already done by the caller via listIsFn), dispatch
// to the macro or function branch.
func (in *Interpreter) callListArgs(fn *ListCell, argForms *ListCell, callerEnv *Environment, tailcall bool, preEvaluated bool) CallResult {
	lf := listToFn(fn)
	if lf.isMacro {
		return in.callMacroBody(lf, argForms, callerEnv)
	}
	return in.callFunctionBody(fn, lf, argForms, callerEnv, tailcall, preEvaluated)
}

// callFunctionBody binds arguments into a fresh parameter frame and
// hands the function body back to the trampoline in tail position.
//
// If the current environment's paramsOf is pointer-identical to fn
// (the exact same ListCell, meaning the call site is the function
// calling itself in tail position), the frame is spliced in place:
// the old frame is cleared and the new one takes its spot in the
// chain, which is what bounds tail self-recursion to constant
// environment depth. Otherwise the new frame is pushed on top and the
// trampoline is told (via Scoped) to release it once a final value
// surfaces.
func (in *Interpreter) callFunctionBody(fn *ListCell, lf listFn, argForms *ListCell, callerEnv *Environment, tailcall bool, preEvaluated bool) CallResult {
	replaceEnv := tailcall && callerEnv.paramsOf == fn

	frame := NewEnvironment(callerEnv, true)
	frame.paramsOf = fn

	params := lf.params
	args := argForms
	for params != nil {
		p := params.Head
		if p.Kind == KindList {
			var vals []Value
			for a := args; a != nil; a = a.Tail {
				vals = append(vals, in.evalOrAcquire(a.Head, callerEnv, preEvaluated))
			}
			restSym := params.Tail.Head.Sym
			lst := wrapList(SliceToList(vals))
			frame.Bind(restSym, lst)
			Release(lst)
			for _, v := range vals {
				Release(v)
			}
			args = nil
			break
		}
		if args == nil {
			in.logf("not enough arguments provided!")
			break
		}
		v := in.evalOrAcquire(args.Head, callerEnv, preEvaluated)
		frame.Bind(p.Sym, v)
		Release(v)
		params = params.Tail
		args = args.Tail
	}
	if args != nil {
		in.logf("too many arguments provided!")
	}

	scoped := !replaceEnv
	if replaceEnv {
		frame.parent = callerEnv.parent
		callerEnv.Clear()
	}
	return reEval(Acquire(lf.body), frame, scoped)
}

func (in *Interpreter) evalOrAcquire(v Value, env *Environment, preEvaluated bool) Value {
	if preEvaluated {
		return Acquire(v)
	}
	return in.Eval(v, env)
}

// callMacroBody implements the macro branch: parameters are bound,
// unevaluated, into a standalone transient environment (it has no
// parent — a macro's expansion sees nothing but its own formal
// parameters, never the caller's lexical scope), the body is
// substituted through that environment once, and the resulting
// expansion is handed back to the trampoline to be evaluated, in the
// caller's own environment, as the macro call's actual result. The
// direct port of ll_call's is_macro branch.
func (in *Interpreter) callMacroBody(lf listFn, argForms *ListCell, callerEnv *Environment) CallResult {
	frame := NewEnvironment(nil, false)

	params := lf.params
	args := argForms
	for params != nil {
		p := params.Head
		if p.Kind == KindList {
			restSym := params.Tail.Head.Sym
			frame.Bind(restSym, Value{Kind: KindList, List: args})
			args = nil
			break
		}
		if args == nil {
			in.logf("not enough arguments provided!")
			break
		}
		frame.Bind(p.Sym, args.Head)
		params = params.Tail
		args = args.Tail
	}
	if args != nil {
		in.logf("too many arguments provided!")
	}

	body := substituteEnv(lf.body, frame)
	frame.Clear()
	return reEval(body, callerEnv, false)
}
