package rholisp

// binding is one (symbol, value) pair in an environment frame.
type binding struct {
	sym *Symbol
	val Value
}

// Environment is one frame of the lexical environment chain: an
// ordered association list plus a parent pointer, ported from the C
// implementation's struct env / find_var / env_add.
//
// Fixed frames (function-parameter frames, and assoc's frame) are
// skipped by Def when it walks outward looking for the nearest frame
// it is allowed to add a new binding to, so that top-level def inside
// a function body or an assoc block defines into the enclosing
// non-fixed scope rather than shadowing locally.
//
// ParamsOf, when non-nil, names the function value this frame was
// built to bind the parameters of. The evaluator compares it by
// pointer identity against a newly-called function to detect a
// self-recursive tail call and splice the frame in place instead of
// growing the chain.
type Environment struct {
	parent   *Environment
	bindings []binding
	fixed    bool
	paramsOf *ListCell
}

// NewEnvironment creates a child frame of parent. parent may be nil
// for a standalone frame (the root environment, or a macro's
// transient substitution frame, which is never chained to anything).
func NewEnvironment(parent *Environment, fixed bool) *Environment {
	return &Environment{parent: parent, fixed: fixed}
}

// Lookup searches e and its ancestors for sym, returning the bound
// value and true, or the zero Value and false if unbound. Scanning a
// frame newest-first is what lets a later Bind of an
// already-bound-in-this-frame symbol shadow the earlier one without
// Def ever having to search for and overwrite it.
func (e *Environment) Lookup(sym *Symbol) (Value, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		for i := len(frame.bindings) - 1; i >= 0; i-- {
			if frame.bindings[i].sym == sym {
				return frame.bindings[i].val, true
			}
		}
	}
	return Value{}, false
}

// Bind adds a new binding directly to e (used for function/macro
// parameters and for assoc/env-new's fresh frames), acquiring a
// reference to val. It never searches for or overwrites an existing
// binding of the same symbol; a second Bind of a name already present
// in e simply shadows the first on lookup, the direct port of
// env_def's append-only behaviour.
func (e *Environment) Bind(sym *Symbol, val Value) {
	e.bindings = append(e.bindings, binding{sym: sym, val: Acquire(val)})
}

// Def walks outward from e to the nearest non-fixed frame and appends
// sym there, the direct port of ldef's frame-selection loop.
func (e *Environment) Def(sym *Symbol, val Value) {
	frame := e
	for frame.fixed && frame.parent != nil {
		frame = frame.parent
	}
	frame.Bind(sym, val)
}

// Assign finds sym's nearest existing binding in e's chain and
// overwrites it in place, returning false if sym is unbound anywhere
// in the chain. The direct port of lset (":="); unlike Def it never
// creates a new binding.
func (e *Environment) Assign(sym *Symbol, val Value) bool {
	for frame := e; frame != nil; frame = frame.parent {
		for i := len(frame.bindings) - 1; i >= 0; i-- {
			if frame.bindings[i].sym == sym {
				old := frame.bindings[i].val
				frame.bindings[i].val = Acquire(val)
				Release(old)
				return true
			}
		}
	}
	return false
}

// Clear releases every binding in e and its paramsOf reference,
// leaving it empty. It does not touch e.parent.
func (e *Environment) Clear() {
	for _, b := range e.bindings {
		Release(b.val)
	}
	e.bindings = e.bindings[:0]
	e.paramsOf = nil
}
