package rholisp

import "os"

func (in *Interpreter) registerProcess() {
	in.def("exit", "(exit code) terminates the process with the given exit code.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		code := int64(0)
		if len(args) == 1 {
			n, errv, ok := in.wantNum("exit", args[0])
			if !ok {
				return done(errv)
			}
			code = n
		}
		os.Exit(int(code))
		return done(EmptyList())
	})
}

// registerBuiltins wires every builtin group into the global
// environment. Split across files by concern, matching the teacher's
// own habit of one file per subsystem rather than one monolithic
// registration.
func (in *Interpreter) registerBuiltins() {
	in.registerArith()
	in.registerList()
	in.registerControl()
	in.registerString()
	in.registerIO()
	in.registerIntrospect()
	in.registerProcess()
}
