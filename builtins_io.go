package rholisp

import (
	"fmt"
	"io"
	"os"
)

// registerIO installs the file builtins (§4.7). open's failure is
// host/IO-fatal, not recoverable: the original reports it via perror
// and calls exit(1) directly rather than returning to the caller, and
// this keeps that contract rather than upgrading it, since a missing
// file is an operator-facing condition, not a malformed program.
func (in *Interpreter) registerIO() {
	in.def("open", "(open path mode) opens a file, mode one of \"r\" \"w\" \"a\".", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("open", args, 2) {
			return done(EmptyList())
		}
		path, errv, ok := in.wantString("open", args[0])
		if !ok {
			return done(errv)
		}
		mode, errv, ok := in.wantString("open", args[1])
		if !ok {
			return done(errv)
		}
		var flag int
		switch string(mode.Bytes) {
		case "r":
			flag = os.O_RDONLY
		case "w":
			flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		case "a":
			flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
		default:
			return done(in.recoverable("open: unknown mode %q", string(mode.Bytes)))
		}
		f, err := os.OpenFile(string(path.Bytes), flag, 0644)
		if err != nil {
			fmt.Fprintf(in.Stderr, "open: %s\n", err)
			os.Exit(1)
		}
		return done(in.registerHandle(f))
	})

	in.def("close", "(close file) closes a file handle previously returned by open.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("close", args, 1) {
			return done(EmptyList())
		}
		if !in.closeHandle(args[0]) {
			return done(in.recoverable("close: not an open file handle"))
		}
		return done(EmptyList())
	})

	in.def("write", "(write file v) writes a string or a single byte (given as a number) to file.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("write", args, 2) {
			return done(EmptyList())
		}
		h, ok := in.lookupHandle(args[0])
		if !ok {
			return done(in.recoverable("write: not an open file handle"))
		}
		var buf []byte
		switch args[1].Kind {
		case KindString:
			buf = args[1].Str.Bytes
		case KindNum:
			buf = []byte{byte(args[1].Num)}
		default:
			return done(in.recoverable("write: expected a string or number, got %s", args[1].Kind))
		}
		n, err := h.f.Write(buf)
		if err != nil {
			return done(in.recoverable("write: %s", err))
		}
		return done(Num(int64(n)))
	})

	in.def("readline", "(readline file) reads one line from file, without the trailing newline, or F at end of file.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("readline", args, 1) {
			return done(EmptyList())
		}
		h, ok := in.lookupHandle(args[0])
		if !ok {
			return done(in.recoverable("readline: not an open file handle"))
		}
		line, err := h.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return done(in.recoverable("readline: %s", err))
		}
		if err == io.EOF && line == "" {
			return done(Bool(false))
		}
		return done(wrapString(NewString([]byte(trimNewline(line)))))
	})

	in.def("read", "(read file) reads and returns the entirety of file's remaining contents as a string.", true, func(in *Interpreter, env *Environment, args []Value) CallResult {
		if !in.arity("read", args, 1) {
			return done(EmptyList())
		}
		h, ok := in.lookupHandle(args[0])
		if !ok {
			return done(in.recoverable("read: not an open file handle"))
		}
		buf, err := io.ReadAll(h.r)
		if err != nil {
			return done(in.recoverable("read: %s", err))
		}
		return done(wrapString(NewString(buf)))
	})
}

func trimNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '\r' {
		s = s[:len(s)-1]
	}
	return s
}
