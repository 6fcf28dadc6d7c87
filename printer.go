package rholisp

import (
	"fmt"
	"strings"
)

// PrintString renders v the human-readable way: strings and
// characters show their raw bytes, unescaped.
func PrintString(v Value) string {
	var b strings.Builder
	writeValue(&b, v, false)
	return b.String()
}

// ReprString renders v such that Read(ReprString(v)) reconstructs an
// equal value: strings are quoted and escaped via the shared escape
// table.
func ReprString(v Value) string {
	var b strings.Builder
	writeValue(&b, v, true)
	return b.String()
}

func writeValue(b *strings.Builder, v Value, repr bool) {
	switch v.Kind {
	case KindNum:
		fmt.Fprintf(b, "%d", v.Num)
	case KindBool:
		if v.Bool {
			b.WriteString("T")
		} else {
			b.WriteString("F")
		}
	case KindSym:
		b.WriteString(v.Sym.Text)
	case KindString:
		if repr {
			writeReprString(b, v.Str.Bytes)
		} else {
			b.Write(v.Str.Bytes)
		}
	case KindBuiltin:
		if v.Builtin.EvalArgs {
			b.WriteString("<builtin function>")
		} else {
			b.WriteString("<builtin macro>")
		}
	case KindList:
		writeList(b, v.List, repr)
	}
}

func writeReprString(b *strings.Builder, bytes []byte) {
	b.WriteByte('"')
	for _, r := range string(bytes) {
		if lit, ok := literalFor(r); ok {
			b.WriteByte('\\')
			b.WriteRune(lit)
			continue
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
}

func writeList(b *strings.Builder, l *ListCell, repr bool) {
	b.WriteByte('(')
	for c := l; c != nil; c = c.Tail {
		writeValue(b, c.Head, repr)
		if c.Tail != nil {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(')')
}
