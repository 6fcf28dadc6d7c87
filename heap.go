package rholisp

import "sync/atomic"

var nextID int64

func allocID() int64 {
	return atomic.AddInt64(&nextID, 1)
}

// NewSymbol allocates a fresh, unshared symbol with refcount 1. The
// reader and the builtins intern symbols by text instead, so that
// environment lookups can compare *Symbol pointers; see internLiteral.
func NewSymbol(text string) *Symbol {
	return &Symbol{Text: text, refcount: 1, id: allocID()}
}

// Cons allocates a new list cell with refcount 1, taking ownership of
// head and tail (the caller's references are consumed).
func Cons(head Value, tail *ListCell) *ListCell {
	return &ListCell{Head: head, Tail: tail, refcount: 1, id: allocID()}
}

// NewString allocates a fresh, owned byte buffer with refcount 1.
func NewString(b []byte) *StringBuf {
	return &StringBuf{Bytes: b, refcount: 1, id: allocID()}
}

// Substring allocates a zero-copy view into parent. It acquires a
// reference to the buffer that owns the bytes (parent itself, or the
// buffer parent borrows from), so releasing the view releases that
// owner instead of freeing borrowed bytes.
func Substring(parent *StringBuf, lo, hi int) *StringBuf {
	root := parent
	for root.Borrows != nil {
		root = root.Borrows
	}
	root.refcount++
	return &StringBuf{Bytes: parent.Bytes[lo:hi], Borrows: root, refcount: 1, id: allocID()}
}

// wrapList turns a freshly constructed *ListCell (refcount already 1
// from Cons/SliceToList) into an owned Value without incrementing
// again. Use ListV instead when sharing a *ListCell someone else
// already holds a reference to.
func wrapList(l *ListCell) Value { return Value{Kind: KindList, List: l} }

// wrapString is wrapList's counterpart for a freshly constructed
// *StringBuf (from NewString/Substring).
func wrapString(s *StringBuf) Value { return Value{Kind: KindString, Str: s} }

// Acquire increments v's reference count, if v carries one, and
// returns v unchanged for chaining.
func Acquire(v Value) Value {
	switch v.Kind {
	case KindSym:
		v.Sym.refcount++
	case KindList:
		if v.List != nil {
			v.List.refcount++
		}
	case KindString:
		v.Str.refcount++
	}
	return v
}

// Release decrements v's reference count, freeing it and cascading
// into its owned children once the count reaches zero. Releasing a
// value whose count is already zero is a double-free and panics,
// mirroring the C implementation's assert(refcount != 0).
func Release(v Value) {
	switch v.Kind {
	case KindSym:
		releaseSymbol(v.Sym)
	case KindList:
		releaseList(v.List)
	case KindString:
		releaseString(v.Str)
	}
}

func releaseSymbol(s *Symbol) {
	if s.refcount == 0 {
		panic("rholisp: double free of symbol " + s.Text)
	}
	s.refcount--
}

func releaseList(l *ListCell) {
	if l == nil {
		return
	}
	if l.refcount == 0 {
		panic("rholisp: double free of list cell")
	}
	l.refcount--
	if l.refcount == 0 {
		Release(l.Head)
		releaseList(l.Tail)
	}
}

func releaseString(s *StringBuf) {
	if s.refcount == 0 {
		panic("rholisp: double free of string")
	}
	s.refcount--
	if s.refcount == 0 && s.Borrows != nil {
		releaseString(s.Borrows)
	}
}

// ListToSlice flattens a proper list into a Go slice without
// consuming any references (each element keeps the reference it
// already had from the list).
func ListToSlice(l *ListCell) []Value {
	var out []Value
	for c := l; c != nil; c = c.Tail {
		out = append(out, c.Head)
	}
	return out
}

// SliceToList builds a freshly owned, refcount-1 list out of vs, each
// element Acquired into the new list.
func SliceToList(vs []Value) *ListCell {
	var tail *ListCell
	for i := len(vs) - 1; i >= 0; i-- {
		tail = Cons(Acquire(vs[i]), tail)
	}
	return tail
}

// acquireListCell increments l's reference count (nil-safe) and
// returns it, for building a new cell whose Tail aliases an existing,
// independently-owned list rather than one freshly built in place.
func acquireListCell(l *ListCell) *ListCell {
	if l != nil {
		l.refcount++
	}
	return l
}

// Len reports the number of cells in a proper list.
func Len(l *ListCell) int {
	n := 0
	for c := l; c != nil; c = c.Tail {
		n++
	}
	return n
}
