package rholisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvLookupWalksParentChain(t *testing.T) {
	root := NewEnvironment(nil, false)
	x := NewSymbol("x")
	root.Bind(x, Num(1))
	child := NewEnvironment(root, true)
	v, ok := child.Lookup(x)
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.Num)
}

func TestEnvLookupInnermostWins(t *testing.T) {
	root := NewEnvironment(nil, false)
	x := NewSymbol("x")
	root.Bind(x, Num(1))
	child := NewEnvironment(root, true)
	child.Bind(x, Num(2))
	v, _ := child.Lookup(x)
	assert.Equal(t, int64(2), v.Num)
}

func TestEnvLookupUnbound(t *testing.T) {
	root := NewEnvironment(nil, false)
	_, ok := root.Lookup(NewSymbol("nope"))
	assert.False(t, ok)
}

func TestEnvDefSkipsFixedFrames(t *testing.T) {
	root := NewEnvironment(nil, false)
	fixedFrame := NewEnvironment(root, true)
	x := NewSymbol("x")
	fixedFrame.Def(x, Num(42))

	_, okLocal := func() (Value, bool) {
		for _, b := range fixedFrame.bindings {
			if b.sym == x {
				return b.val, true
			}
		}
		return Value{}, false
	}()
	assert.False(t, okLocal, "Def should not bind into a fixed frame")

	v, ok := root.Lookup(x)
	assert.True(t, ok)
	assert.Equal(t, int64(42), v.Num)
}

// Def never overwrites, it appends: a later lookup of a name already
// bound in the frame Def landed in sees the newest binding, but the
// older one is still present underneath it.
func TestEnvDefIsAppendOnly(t *testing.T) {
	root := NewEnvironment(nil, false)
	x := NewSymbol("x")
	root.Def(x, Num(1))
	root.Def(x, Num(2))
	assert.Len(t, root.bindings, 2)
	v, _ := root.Lookup(x)
	assert.Equal(t, int64(2), v.Num)
}

func TestEnvAssignOverwritesExistingBinding(t *testing.T) {
	root := NewEnvironment(nil, false)
	x := NewSymbol("x")
	root.Bind(x, Num(1))
	child := NewEnvironment(root, true)
	assert.True(t, child.Assign(x, Num(2)))
	v, _ := root.Lookup(x)
	assert.Equal(t, int64(2), v.Num)
	assert.Len(t, root.bindings, 1)
}

func TestEnvAssignUnboundFails(t *testing.T) {
	root := NewEnvironment(nil, false)
	assert.False(t, root.Assign(NewSymbol("nope"), Num(1)))
}

func TestEnvClearReleasesBindings(t *testing.T) {
	root := NewEnvironment(nil, false)
	s := NewString([]byte("owned"))
	sv := wrapString(s)
	root.Bind(NewSymbol("s"), sv)
	Release(sv)
	assert.Equal(t, 1, s.refcount)
	root.Clear()
	assert.Equal(t, 0, s.refcount)
}

func TestEnvClearResetsParamsOf(t *testing.T) {
	root := NewEnvironment(nil, false)
	frame := NewEnvironment(root, true)
	frame.paramsOf = &ListCell{}
	frame.Clear()
	assert.Nil(t, frame.paramsOf)
}
