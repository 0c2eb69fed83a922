package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	var s Stack[int]

	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)

	s.Push(1)
	s.Push(2)
	s.Push(3)

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, top)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{3, 2, 1}, s.Items())
	assert.Equal(t, []int{1, 2, 3}, s.Oldest())

	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, s.Len())
}

func TestPopLastError(t *testing.T) {
	l := New()
	l.PushError("e1")
	l.PushError("e2")
	l.PushError("e3")

	e, ok := l.PopLastError()
	require.True(t, ok)
	assert.Equal(t, "e3", e)
	assert.Equal(t, []string{"e2", "e1"}, l.Errors())
}

func TestPopLastErrorEmpty(t *testing.T) {
	l := New()
	l.PushOperation("op")

	_, ok := l.PopLastError()
	assert.False(t, ok)
	assert.Equal(t, []string{"op"}, l.Operations())
}

func TestViewsAreNonDestructive(t *testing.T) {
	l := New()
	l.PushOperation("a")
	l.PushOperation("b")

	assert.Equal(t, []string{"b", "a"}, l.Operations())
	assert.Equal(t, []string{"b", "a"}, l.Operations())
}

func TestRestoreRoundTrip(t *testing.T) {
	l := New()
	l.PushOperation("op1")
	l.PushOperation("op2")
	l.PushError("e1")
	l.PushError("e2")

	ops, errs := l.Snapshot()
	assert.Equal(t, []string{"op1", "op2"}, ops)
	assert.Equal(t, []string{"e1", "e2"}, errs)

	restored := Restore(ops, errs)
	assert.Equal(t, l.Operations(), restored.Operations())
	assert.Equal(t, l.Errors(), restored.Errors())

	e, ok := restored.PopLastError()
	require.True(t, ok)
	assert.Equal(t, "e2", e)

	opDepth, errDepth := restored.Depth()
	assert.Equal(t, 2, opDepth)
	assert.Equal(t, 1, errDepth)
}

func TestEntryFormat(t *testing.T) {
	assert.Equal(t, "date: 01/02/2024 10:30 AM - input: mkdir Docs",
		OperationEntry("01/02/2024 10:30 AM", "mkdir Docs"))
	assert.Equal(t, "date: 01/02/2024 10:30 AM - input: cd X - error: The specified path does not exist.",
		ErrorEntry("01/02/2024 10:30 AM", "cd X", "The specified path does not exist."))
}
