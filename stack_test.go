// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackPushPopOrder(t *testing.T) {
	s := newStack[int](4)
	assert.True(t, s.Empty())
	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, *s.Peek())
	assert.Equal(t, 3, s.Pop())
	assert.Equal(t, 2, s.Pop())
	assert.Equal(t, 1, s.Pop())
	assert.True(t, s.Empty())
}

func TestStackPeekAt(t *testing.T) {
	s := newStack[int](4)
	s.Push(10)
	s.Push(20)
	s.Push(30)
	assert.Equal(t, 30, *s.PeekAt(0))
	assert.Equal(t, 20, *s.PeekAt(1))
	assert.Equal(t, 10, *s.PeekAt(2))
}

func TestStackAtAndIndexAddressAbsolutePosition(t *testing.T) {
	s := newStack[int](4)
	s.Push(100)
	parent := s.Index()
	s.Push(200)
	s.Push(300)

	// Mutate through At using the index captured before further pushes;
	// this is the exact access pattern apply's parentIndex propagation
	// relies on.
	*s.At(parent) = 999

	s.Pop()
	s.Pop()
	assert.Equal(t, 999, s.Pop())
}

func TestStackMutationThroughPeekIsVisible(t *testing.T) {
	s := newStack[int](2)
	s.Push(1)
	*s.Peek() = 42
	assert.Equal(t, 42, s.Pop())
}
