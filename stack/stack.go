// Package stack provides a LIFO stack of byte items.
package stack

import (
	"bytes"

	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// Stack holds copies of the pushed items.
type Stack struct {
	s *linkedliststack.Stack
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{s: linkedliststack.New()}
}

// Push places a copy of item on top.
func (s *Stack) Push(item []byte) {
	s.s.Push(bytes.Clone(item))
}

// Pop removes and returns the top item.
func (s *Stack) Pop() ([]byte, bool) {
	v, ok := s.s.Pop()
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// Top returns the top item without removing it.
func (s *Stack) Top() ([]byte, bool) {
	v, ok := s.s.Peek()
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// Size returns the number of items.
func (s *Stack) Size() int { return s.s.Size() }

// Empty reports whether the stack holds no items.
func (s *Stack) Empty() bool { return s.s.Empty() }
