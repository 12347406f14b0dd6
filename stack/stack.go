// Package stack is the stack configuration of spec.md §6: a
// seq.Sequence using the Stack chunk shape (head fixed at index 0) and
// the Size measure, so push/pop/top at the back are O(1) and the
// symmetric front operations are available but O(K) at the chunk level.
package stack

import (
	"github.com/holisticode/chunkedseq/chunk"
	"github.com/holisticode/chunkedseq/measure"
	"github.com/holisticode/chunkedseq/seq"
)

// Stack is a LIFO sequence of items of type S.
type Stack[S any] struct {
	seq *seq.Sequence[S, int]
}

// New constructs an empty stack with the given leaf/branch capacities.
func New[S any](itemCap, branchCap int) *Stack[S] {
	return &Stack[S]{seq: seq.New[S, int](chunk.Stack, itemCap, branchCap, measure.Size[S]{})}
}

// Push pushes x onto the top of the stack.
func (s *Stack[S]) Push(x S) { s.seq.PushBack(x) }

// Pop removes and returns the top item.
func (s *Stack[S]) Pop() S { return s.seq.PopBack() }

// Top returns the top item without removing it.
func (s *Stack[S]) Top() S { return s.seq.Back() }

// Size returns the number of items on the stack.
func (s *Stack[S]) Size() int { return s.seq.Size() }

// Empty reports whether the stack holds no items.
func (s *Stack[S]) Empty() bool { return s.seq.Empty() }

// Clear empties the stack.
func (s *Stack[S]) Clear() { s.seq.Clear() }

// At returns the i-th item from the bottom of the stack (0-indexed).
func (s *Stack[S]) At(i int) S { return s.seq.At(i) }
