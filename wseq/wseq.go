// Package wseq is the weighted-sequence configuration of spec.md §6: a
// seq.Sequence using the Ring chunk shape and the Weighted measure,
// exposing weight-based splitting (e.g. "the first k items whose
// weights sum to at least w") on top of the generic index-based
// operations.
package wseq

import (
	"github.com/holisticode/chunkedseq/chunk"
	"github.com/holisticode/chunkedseq/measure"
	"github.com/holisticode/chunkedseq/seq"
)

// WeightedSeq is a sequence of items of type S, each contributing an
// integer weight via w.
type WeightedSeq[S any] struct {
	seq *seq.Sequence[S, int]
	w   func(S) int
}

// New constructs an empty weighted sequence with the given leaf/branch
// capacities and per-item weight function.
func New[S any](itemCap, branchCap int, w func(S) int) *WeightedSeq[S] {
	return &WeightedSeq[S]{
		seq: seq.New[S, int](chunk.Ring, itemCap, branchCap, measure.NewWeighted(w)),
		w:   w,
	}
}

func (ws *WeightedSeq[S]) PushBack(x S)  { ws.seq.PushBack(x) }
func (ws *WeightedSeq[S]) PushFront(x S) { ws.seq.PushFront(x) }
func (ws *WeightedSeq[S]) PopBack() S    { return ws.seq.PopBack() }
func (ws *WeightedSeq[S]) PopFront() S   { return ws.seq.PopFront() }
func (ws *WeightedSeq[S]) At(i int) S    { return ws.seq.At(i) }
func (ws *WeightedSeq[S]) Size() int     { return ws.seq.Size() }
func (ws *WeightedSeq[S]) Empty() bool   { return ws.seq.Empty() }
func (ws *WeightedSeq[S]) Clear()        { ws.seq.Clear() }

// TotalWeight returns the sum of every item's weight.
func (ws *WeightedSeq[S]) TotalWeight() int { return ws.seq.Measure() }

// SplitByWeight splits ws so that ws keeps the longest prefix whose
// cumulative weight stays below w, and other (which must be empty)
// receives the rest, starting with the item at which the running weight
// first reaches w — spec.md §4.2's weighted split_by scenario
// lifted to the sequence level.
func (ws *WeightedSeq[S]) SplitByWeight(w int, other *WeightedSeq[S]) {
	ws.seq.SplitBy(func(acc int) bool { return acc >= w }, other.seq)
}

// Concat appends other's contents to ws and empties other.
func (ws *WeightedSeq[S]) Concat(other *WeightedSeq[S]) { ws.seq.Concat(other.seq) }
