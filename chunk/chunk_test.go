package chunk

import (
	"reflect"
	"testing"

	"github.com/holisticode/chunkedseq/measure"
)

func newRing(cap int) *Chunk[int, int] { return New[int, int](Ring, cap, measure.Size[int]{}) }

func TestRingPushPopEnds(t *testing.T) {
	c := newRing(4)
	c.PushBack(1)
	c.PushBack(2)
	c.PushFront(0)
	if got := c.live(); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Fatalf("live() = %v, want [0 1 2]", got)
	}
	if c.Measure() != 3 {
		t.Fatalf("Measure() = %d, want 3", c.Measure())
	}
	if x := c.PopFront(); x != 0 {
		t.Fatalf("PopFront() = %d, want 0", x)
	}
	if x := c.PopBack(); x != 2 {
		t.Fatalf("PopBack() = %d, want 2", x)
	}
	if c.Measure() != 1 {
		t.Fatalf("Measure() after pops = %d, want 1", c.Measure())
	}
}

func TestRingWrapAround(t *testing.T) {
	c := newRing(4)
	for i := 0; i < 4; i++ {
		c.PushBack(i)
	}
	c.PopFront()
	c.PopFront()
	c.PushBack(4)
	c.PushBack(5)
	if got := c.live(); !reflect.DeepEqual(got, []int{2, 3, 4, 5}) {
		t.Fatalf("live() = %v, want [2 3 4 5]", got)
	}
	var segs [][]int
	c.ForEachSegment(func(s []int) { segs = append(segs, append([]int(nil), s...)) })
	var flat []int
	for _, s := range segs {
		flat = append(flat, s...)
	}
	if !reflect.DeepEqual(flat, []int{2, 3, 4, 5}) {
		t.Fatalf("ForEachSegment flattened = %v, want [2 3 4 5]", flat)
	}
	if len(segs) != 2 {
		t.Fatalf("expected a wrapped chunk to yield 2 segments, got %d", len(segs))
	}
}

func TestStackShapeFrontIsOK(t *testing.T) {
	c := New[int, int](Stack, 4, measure.Size[int]{})
	c.PushBack(1)
	c.PushBack(2)
	c.PushFront(0)
	if got := c.live(); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Fatalf("live() = %v, want [0 1 2]", got)
	}
	if x := c.PopFront(); x != 0 {
		t.Fatalf("PopFront() = %d, want 0", x)
	}
}

func TestBagRedirectsFrontToBack(t *testing.T) {
	c := New[int, int](Bag, 8, measure.Size[int]{})
	for i := 1; i <= 5; i++ {
		c.PushBack(i)
	}
	removed := c.PopFront()
	if c.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", c.Size())
	}
	seen := map[int]bool{removed: true}
	for i := 0; i < c.Size(); i++ {
		seen[c.At(i)] = true
	}
	for i := 1; i <= 5; i++ {
		if !seen[i] {
			t.Fatalf("item %d missing from bag ∪ {removed}", i)
		}
	}
}

func TestSplitAtAndConcatRoundTrip(t *testing.T) {
	c := newRing(8)
	for i := 1; i <= 6; i++ {
		c.PushBack(i)
	}
	other := newRing(8)
	c.SplitAt(4, other)
	if got := c.live(); !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Fatalf("self after split = %v, want [1 2 3 4]", got)
	}
	if got := other.live(); !reflect.DeepEqual(got, []int{5, 6}) {
		t.Fatalf("other after split = %v, want [5 6]", got)
	}
	if c.Measure() != 4 || other.Measure() != 2 {
		t.Fatalf("measures after split = %d, %d, want 4, 2", c.Measure(), other.Measure())
	}
	c.Concat(other)
	if got := c.live(); !reflect.DeepEqual(got, []int{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("self after concat = %v, want [1 2 3 4 5 6]", got)
	}
	if !other.Empty() {
		t.Fatalf("other should be empty after concat")
	}
	if c.Measure() != 6 {
		t.Fatalf("Measure() after concat = %d, want 6", c.Measure())
	}
}

func TestTransferPreservesOrder(t *testing.T) {
	a := newRing(8)
	for i := 1; i <= 4; i++ {
		a.PushBack(i)
	}
	b := newRing(8)
	for i := 10; i <= 11; i++ {
		b.PushBack(i)
	}
	a.TransferBackToFront(b, 2)
	if got := a.live(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("a after TransferBackToFront = %v, want [1 2]", got)
	}
	if got := b.live(); !reflect.DeepEqual(got, []int{3, 4, 10, 11}) {
		t.Fatalf("b after TransferBackToFront = %v, want [3 4 10 11]", got)
	}

	c := newRing(8)
	for i := 1; i <= 2; i++ {
		c.PushBack(i)
	}
	d := newRing(8)
	for i := 10; i <= 11; i++ {
		d.PushBack(i)
	}
	c.TransferFrontToBack(d, 2)
	if !c.Empty() {
		t.Fatalf("c should be empty after TransferFrontToBack of all items")
	}
	if got := d.live(); !reflect.DeepEqual(got, []int{10, 11, 1, 2}) {
		t.Fatalf("d after TransferFrontToBack = %v, want [10 11 1 2]", got)
	}
}

func TestGroupCacheMatchesRecompute(t *testing.T) {
	c := newRing(8)
	for i := 1; i <= 5; i++ {
		c.PushBack(i)
	}
	c.PopFront()
	c.PushFront(100)
	c.PopBack()
	want := measure.Fold[int, int](measure.Size[int]{}, c.live())
	if c.Measure() != want {
		t.Fatalf("incremental Measure() = %d, want recomputed %d", c.Measure(), want)
	}
}
