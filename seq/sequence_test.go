package seq

import (
	"context"
	"reflect"
	"sync"
	"testing"

	"github.com/holisticode/chunkedseq/chunk"
	"github.com/holisticode/chunkedseq/measure"
)

func newIntSeq() *Sequence[int, int] {
	return New[int, int](chunk.Ring, 4, 4, measure.Size[int]{})
}

func collect(s *Sequence[int, int]) []int {
	out := make([]int, 0, s.Size())
	for i := 0; i < s.Size(); i++ {
		out = append(out, s.At(i))
	}
	return out
}

func TestPushBackThenAt(t *testing.T) {
	s := newIntSeq()
	for i := 1; i <= 100; i++ {
		s.PushBack(i)
	}
	if s.Size() != 100 {
		t.Fatalf("Size() = %d, want 100", s.Size())
	}
	want := make([]int, 100)
	for i := range want {
		want[i] = i + 1
	}
	if got := collect(s); !reflect.DeepEqual(got, want) {
		t.Fatalf("collect() mismatch")
	}
	if err := s.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants: %v", err)
	}
}

func TestPushFrontThenAt(t *testing.T) {
	s := newIntSeq()
	for i := 100; i >= 1; i-- {
		s.PushFront(i)
	}
	want := make([]int, 100)
	for i := range want {
		want[i] = i + 1
	}
	if got := collect(s); !reflect.DeepEqual(got, want) {
		t.Fatalf("collect() mismatch")
	}
	if err := s.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants: %v", err)
	}
}

func TestPushPopRoundTripBothEnds(t *testing.T) {
	s := newIntSeq()
	for i := 1; i <= 50; i++ {
		s.PushBack(i)
	}
	for i := 50; i >= 1; i-- {
		if x := s.PopBack(); x != i {
			t.Fatalf("PopBack() = %d, want %d", x, i)
		}
	}
	if !s.Empty() {
		t.Fatalf("sequence should be empty")
	}
}

func TestPopFrontAfterBulkPush(t *testing.T) {
	s := newIntSeq()
	for i := 1; i <= 50; i++ {
		s.PushBack(i)
	}
	for i := 1; i <= 50; i++ {
		if x := s.PopFront(); x != i {
			t.Fatalf("PopFront() = %d, want %d", x, i)
		}
	}
	if !s.Empty() {
		t.Fatalf("sequence should be empty")
	}
}

func TestMixedPushPopBothEndsStaysOrdered(t *testing.T) {
	s := newIntSeq()
	var want []int
	next := 0
	for i := 0; i < 30; i++ {
		next++
		s.PushBack(next)
		want = append(want, next)
		if i%3 == 0 {
			next++
			s.PushFront(-next)
			want = append([]int{-next}, want...)
		}
	}
	for i := 0; i < 10; i++ {
		if x := s.PopBack(); x != want[len(want)-1] {
			t.Fatalf("PopBack() = %d, want %d", x, want[len(want)-1])
		}
		want = want[:len(want)-1]
	}
	for i := 0; i < 5; i++ {
		if x := s.PopFront(); x != want[0] {
			t.Fatalf("PopFront() = %d, want %d", x, want[0])
		}
		want = want[1:]
	}
	if got := collect(s); !reflect.DeepEqual(got, want) {
		t.Fatalf("collect() = %v, want %v", got, want)
	}
}

func TestRedistributeWhenOneEndDrained(t *testing.T) {
	s := newIntSeq()
	for i := 1; i <= 3; i++ {
		s.PushFront(i)
	}
	// all 3 items sit in front fingers; popping from the back must
	// trigger redistribution rather than panic.
	x := s.PopBack()
	if x != 1 {
		t.Fatalf("PopBack() = %d, want 1", x)
	}
	if s.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", s.Size())
	}
}

func TestSplitAtAndConcatRestoresOriginal(t *testing.T) {
	s := newIntSeq()
	for i := 1; i <= 40; i++ {
		s.PushBack(i)
	}
	other := newIntSeq()
	s.SplitAt(15, other)
	wantSelf := make([]int, 15)
	for i := range wantSelf {
		wantSelf[i] = i + 1
	}
	wantOther := make([]int, 25)
	for i := range wantOther {
		wantOther[i] = i + 16
	}
	if got := collect(s); !reflect.DeepEqual(got, wantSelf) {
		t.Fatalf("self after split = %v, want %v", got, wantSelf)
	}
	if got := collect(other); !reflect.DeepEqual(got, wantOther) {
		t.Fatalf("other after split = %v, want %v", got, wantOther)
	}
	s.Concat(other)
	want := make([]int, 40)
	for i := range want {
		want[i] = i + 1
	}
	if got := collect(s); !reflect.DeepEqual(got, want) {
		t.Fatalf("self after concat = %v, want %v", got, want)
	}
	if !other.Empty() {
		t.Fatalf("other should be empty after concat")
	}
}

func TestSplitAtEveryPositionRoundTrips(t *testing.T) {
	for size := 0; size <= 40; size += 3 {
		for i := 0; i <= size; i++ {
			self := newIntSeq()
			for k := 1; k <= size; k++ {
				self.PushBack(k)
			}
			other := newIntSeq()
			self.SplitAt(i, other)
			if self.Size() != i || other.Size() != size-i {
				t.Fatalf("size=%d i=%d: split sizes = %d, %d, want %d, %d", size, i, self.Size(), other.Size(), i, size-i)
			}
			self.Concat(other)
			want := make([]int, size)
			for k := range want {
				want[k] = k + 1
			}
			if got := collect(self); !reflect.DeepEqual(got, want) {
				t.Fatalf("size=%d i=%d: round trip = %v, want %v", size, i, got, want)
			}
		}
	}
}

func TestAssignReplacesExactlyOneItem(t *testing.T) {
	s := newIntSeq()
	for i := 1; i <= 20; i++ {
		s.PushBack(i)
	}
	s.Assign(10, -1)
	want := make([]int, 20)
	for i := range want {
		want[i] = i + 1
	}
	want[10] = -1
	if got := collect(s); !reflect.DeepEqual(got, want) {
		t.Fatalf("collect() = %v, want %v", got, want)
	}
}

func TestSearchBySize(t *testing.T) {
	s := newIntSeq()
	for i := 1; i <= 20; i++ {
		s.PushBack(i)
	}
	idx := s.SearchBy(func(acc int) bool { return acc >= 5 })
	if idx != 4 {
		t.Fatalf("SearchBy(acc>=5) = %d, want 4", idx)
	}
}

func TestSplitMidExtractsPivot(t *testing.T) {
	s := newIntSeq()
	for i := 1; i <= 20; i++ {
		s.PushBack(i)
	}
	other := newIntSeq()
	pivot := s.SplitMid(func(acc int) bool { return acc >= 10 }, other)
	if pivot != 10 {
		t.Fatalf("pivot = %d, want 10", pivot)
	}
	if s.Size() != 9 || other.Size() != 10 {
		t.Fatalf("sizes = %d, %d, want 9, 10", s.Size(), other.Size())
	}
}

func TestIteratorWalksInOrder(t *testing.T) {
	s := newIntSeq()
	for i := 1; i <= 20; i++ {
		s.PushBack(i)
	}
	it := s.Begin()
	for i := 1; i <= 20; i++ {
		if x := it.Get(); x != i {
			t.Fatalf("iterator.Get() = %d, want %d", x, i)
		}
		it.Next()
	}
	if !it.Equal(s.End()) {
		t.Fatalf("iterator should equal End() after walking the whole sequence")
	}
}

func TestIteratorPanicsAfterMutation(t *testing.T) {
	s := newIntSeq()
	s.PushBack(1)
	it := s.Begin()
	s.PushBack(2)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic using an iterator after mutation")
		}
	}()
	it.Get()
}

func TestSnapshotParallelForEachVisitsEveryItem(t *testing.T) {
	s := newIntSeq()
	for i := 1; i <= 200; i++ {
		s.PushBack(i)
	}
	snap := s.Freeze()
	var mu sync.Mutex
	seen := make(map[int]bool)
	err := snap.ParallelForEach(context.Background(), func(x int) {
		mu.Lock()
		seen[x] = true
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("ParallelForEach: %v", err)
	}
	if len(seen) != 200 {
		t.Fatalf("visited %d items, want 200", len(seen))
	}
}

func TestResizeGrowsAndShrinks(t *testing.T) {
	s := newIntSeq()
	s.Resize(10, 7)
	if s.Size() != 10 {
		t.Fatalf("Size() = %d, want 10", s.Size())
	}
	for i := 0; i < 10; i++ {
		if s.At(i) != 7 {
			t.Fatalf("At(%d) = %d, want 7", i, s.At(i))
		}
	}
	s.Resize(3, 0)
	if s.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", s.Size())
	}
}
