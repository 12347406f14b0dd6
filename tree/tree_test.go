package tree

import (
	"reflect"
	"testing"

	"github.com/holisticode/chunkedseq/chunk"
	"github.com/holisticode/chunkedseq/measure"
)

func newIntTree(leafCap, branchCap int) *Tree[int, int] {
	return New[int, int](chunk.Ring, leafCap, branchCap, measure.Size[int]{})
}

func collect(t *Tree[int, int]) []int {
	out := make([]int, 0, t.Size())
	for i := 0; i < t.Size(); i++ {
		out = append(out, t.At(i))
	}
	return out
}

func TestPushBackGrowsPastSingleLeaf(t *testing.T) {
	tr := newIntTree(4, 4)
	for i := 1; i <= 10; i++ {
		tr.PushBack(i)
	}
	if tr.Size() != 10 {
		t.Fatalf("Size() = %d, want 10", tr.Size())
	}
	if tr.Height() == 0 {
		t.Fatalf("tree of 10 items with leaf cap 4 should have height > 0")
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := collect(tr); !reflect.DeepEqual(got, want) {
		t.Fatalf("collect() = %v, want %v", got, want)
	}
	if tr.Measure() != 10 {
		t.Fatalf("Measure() = %d, want 10", tr.Measure())
	}
}

func TestPushFrontOrder(t *testing.T) {
	tr := newIntTree(4, 4)
	for i := 10; i >= 1; i-- {
		tr.PushFront(i)
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := collect(tr); !reflect.DeepEqual(got, want) {
		t.Fatalf("collect() = %v, want %v", got, want)
	}
}

func TestPushPopRoundTripBothEnds(t *testing.T) {
	tr := newIntTree(4, 4)
	for i := 1; i <= 20; i++ {
		tr.PushBack(i)
	}
	for i := 20; i >= 1; i-- {
		if x := tr.PopBack(); x != i {
			t.Fatalf("PopBack() = %d, want %d", x, i)
		}
	}
	if !tr.Empty() {
		t.Fatalf("tree should be empty after popping everything")
	}
}

func TestPopFrontAfterBulkPush(t *testing.T) {
	tr := newIntTree(4, 4)
	for i := 1; i <= 20; i++ {
		tr.PushBack(i)
	}
	for i := 1; i <= 20; i++ {
		if x := tr.PopFront(); x != i {
			t.Fatalf("PopFront() = %d, want %d", x, i)
		}
	}
	if !tr.Empty() {
		t.Fatalf("tree should be empty after popping everything")
	}
}

func TestSplitAtAndConcatRestoresOriginal(t *testing.T) {
	tr := newIntTree(4, 4)
	for i := 1; i <= 10; i++ {
		tr.PushBack(i)
	}
	other := newIntTree(4, 4)
	tr.SplitAt(4, other)
	if got := collect(tr); !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Fatalf("self after split = %v, want [1 2 3 4]", got)
	}
	if got := collect(other); !reflect.DeepEqual(got, []int{5, 6, 7, 8, 9, 10}) {
		t.Fatalf("other after split = %v, want [5 6 7 8 9 10]", got)
	}
	if tr.Measure() != 4 || other.Measure() != 6 {
		t.Fatalf("measures after split = %d, %d, want 4, 6", tr.Measure(), other.Measure())
	}
	tr.Concat(other)
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := collect(tr); !reflect.DeepEqual(got, want) {
		t.Fatalf("self after concat = %v, want %v", got, want)
	}
	if !other.Empty() {
		t.Fatalf("other should be empty after concat")
	}
}

func TestSplitAtEveryPositionRoundTrips(t *testing.T) {
	for size := 0; size <= 24; size++ {
		tr := newIntTree(4, 4)
		for i := 1; i <= size; i++ {
			tr.PushBack(i)
		}
		for i := 0; i <= size; i++ {
			self := newIntTree(4, 4)
			for k := 1; k <= size; k++ {
				self.PushBack(k)
			}
			other := newIntTree(4, 4)
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

func TestConcatUnevenHeights(t *testing.T) {
	small := newIntTree(4, 4)
	small.PushBack(1)
	big := newIntTree(4, 4)
	for i := 2; i <= 30; i++ {
		big.PushBack(i)
	}
	small.Concat(big)
	want := make([]int, 30)
	for i := range want {
		want[i] = i + 1
	}
	if got := collect(small); !reflect.DeepEqual(got, want) {
		t.Fatalf("collect() = %v, want %v", got, want)
	}

	big2 := newIntTree(4, 4)
	for i := 1; i <= 30; i++ {
		big2.PushBack(i)
	}
	small2 := newIntTree(4, 4)
	small2.PushBack(31)
	big2.Concat(small2)
	want2 := make([]int, 31)
	for i := range want2 {
		want2[i] = i + 1
	}
	if got := collect(big2); !reflect.DeepEqual(got, want2) {
		t.Fatalf("collect() = %v, want %v", got, want2)
	}
}

func TestSearchByFindsFirstTrue(t *testing.T) {
	tr := newIntTree(4, 4)
	for i := 1; i <= 10; i++ {
		tr.PushBack(i)
	}
	idx := tr.SearchBy(func(acc int) bool { return acc >= 4 })
	if idx != 3 {
		t.Fatalf("SearchBy(acc>=4) = %d, want 3", idx)
	}
}

func TestSplitByWeightedScenario(t *testing.T) {
	strs := []string{"Let's", "divide", "this", "string", "into", "two", "pieces"}
	w := measure.NewWeighted(func(s string) int {
		if len(s)%2 == 0 {
			return 1
		}
		return 0
	})
	tr := New[string, int](chunk.Ring, 4, 4, w)
	for _, s := range strs {
		tr.PushBack(s)
	}
	if tr.Measure() != 5 {
		t.Fatalf("total weight = %d, want 5", tr.Measure())
	}
	other := New[string, int](chunk.Ring, 4, 4, w)
	tr.SplitBy(func(acc int) bool { return acc >= 3 }, other)
	wantSelf := []string{"Let's", "divide", "this"}
	wantOther := []string{"string", "into", "two", "pieces"}
	gotSelf := make([]string, tr.Size())
	for i := range gotSelf {
		gotSelf[i] = tr.At(i)
	}
	gotOther := make([]string, other.Size())
	for i := range gotOther {
		gotOther[i] = other.At(i)
	}
	if !reflect.DeepEqual(gotSelf, wantSelf) {
		t.Fatalf("self = %v, want %v", gotSelf, wantSelf)
	}
	if !reflect.DeepEqual(gotOther, wantOther) {
		t.Fatalf("other = %v, want %v", gotOther, wantOther)
	}
}

func TestGrowsToHeightTwo(t *testing.T) {
	tr := newIntTree(4, 4)
	n := 4 * (4/2) * 3
	for i := 1; i <= n; i++ {
		tr.PushBack(i)
	}
	if tr.Height() < 2 {
		t.Fatalf("Height() = %d, want >= 2 after pushing %d items at leafCap=4,branchCap=4", tr.Height(), n)
	}
	want := make([]int, n)
	for i := range want {
		want[i] = i + 1
	}
	if got := collect(tr); !reflect.DeepEqual(got, want) {
		t.Fatalf("collect() mismatch after growing to height 2")
	}
}
