package seq

import (
	"github.com/holisticode/chunkedseq/chunk"
	"github.com/holisticode/chunkedseq/measure"
)

// chunkMeasure lifts a sequence's item-level measure m to the per-chunk
// measure used by the middle tree: each payload there is a whole finger
// chunk, and its measure pairs the chunk's own cached m-measurement with
// its live item count, so the middle tree can locate both "the chunk
// whose weighted prefix crosses a target" (via the A component) and "the
// chunk containing global item index i" (via the B component) without
// re-scanning chunk contents (spec.md §4.4's bootstrapping: the middle
// stores chunks, and inserting one costs amortized O(1)).
type chunkMeasure[S any, T any] struct {
	user measure.Measure[S, T]
}

func (m chunkMeasure[S, T]) Identity() measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: m.user.Identity()}
}

func (m chunkMeasure[S, T]) Of(c *chunk.Chunk[S, T]) measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: c.Measure(), B: c.Size()}
}

func (m chunkMeasure[S, T]) Combine(x, y measure.PairValue[T, int]) measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: m.user.Combine(x.A, y.A), B: x.B + y.B}
}

type chunkMeasureGroup[S any, T any] struct {
	user measure.Invertible[S, T]
}

func (m chunkMeasureGroup[S, T]) Identity() measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: m.user.Identity()}
}

func (m chunkMeasureGroup[S, T]) Of(c *chunk.Chunk[S, T]) measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: c.Measure(), B: c.Size()}
}

func (m chunkMeasureGroup[S, T]) Combine(x, y measure.PairValue[T, int]) measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: m.user.Combine(x.A, y.A), B: x.B + y.B}
}

func (m chunkMeasureGroup[S, T]) Inverse(v measure.PairValue[T, int]) measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: m.user.Inverse(v.A), B: -v.B}
}

func newChunkMeasure[S any, T any](user measure.Measure[S, T]) measure.Measure[*chunk.Chunk[S, T], measure.PairValue[T, int]] {
	if inv, ok := measure.HasInverse[S, T](user); ok {
		return chunkMeasureGroup[S, T]{user: inv}
	}
	return chunkMeasure[S, T]{user: user}
}
