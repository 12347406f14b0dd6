package seq

import (
	"github.com/holisticode/chunkedseq/chunk"
	"github.com/holisticode/chunkedseq/measure"
)

// scanChunkFor scans ch left to right, combining m.Of(item) against the
// running accumulator acc, and returns the first local index where p
// holds (advancing *acc through that item) or -1 if p never holds
// (leaving *acc as the chunk's full contribution).
func scanChunkFor[S any, T any](ch *chunk.Chunk[S, T], m measure.Measure[S, T], acc *T, p func(T) bool) int {
	for i := 0; i < ch.Size(); i++ {
		cand := m.Combine(*acc, m.Of(ch.At(i)))
		if p(cand) {
			*acc = cand
			return i
		}
		*acc = cand
	}
	return -1
}

// SearchBy returns the index of the first item whose inclusive ⊕-prefix
// satisfies p, scanning the fingers and the middle tree in sequence
// order (spec.md §4.4 "search_by"). p must be monotone. Returns Size()
// if p never holds. Fingers are scanned item by item; the middle is
// narrowed to its target chunk in O(log n) before that chunk, too, is
// scanned item by item.
func (s *Sequence[S, T]) SearchBy(p func(T) bool) int {
	acc := s.m.Identity()
	base := 0

	if li := scanChunkFor(s.frontOuter, s.m, &acc, p); li >= 0 {
		return base + li
	}
	base += s.frontOuter.Size()

	if li := scanChunkFor(s.frontInner, s.m, &acc, p); li >= 0 {
		return base + li
	}
	base += s.frontInner.Size()

	if !s.middle.Empty() {
		outerAcc := acc
		chunkIdx, prefix := s.middle.SearchByWithPrefix(func(local measure.PairValue[T, int]) bool {
			return p(s.m.Combine(outerAcc, local.A))
		})
		if chunkIdx < s.middle.Size() {
			chunkBase := base + prefix.B
			chunkAcc := s.m.Combine(acc, prefix.A)
			target := s.middle.At(chunkIdx)
			if li := scanChunkFor(target, s.m, &chunkAcc, p); li >= 0 {
				return chunkBase + li
			}
			acc = chunkAcc
			base = chunkBase + target.Size()
		} else {
			acc = s.m.Combine(acc, s.middle.Measure().A)
			base += s.middle.Measure().B
		}
	}

	if li := scanChunkFor(s.backInner, s.m, &acc, p); li >= 0 {
		return base + li
	}
	base += s.backInner.Size()

	if li := scanChunkFor(s.backOuter, s.m, &acc, p); li >= 0 {
		return base + li
	}
	base += s.backOuter.Size()

	return base
}
