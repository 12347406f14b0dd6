package seq

import (
	"context"

	"github.com/holisticode/chunkedseq/internal/require"
	"golang.org/x/sync/errgroup"
)

// Snapshot is a frozen, read-only handle on a Sequence (spec.md §5's
// "shared read-only traversal... permitted only on frozen snapshots").
// Any mutation of the source Sequence after Freeze invalidates every
// Snapshot taken from it; using one afterward panics.
type Snapshot[S any, T any] struct {
	seq   *Sequence[S, T]
	genAt uint64
}

// Freeze returns a Snapshot of s's current contents. s itself remains
// mutable; mutating it invalidates the snapshot.
func (s *Sequence[S, T]) Freeze() *Snapshot[S, T] {
	return &Snapshot[S, T]{seq: s, genAt: s.gen}
}

func (sn *Snapshot[S, T]) checkValid() {
	require.True(sn.genAt == sn.seq.gen, "seq: snapshot used after its source sequence was mutated")
}

// Size returns the number of items captured by the snapshot.
func (sn *Snapshot[S, T]) Size() int { sn.checkValid(); return sn.seq.Size() }

// At returns the i-th item captured by the snapshot.
func (sn *Snapshot[S, T]) At(i int) S { sn.checkValid(); return sn.seq.At(i) }

// ForEachSegment visits every contiguous backing segment sequentially.
func (sn *Snapshot[S, T]) ForEachSegment(f func([]S)) {
	sn.checkValid()
	sn.seq.ForEachSegment(f)
	sn.checkValid()
}

// ParallelForEach fans out one goroutine per finger chunk plus one per
// chunk held in the middle tree, each calling f over its items, and
// waits for all of them — the read-only, worker-per-segment fan-out
// pattern storage/hasherstore.go uses for concurrent chunk processing,
// generalized from hashing to an arbitrary read-only visitor. f must not
// mutate the sequence; ctx cancellation stops remaining workers from
// starting new work but does not abort one already in flight.
func (sn *Snapshot[S, T]) ParallelForEach(ctx context.Context, f func(S)) error {
	sn.checkValid()
	seq := sn.seq
	g, ctx := errgroup.WithContext(ctx)

	visit := func(c interface{ ForEachSegment(func([]S)) }) func() error {
		return func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			c.ForEachSegment(func(seg []S) {
				for _, x := range seg {
					f(x)
				}
			})
			return nil
		}
	}

	g.Go(visit(seq.frontOuter))
	g.Go(visit(seq.frontInner))
	n := seq.middle.Size()
	for i := 0; i < n; i++ {
		ch := seq.middle.At(i)
		g.Go(visit(ch))
	}
	g.Go(visit(seq.backInner))
	g.Go(visit(seq.backOuter))

	err := g.Wait()
	sn.checkValid()
	return err
}
