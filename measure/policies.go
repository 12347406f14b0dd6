package measure

// Trivial is the unit monoid: every item measures to the zero value of
// struct{}, so Trivial is usable with any item type that carries no
// size-like measurement at all (spec.md §4.2 "Trivial" row).
type Trivial[S any] struct{}

func (Trivial[S]) Identity() struct{}            { return struct{}{} }
func (Trivial[S]) Of(S) struct{}                 { return struct{}{} }
func (Trivial[S]) Combine(struct{}, struct{}) struct{} { return struct{}{} }
func (Trivial[S]) Inverse(struct{}) struct{}     { return struct{}{} }

// Size measures every item as 1 under the integer additive group, giving
// the `size`/`at`/iterator-`size()` operations spec.md §6 requires.
type Size[S any] struct{}

func (Size[S]) Identity() int          { return 0 }
func (Size[S]) Of(S) int               { return 1 }
func (Size[S]) Combine(a, b int) int   { return a + b }
func (Size[S]) Inverse(a int) int      { return -a }

// Weighted measures each item by a client-supplied weight function under
// the integer additive group (spec.md §4.2 "Weighted-by-w").
type Weighted[S any] struct {
	W func(S) int
}

func NewWeighted[S any](w func(S) int) Weighted[S] { return Weighted[S]{W: w} }

func (m Weighted[S]) Identity() int        { return 0 }
func (m Weighted[S]) Of(s S) int           { return m.W(s) }
func (m Weighted[S]) Combine(a, b int) int { return a + b }
func (m Weighted[S]) Inverse(a int) int    { return -a }

// Pair composes two measures into the product monoid T_A x T_B (spec.md
// §4.2 "Pair(A,B)"). Pair itself has no Inverse method — see PairGroup
// below for why that split exists — so it is
// correct (if possibly slower, recomputing rather than O(1)-repairing on
// end mutations) even when one or both components are only monoids.
type Pair[S any, A any, B any] struct {
	MA Measure[S, A]
	MB Measure[S, B]
}

// PairValue is the measured type of a Pair measure.
type PairValue[A any, B any] struct {
	A A
	B B
}

func (p Pair[S, A, B]) Identity() PairValue[A, B] {
	return PairValue[A, B]{A: p.MA.Identity(), B: p.MB.Identity()}
}

func (p Pair[S, A, B]) Of(s S) PairValue[A, B] {
	return PairValue[A, B]{A: p.MA.Of(s), B: p.MB.Of(s)}
}

func (p Pair[S, A, B]) Combine(x, y PairValue[A, B]) PairValue[A, B] {
	return PairValue[A, B]{A: p.MA.Combine(x.A, y.A), B: p.MB.Combine(x.B, y.B)}
}

// PairGroup is Pair's invertible variant, used only when both components
// are themselves Invertible. Keeping this as a distinct type from Pair —
// rather than giving Pair an unconditional Inverse method — is what lets
// measure.HasInverse tell the truth: a type that always implements
// Invertible would report every Pair as a group even when, say, MinKey
// (a monoid with no inverse) is one of its components.
type PairGroup[S any, A any, B any] struct {
	MA Invertible[S, A]
	MB Invertible[S, B]
}

func (p PairGroup[S, A, B]) Identity() PairValue[A, B] {
	return PairValue[A, B]{A: p.MA.Identity(), B: p.MB.Identity()}
}

func (p PairGroup[S, A, B]) Of(s S) PairValue[A, B] {
	return PairValue[A, B]{A: p.MA.Of(s), B: p.MB.Of(s)}
}

func (p PairGroup[S, A, B]) Combine(x, y PairValue[A, B]) PairValue[A, B] {
	return PairValue[A, B]{A: p.MA.Combine(x.A, y.A), B: p.MB.Combine(x.B, y.B)}
}

func (p PairGroup[S, A, B]) Inverse(v PairValue[A, B]) PairValue[A, B] {
	return PairValue[A, B]{A: p.MA.Inverse(v.A), B: p.MB.Inverse(v.B)}
}

// NewPair builds the product measure of ma and mb, returning a PairGroup
// (and so reporting Invertible via HasInverse) only when both ma and mb
// are themselves invertible; otherwise it returns the plain Pair monoid.
func NewPair[S any, A any, B any](ma Measure[S, A], mb Measure[S, B]) Measure[S, PairValue[A, B]] {
	invA, okA := HasInverse[S, A](ma)
	invB, okB := HasInverse[S, B](mb)
	if okA && okB {
		return PairGroup[S, A, B]{MA: invA, MB: invB}
	}
	return Pair[S, A, B]{MA: ma, MB: mb}
}

// MinKeyValue is Option<K>: ok is false for the identity (no items seen).
type MinKeyValue[K any] struct {
	Key K
	Ok  bool
}

// MinKey measures each item by a client-supplied key extractor under the
// min-with-bottom monoid (spec.md §4.2 "Min-key"), used by the ordered
// association-map configuration (spec.md §6 "Associative map").
type MinKey[S any, K any] struct {
	Key  func(S) K
	Less func(a, b K) bool
}

func NewMinKey[S any, K any](key func(S) K, less func(a, b K) bool) MinKey[S, K] {
	return MinKey[S, K]{Key: key, Less: less}
}

func (m MinKey[S, K]) Identity() MinKeyValue[K] { return MinKeyValue[K]{} }

func (m MinKey[S, K]) Of(s S) MinKeyValue[K] {
	return MinKeyValue[K]{Key: m.Key(s), Ok: true}
}

// Combine returns whichever of a, b has the smaller key; a is preferred on
// a tie so Combine stays deterministic without requiring strict ordering.
func (m MinKey[S, K]) Combine(a, b MinKeyValue[K]) MinKeyValue[K] {
	switch {
	case !a.Ok:
		return b
	case !b.Ok:
		return a
	case m.Less(b.Key, a.Key):
		return b
	default:
		return a
	}
}

// MinKey has no inverse: removing the minimum does not determine the new
// minimum from the old one and the removed value alone, so it is a
// monoid, not a group (spec.md §4.2's table lists no inverse for it).
