package tree

import "github.com/holisticode/chunkedseq/measure"

// The tree caches, at every node, both the client's configured measure T
// and a structural item count — the latter lets At/Size work regardless
// of which measure policy a sequence is configured with, per spec.md §6's
// note that indexed access "requires size-measure policy": this package
// always tracks size internally (as measure.PairValue[T, int]) and the
// derived configurations in spec.md §6 decide which of T/int to expose.
//
// Two wrapper pairs exist (leaf vs. node measures; group vs. plain) so
// that measure.HasInverse correctly reports invertibility only when the
// user's own measure supports it — the int component is always
// invertible, but wrapping it in a type that unconditionally implements
// Invertible would make HasInverse lie about a non-group user measure.

type leafMeasure[P any, T any] struct {
	user measure.Measure[P, T]
}

func (a leafMeasure[P, T]) Identity() measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: a.user.Identity()}
}

func (a leafMeasure[P, T]) Of(p P) measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: a.user.Of(p), B: 1}
}

func (a leafMeasure[P, T]) Combine(x, y measure.PairValue[T, int]) measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: a.user.Combine(x.A, y.A), B: x.B + y.B}
}

type leafMeasureGroup[P any, T any] struct {
	user measure.Invertible[P, T]
}

func (a leafMeasureGroup[P, T]) Identity() measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: a.user.Identity()}
}

func (a leafMeasureGroup[P, T]) Of(p P) measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: a.user.Of(p), B: 1}
}

func (a leafMeasureGroup[P, T]) Combine(x, y measure.PairValue[T, int]) measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: a.user.Combine(x.A, y.A), B: x.B + y.B}
}

func (a leafMeasureGroup[P, T]) Inverse(v measure.PairValue[T, int]) measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: a.user.Inverse(v.A), B: -v.B}
}

func newLeafMeasure[P any, T any](user measure.Measure[P, T]) measure.Measure[P, measure.PairValue[T, int]] {
	if inv, ok := measure.HasInverse[P, T](user); ok {
		return leafMeasureGroup[P, T]{user: inv}
	}
	return leafMeasure[P, T]{user: user}
}

// childMeasure/childMeasureGroup measure *node[P,T] items (a tree's
// interior chunk holds child pointers, not payload items).

type childMeasure[P any, T any] struct {
	user measure.Measure[P, T]
}

func (c childMeasure[P, T]) Identity() measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: c.user.Identity()}
}

func (c childMeasure[P, T]) Of(n *node[P, T]) measure.PairValue[T, int] { return n.measure() }

func (c childMeasure[P, T]) Combine(x, y measure.PairValue[T, int]) measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: c.user.Combine(x.A, y.A), B: x.B + y.B}
}

type childMeasureGroup[P any, T any] struct {
	user measure.Invertible[P, T]
}

func (c childMeasureGroup[P, T]) Identity() measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: c.user.Identity()}
}

func (c childMeasureGroup[P, T]) Of(n *node[P, T]) measure.PairValue[T, int] { return n.measure() }

func (c childMeasureGroup[P, T]) Combine(x, y measure.PairValue[T, int]) measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: c.user.Combine(x.A, y.A), B: x.B + y.B}
}

func (c childMeasureGroup[P, T]) Inverse(v measure.PairValue[T, int]) measure.PairValue[T, int] {
	return measure.PairValue[T, int]{A: c.user.Inverse(v.A), B: -v.B}
}

func newChildMeasure[P any, T any](user measure.Measure[P, T]) measure.Measure[*node[P, T], measure.PairValue[T, int]] {
	if inv, ok := measure.HasInverse[P, T](user); ok {
		return childMeasureGroup[P, T]{user: inv}
	}
	return childMeasure[P, T]{user: user}
}
