// Package trace wraps the expensive structural operations (split,
// concat, rebalance) in opentracing spans, no-op until a real tracer is
// installed via InitJaeger. Grounded on the teacher's own
// storage/netstore.go, which wraps store/retrieve calls in spans via
// opentracing-go the same way.
package trace

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
)

// Split starts a span around a split_at/split_by call at index/position
// n, returning the derived context and a finish func the caller defers.
func Split(ctx context.Context, n int) (context.Context, func()) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "chunkedseq.split")
	span.SetTag("at", n)
	return ctx, span.Finish
}

// Concat starts a span around a concat call, tagged with the sizes of
// both operands.
func Concat(ctx context.Context, leftSize, rightSize int) (context.Context, func()) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "chunkedseq.concat")
	span.SetTag("left_size", leftSize)
	span.SetTag("right_size", rightSize)
	return ctx, span.Finish
}

// Rebalance starts a span around a steal-or-merge repair at tree height
// h. Nothing in this module calls it; tree's repair paths are untraced.
func Rebalance(ctx context.Context, h int) (context.Context, func()) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "chunkedseq.rebalance")
	span.SetTag("height", h)
	return ctx, span.Finish
}
