package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tilinna/clock"
	"github.com/vbauerster/mpb"
	"github.com/vbauerster/mpb/decor"

	"github.com/holisticode/chunkedseq/alloc"
	"github.com/holisticode/chunkedseq/chunk"
	"github.com/holisticode/chunkedseq/deque"
	"github.com/holisticode/chunkedseq/log"
	"github.com/holisticode/chunkedseq/measure"
	"github.com/holisticode/chunkedseq/seq"
	"github.com/holisticode/chunkedseq/trace"
)

// result is one workload's timing and memory outcome.
type result struct {
	workload  string
	items     int
	elapsed   time.Duration
	footprint alloc.Footprint
}

// runBench drives cfg's chosen workload against a deque and reports
// timing via an injected clock.Clock (so tests can supply a fake clock
// instead of wall time) and a progress bar over the item count.
func runBench(ctx context.Context, out io.Writer, c clock.Clock, cfg benchConfig) (result, error) {
	log.Info("chunkbench: starting run", "workload", cfg.Workload, "items", cfg.Items, "itemCap", cfg.ItemCap, "branchCap", cfg.BranchCap)

	p := mpb.New(mpb.WithOutput(out))
	bar := p.AddBar(int64(cfg.Items),
		mpb.PrependDecorators(decor.Name(cfg.Workload)),
		mpb.AppendDecorators(decor.Percentage()),
	)

	start := c.Now()
	var footprint alloc.Footprint

	switch cfg.Workload {
	case "pushback":
		footprint = runPushBack(cfg, bar)
	case "pushpop":
		footprint = runPushPop(cfg, bar)
	case "splitconcat":
		footprint = runSplitConcat(ctx, cfg, bar)
	default:
		return result{}, fmt.Errorf("chunkbench: unknown workload %q", cfg.Workload)
	}

	elapsed := c.Now().Sub(start)
	p.Wait()
	log.Info("chunkbench: run complete", "elapsed", elapsed, "footprint", footprint.String())

	return result{workload: cfg.Workload, items: cfg.Items, elapsed: elapsed, footprint: footprint}, nil
}

func runPushBack(cfg benchConfig, bar *mpb.Bar) alloc.Footprint {
	d := deque.New[int](cfg.ItemCap, cfg.BranchCap)
	for i := 0; i < cfg.Items; i++ {
		d.PushBack(i)
		bar.Increment()
	}
	return alloc.Measure(d)
}

func runPushPop(cfg benchConfig, bar *mpb.Bar) alloc.Footprint {
	d := deque.New[int](cfg.ItemCap, cfg.BranchCap)
	for i := 0; i < cfg.Items; i++ {
		if i%2 == 0 {
			d.PushBack(i)
		} else {
			d.PushFront(i)
		}
		bar.Increment()
	}
	for !d.Empty() {
		d.PopBack()
	}
	return alloc.Measure(d)
}

func runSplitConcat(ctx context.Context, cfg benchConfig, bar *mpb.Bar) alloc.Footprint {
	s := seq.New[int, int](chunk.Ring, cfg.ItemCap, cfg.BranchCap, measure.Size[int]{})
	for i := 0; i < cfg.Items; i++ {
		s.PushBack(i)
		bar.Increment()
	}
	step := cfg.ItemCap
	if step < 1 {
		step = 1
	}
	for off := 0; off+step < s.Size(); off += step {
		other := seq.New[int, int](chunk.Ring, cfg.ItemCap, cfg.BranchCap, measure.Size[int]{})

		_, splitDone := trace.Split(ctx, step)
		s.SplitAt(step, other)
		splitDone()

		_, concatDone := trace.Concat(ctx, s.Size(), other.Size())
		s.Concat(other)
		concatDone()
	}
	return alloc.Measure(s)
}
