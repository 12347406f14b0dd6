// Command chunkbench drives synthetic workloads against the chunked
// sequence engine and reports timing and retained memory, the way
// geth's miner/stress tools drive synthetic chains against the rest of
// the stack.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pborman/uuid"
	"github.com/tilinna/clock"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/holisticode/chunkedseq/log"
)

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "path to a TOML config file overriding the defaults",
	}
	itemsFlag = cli.IntFlag{
		Name:  "items",
		Usage: "number of items to push through the workload",
		Value: defaultConfig().Items,
	}
	itemCapFlag = cli.IntFlag{
		Name:  "item-cap",
		Usage: "fixed chunk capacity K",
		Value: defaultConfig().ItemCap,
	}
	branchCapFlag = cli.IntFlag{
		Name:  "branch-cap",
		Usage: "middle-tree branching factor",
		Value: defaultConfig().BranchCap,
	}
	workloadFlag = cli.StringFlag{
		Name:  "workload",
		Usage: "pushback, pushpop, or splitconcat",
		Value: defaultConfig().Workload,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "chunkbench"
	app.Usage = "benchmark the chunked sequence engine"
	app.Flags = []cli.Flag{configFlag, itemsFlag, itemCapFlag, branchCapFlag, workloadFlag}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Error("chunkbench: fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	cfg := defaultConfig()
	if path := ctx.String(configFlag.Name); path != "" {
		loaded, err := loadConfig(path)
		if err != nil {
			return fmt.Errorf("chunkbench: loading config: %w", err)
		}
		cfg = loaded
	}
	if ctx.IsSet(itemsFlag.Name) {
		cfg.Items = ctx.Int(itemsFlag.Name)
	}
	if ctx.IsSet(itemCapFlag.Name) {
		cfg.ItemCap = ctx.Int(itemCapFlag.Name)
	}
	if ctx.IsSet(branchCapFlag.Name) {
		cfg.BranchCap = ctx.Int(branchCapFlag.Name)
	}
	if ctx.IsSet(workloadFlag.Name) {
		cfg.Workload = ctx.String(workloadFlag.Name)
	}

	runID := uuid.NewRandom()
	log.Info("chunkbench: run id", "id", runID.String())

	var out = os.Stdout
	writer := colorable.NewColorable(out)
	if !isatty.IsTerminal(out.Fd()) {
		writer = colorable.NewNonColorable(out)
	}

	res, err := runBench(context.Background(), writer, clock.Realtime(), cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(writer, "%s: %d items in %s, footprint %s\n", res.workload, res.items, res.elapsed, res.footprint.String())
	return nil
}
