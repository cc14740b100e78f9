package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradestats"
	"github.com/etnz/tradestats/renderer"
	"github.com/google/subcommands"
)

type positionsCmd struct {
	sort string
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display the open positions and their weights" }
func (*positionsCmd) Usage() string {
	return `pts positions [-sort weight|ledger]

  Displays the net quantity of every symbol still held, valued at the price of
  its last trade, and its weight in the total exposure. Short positions have a
  negative quantity.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "weight", "Order of the positions: 'weight' (decreasing) or 'ledger' (first trade)")
}

func (c *positionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var byWeight bool
	switch c.sort {
	case "weight":
		byWeight = true
	case "ledger":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown sort order %q, want weight or ledger\n", c.sort)
		return subcommands.ExitUsageError
	}

	report, status := analyze(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	if *jsonOutput {
		positions := report.Positions
		if byWeight {
			positions = append([]tradestats.PositionRecord(nil), positions...)
			tradestats.SortPositionsByWeight(positions)
		}
		return printJSON(positions)
	}
	printMarkdown(renderer.PositionsMarkdown(report, byWeight))
	return subcommands.ExitSuccess
}
