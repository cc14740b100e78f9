package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tradestats/date"
	"github.com/etnz/tradestats/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	opts renderer.DashboardOptions
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the full performance dashboard" }
func (*dashboardCmd) Usage() string {
	return `pts dashboard [-no-yearly] [-no-positions] [-no-values]

  Displays every section: full period performance, yearly performance,
  positions and the monthly portfolio value.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.opts.SkipYearly, "no-yearly", false, "Do not display the yearly performance")
	f.BoolVar(&c.opts.SkipPositions, "no-positions", false, "Do not display the positions")
	f.BoolVar(&c.opts.SkipValues, "no-values", false, "Do not display the portfolio value")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, status := analyze(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	if *jsonOutput {
		return printJSON(report)
	}
	opts := c.opts
	opts.SortByWeight = true
	opts.ValuesPeriod = date.Monthly
	printMarkdown(renderer.DashboardMarkdown(report, opts))
	return subcommands.ExitSuccess
}
