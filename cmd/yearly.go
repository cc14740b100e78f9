package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tradestats/renderer"
	"github.com/google/subcommands"
)

type yearlyCmd struct{}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display the portfolio performance of each calendar year" }
func (*yearlyCmd) Usage() string {
	return `pts yearly

  Displays the performance of the portfolio for each calendar year with at
  least one trade. Each year only uses the trades dated within that year.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {}

func (c *yearlyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, status := analyze(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	if *jsonOutput {
		return printJSON(report.Yearly)
	}
	printMarkdown(renderer.YearlyMarkdown(report))
	return subcommands.ExitSuccess
}
