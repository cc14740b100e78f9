package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tradestats/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio performance over the full ledger" }
func (*summaryCmd) Usage() string {
	return `pts summary

  Displays the performance of the portfolio from the first to the last trade:
  cumulative and annualized return, volatility, Sharpe ratio and maximum
  drawdown.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, status := analyze(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	if *jsonOutput {
		return printJSON(report.Full)
	}
	printMarkdown(renderer.SummaryMarkdown(report))
	return subcommands.ExitSuccess
}
