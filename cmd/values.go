package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradestats/date"
	"github.com/etnz/tradestats/renderer"
	"github.com/google/subcommands"
)

type valuesCmd struct {
	period string
}

func (*valuesCmd) Name() string     { return "values" }
func (*valuesCmd) Synopsis() string { return "display the portfolio value over time" }
func (*valuesCmd) Usage() string {
	return `pts values [-p <period>]

  Displays the portfolio value recorded at the end of each period.
  Periods are daily, weekly, monthly, quarterly or yearly.
`
}

func (c *valuesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "monthly", "Sampling period: daily, weekly, monthly, quarterly, yearly")
}

// valuePoint is the json form of one value of the series.
type valuePoint struct {
	Date  date.Date `json:"date"`
	Value float64   `json:"value"`
}

func (c *valuesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	report, status := analyze(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	if *jsonOutput {
		var points []valuePoint
		for day, v := range report.Values.Values() {
			points = append(points, valuePoint{day, v})
		}
		return printJSON(points)
	}
	printMarkdown(renderer.ValuesMarkdown(report, period))
	return subcommands.ExitSuccess
}
