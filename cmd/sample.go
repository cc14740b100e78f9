package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradestats"
	"github.com/etnz/tradestats/date"
	"github.com/etnz/tradestats/sample"
	"github.com/google/subcommands"
)

type sampleCmd struct {
	output string
	cfg    sample.Config
	start  string
	end    string
}

func (*sampleCmd) Name() string     { return "sample" }
func (*sampleCmd) Synopsis() string { return "generates a sample ledger" }
func (*sampleCmd) Usage() string {
	return `pts sample [-o <file>] [-seed <n>] [-start <date>] [-end <date>]

  Generates a ledger of weekly trades over five tickers with random walk
  prices. The same seed always generates the same ledger.
`
}

func (c *sampleCmd) SetFlags(f *flag.FlagSet) {
	c.cfg = sample.DefaultConfig()
	f.StringVar(&c.output, "o", "sample_trade_data.csv", "Output file, its extension selects the format")
	f.Uint64Var(&c.cfg.Seed, "seed", c.cfg.Seed, "Random generator seed")
	f.Float64Var(&c.cfg.InitialValue, "initial-value", c.cfg.InitialValue, "Initial portfolio value")
	f.StringVar(&c.start, "start", c.cfg.Start.String(), "First day of the ledger")
	f.StringVar(&c.end, "end", c.cfg.End.String(), "Last day of the ledger")
}

func (c *sampleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var err error
	cfg := c.cfg
	if cfg.Start, err = date.Parse(c.start); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if cfg.End, err = date.Parse(c.end); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg.Currency = *currency

	ledger := sample.Generate(cfg)
	if err := tradestats.SaveLedger(c.output, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Sample trade data with %d trades saved to %s\n", ledger.Len(), c.output)
	return subcommands.ExitSuccess
}
