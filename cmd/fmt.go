package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradestats"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `pts fmt

  Validates and formats the ledger file. This command reads all trades,
  validates them, sorts them by date, and writes them back in place with the
  canonical header and column order.

Usage Examples:
# Rewrites the ledger file.
$ pts -ledger-file trades.csv fmt

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid settings: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if _, err := tradestats.FormatFromPath(s.LedgerFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot format %q in place: %v\n", s.LedgerFile, err)
		return subcommands.ExitFailure
	}
	if err := tradestats.SaveLedger(s.LedgerFile, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger %q: %v\n", s.LedgerFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %d trades in %q.\n", ledger.Len(), s.LedgerFile)
	return subcommands.ExitSuccess
}
