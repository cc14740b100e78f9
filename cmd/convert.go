package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradestats"
	"github.com/google/subcommands"
)

type convertCmd struct {
	output string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "writes the ledger into another file format" }
func (*convertCmd) Usage() string {
	return `pts convert -o <file>

  Reads the ledger and writes it to the output file, in the format given by
  the output file extension: .csv, .txt or .tsv (tab separated), .xlsx or .jsonl.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		fmt.Fprintln(os.Stderr, "Error: -o is required")
		return subcommands.ExitUsageError
	}
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
	if err := tradestats.SaveLedger(c.output, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "File saved to %s\n", c.output)
	return subcommands.ExitSuccess
}
