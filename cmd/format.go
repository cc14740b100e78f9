package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tradestats/renderer"
	"github.com/google/subcommands"
)

type formatCmd struct{}

func (*formatCmd) Name() string     { return "format" }
func (*formatCmd) Synopsis() string { return "show the required ledger data format" }
func (*formatCmd) Usage() string {
	return `pts format

  Shows the columns a ledger file must contain, with a sample.
`
}

func (c *formatCmd) SetFlags(f *flag.FlagSet) {}

func (c *formatCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.FormatMarkdown())
	return subcommands.ExitSuccess
}
