package main

import (
	"context"
	"flag"
	"os"
	"path"
	"time"

	"github.com/etnz/tradestats/cmd"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Exits when invoked by the shell for completion.
	completion(commander).Complete("pts")

	flag.Parse()
	if *cmd.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if ran, code := cmd.RunExtension(name, flag.Args()[1:]); ran {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a registered subcommand.
func registered(commander *subcommands.Commander, name string) (found bool) {
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
