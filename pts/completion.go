package main

import (
	"flag"

	"github.com/etnz/tradestats/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// ledgerFiles predicts the files pts can read a ledger from.
var ledgerFiles = predict.Or(
	predict.Files("*.csv"),
	predict.Files("*.txt"),
	predict.Files("*.tsv"),
	predict.Files("*.xlsx"),
	predict.Files("*.jsonl"),
	predict.Files("*.json"),
)

// flagPredictors holds the predictors of flags that take a known kind of value.
var flagPredictors = map[string]complete.Predictor{
	"ledger-file": ledgerFiles,
	"config":      predict.Files("*.yaml"),
	"o":           predict.Files("*"),
	"frontmatter": predict.Files("*"),
	"sort":        predict.Set{"weight", "ledger"},
	"p":           predict.Set{"daily", "weekly", "monthly", "quarterly", "yearly"},
}

// completion describes the pts command line for shell completion.
func completion(commander *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictors(flag.CommandLine),
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{Flags: predictors(fs)}
	})
	if topic, ok := root.Sub["topic"]; ok {
		topics, _ := docs.List()
		topic.Args = predict.Set(append(topics, docs.All))
	}
	return root
}

func predictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = nil
			return
		}
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
