// Package cmd implements the pts CLI application to analyze a trade ledger.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/tradestats"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "analysis")
	c.Register(&yearlyCmd{}, "analysis")
	c.Register(&positionsCmd{}, "analysis")
	c.Register(&valuesCmd{}, "analysis")
	c.Register(&dashboardCmd{}, "analysis")
	c.Register(&publishCmd{}, "analysis")

	c.Register(&fmtCmd{}, "ledger")
	c.Register(&convertCmd{}, "ledger")
	c.Register(&sampleCmd{}, "ledger")

	c.Register(&formatCmd{}, "documentation")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile        = flag.String("ledger-file", "", "Path to the ledger file (.csv, .txt, .tsv, .xlsx, .jsonl or .json)")
	currency          = flag.String("currency", "", "Currency code of the ledger amounts, e.g. USD")
	riskFreeRate      = flag.Float64("risk-free-rate", tradestats.DefaultRiskFreeRate, "Annual risk free rate used by the Sharpe ratio, as a fraction")
	annualizationBase = flag.Float64("annualization-base", tradestats.DefaultAnnualizationBase, "Number of trading days in a year")
	jsonPath          = flag.String("json-path", tradestats.DefaultJSONPath, "JSONPath selecting the trades in a .json ledger")
	configFile        = flag.String("config", "", "Path to a YAML configuration file")
	jsonOutput        = flag.Bool("json", false, "Print machine readable json instead of markdown")
	plain             = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")
	Verbose           = flag.Bool("v", false, "Print debug logs")
)

// stdout is where commands print their output.
var stdout io.Writer = os.Stdout

// settings returns the effective settings of the current invocation.
func settings() (Settings, error) {
	return LoadSettings(flag.CommandLine)
}

// DecodeLedger loads the ledger file named in s.
func DecodeLedger(s Settings) (*tradestats.Ledger, error) {
	if s.LedgerFile == "" {
		return nil, errors.New("no ledger file, use -ledger-file or " + EnvLedgerFile)
	}
	var (
		l   *tradestats.Ledger
		err error
	)
	if strings.EqualFold(filepath.Ext(s.LedgerFile), ".json") {
		var f *os.File
		f, err = os.Open(s.LedgerFile)
		if err != nil {
			return nil, fmt.Errorf("could not open ledger file %q: %w", s.LedgerFile, err)
		}
		defer f.Close()
		l, err = tradestats.DecodeJSONLedger(f, s.JSONPath, s.Currency)
	} else {
		l, err = tradestats.LoadLedger(s.LedgerFile, s.Currency)
	}
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", s.LedgerFile).Int("trades", l.Len()).Str("currency", l.Currency()).Msg("ledger loaded")
	return l, nil
}

// analyze loads the ledger and computes its report. Failures are printed and
// reported as a non success exit status.
func analyze(ctx context.Context) (*tradestats.Report, subcommands.ExitStatus) {
	s, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid settings: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	report, err := tradestats.Analyze(ctx, ledger, s.Config)
	if errors.Is(err, tradestats.ErrEmptyLedger) {
		fmt.Fprintf(os.Stderr, "Ledger %q is empty, nothing to analyze.\n", s.LedgerFile)
		return nil, subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not analyze ledger: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	log.Debug().Stringer("range", report.Range).Ints("years", report.Years).Int("positions", len(report.Positions)).Msg("ledger analyzed")
	return report, subcommands.ExitSuccess
}

// printJSON prints v as indented json.
func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not encode json: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
