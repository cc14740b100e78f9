package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/rs/zerolog/log"
)

// RunExtension attempts to find and execute an external pts-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// The effective settings are passed to the extension as PTS_* environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "pts-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug().Err(err).Msgf("external command %q not found in PATH", externalCmdName)
		return false, 0
	}

	s, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid settings: %v\n", err)
		return true, 2
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+s.LedgerFile,
		EnvCurrency+"="+s.Currency,
		EnvJSONPath+"="+s.JSONPath,
		EnvRiskFreeRate+"="+strconv.FormatFloat(s.RiskFreeRate, 'g', -1, 64),
		EnvAnnualizationBase+"="+strconv.FormatFloat(s.AnnualizationBase, 'g', -1, 64),
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
