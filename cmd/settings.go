package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/tradestats"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by pts, and passed to extensions.
const (
	EnvLedgerFile        = "PTS_LEDGER_FILE"
	EnvCurrency          = "PTS_CURRENCY"
	EnvRiskFreeRate      = "PTS_RISK_FREE_RATE"
	EnvAnnualizationBase = "PTS_ANNUALIZATION_BASE"
	EnvJSONPath          = "PTS_JSON_PATH"
	EnvConfigFile        = "PTS_CONFIG"
	EnvVerbose           = "PTS_VERBOSE"
)

// Settings is the configuration of a pts invocation.
type Settings struct {
	LedgerFile string `yaml:"ledger_file"`
	Currency   string `yaml:"currency"`
	JSONPath   string `yaml:"json_path"`

	tradestats.Config `yaml:",inline"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		JSONPath: tradestats.DefaultJSONPath,
		Config:   tradestats.DefaultConfig(),
	}
}

// LoadSettings resolves the settings from, by increasing priority: the
// defaults, the environment (a .env file in the working directory is loaded
// first), the YAML configuration file and the flags explicitly set in fs.
func LoadSettings(fs *flag.FlagSet) (Settings, error) {
	_ = godotenv.Load()

	s := DefaultSettings()
	if err := s.applyEnv(os.LookupEnv); err != nil {
		return s, err
	}

	config := os.Getenv(EnvConfigFile)
	if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
		config = f.Value.String()
	}
	if config != "" {
		if err := s.applyYAML(config); err != nil {
			return s, err
		}
	}

	if err := s.applyFlags(fs); err != nil {
		return s, err
	}
	return s, s.Validate()
}

// applyEnv overrides settings with the PTS_* variables found by lookup.
func (s *Settings) applyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := lookup(key); ok && v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = f
		}
	}
	str(EnvLedgerFile, &s.LedgerFile)
	str(EnvCurrency, &s.Currency)
	str(EnvJSONPath, &s.JSONPath)
	float(EnvRiskFreeRate, &s.RiskFreeRate)
	float(EnvAnnualizationBase, &s.AnnualizationBase)
	return errors.Join(errs...)
}

// applyYAML overrides settings with the fields present in the YAML file.
func (s *Settings) applyYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	return nil
}

// applyFlags overrides settings with the flags set on the command line.
func (s *Settings) applyFlags(fs *flag.FlagSet) error {
	var errs []error
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.String()
		var err error
		switch f.Name {
		case "ledger-file":
			s.LedgerFile = v
		case "currency":
			s.Currency = v
		case "json-path":
			s.JSONPath = v
		case "risk-free-rate":
			s.RiskFreeRate, err = strconv.ParseFloat(v, 64)
		case "annualization-base":
			s.AnnualizationBase, err = strconv.ParseFloat(v, 64)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("-%s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}
