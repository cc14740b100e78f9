package tradestats

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultRiskFreeRate is the annual risk free rate used by the Sharpe ratio.
	DefaultRiskFreeRate = 0.02
	// DefaultAnnualizationBase is the number of trading days in a year.
	DefaultAnnualizationBase = 252
)

// Config holds the parameters of the performance calculation.
//
// There is no process wide configuration, every computation receives its own Config.
type Config struct {
	RiskFreeRate      float64 `yaml:"risk_free_rate" json:"riskFreeRate"`
	AnnualizationBase float64 `yaml:"annualization_base" json:"annualizationBase"`
}

// DefaultConfig returns a 2% risk free rate over 252 trading days.
func DefaultConfig() Config {
	return Config{
		RiskFreeRate:      DefaultRiskFreeRate,
		AnnualizationBase: DefaultAnnualizationBase,
	}
}

// Validate returns an error if c cannot produce finite statistics.
func (c Config) Validate() error {
	var errs []error
	if math.IsNaN(c.RiskFreeRate) || math.IsInf(c.RiskFreeRate, 0) {
		errs = append(errs, fmt.Errorf("risk free rate must be finite, got %v", c.RiskFreeRate))
	}
	if !(c.AnnualizationBase > 0) || math.IsInf(c.AnnualizationBase, 0) {
		errs = append(errs, fmt.Errorf("annualization base must be positive, got %v", c.AnnualizationBase))
	}
	return errors.Join(errs...)
}
