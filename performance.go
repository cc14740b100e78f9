package tradestats

import (
	"errors"
	"fmt"
	"math"

	"github.com/etnz/tradestats/date"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyLedger is returned when there is no trade to analyze.
	ErrEmptyLedger = errors.New("ledger has no trade")
	// ErrEmptyWindow is returned when no trade falls in the requested window.
	// It matches ErrEmptyLedger with errors.Is.
	ErrEmptyWindow = fmt.Errorf("%w in window", ErrEmptyLedger)
)

// PerformanceSummary holds the performance statistics of a ledger over a period.
//
// Returns, volatility and drawdown are fractions. All values are finite.
type PerformanceSummary struct {
	StartDate  date.Date `json:"startDate"`
	EndDate    date.Date `json:"endDate"`
	Days       int       `json:"days"`   // Days between StartDate and EndDate.
	Trades     int       `json:"trades"` // Trades is the number of ledger rows in the period.
	StartValue Money     `json:"startValue"`
	EndValue   Money     `json:"endValue"`

	CumulativeReturn    Percent `json:"cumulativeReturn"`
	AnnualizationFactor float64 `json:"annualizationFactor"`
	AnnualizedReturn    Percent `json:"annualizedReturn"`
	Volatility          Percent `json:"volatility"` // annualized
	SharpeRatio         float64 `json:"sharpeRatio"`
	MaxDrawdown         Percent `json:"maxDrawdown"` // <= 0

	// ZeroStart is set when the first portfolio value is zero. The
	// cumulative return is then reported as 0.
	ZeroStart bool `json:"zeroStart,omitempty"`
}

// Period returns the range covered by the summary.
func (p PerformanceSummary) Period() date.Range {
	return date.Range{From: p.StartDate, To: p.EndDate}
}

// ComputePerformance computes the performance over the whole ledger.
func ComputePerformance(l *Ledger, cfg Config) (PerformanceSummary, error) {
	if err := cfg.Validate(); err != nil {
		return PerformanceSummary{}, fmt.Errorf("invalid config: %w", err)
	}
	if l.Len() == 0 {
		return PerformanceSummary{}, ErrEmptyLedger
	}
	return performance(l.records, cfg), nil
}

// ComputeWindowPerformance computes the performance over the trades within
// window, boundaries included. A zero window boundary is unbounded. The window
// is applied before any computation.
func ComputeWindowPerformance(l *Ledger, window date.Range, cfg Config) (PerformanceSummary, error) {
	if err := cfg.Validate(); err != nil {
		return PerformanceSummary{}, fmt.Errorf("invalid config: %w", err)
	}
	w := l.Window(window)
	if w.Len() == 0 {
		return PerformanceSummary{}, fmt.Errorf("%w %v", ErrEmptyWindow, window)
	}
	return performance(w.records, cfg), nil
}

// performance computes the summary of a non empty, date sorted list of records.
func performance(records []TradeRecord, cfg Config) PerformanceSummary {
	first, last := records[0], records[len(records)-1]
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.PortfolioValue.AsFloat()
	}

	s := PerformanceSummary{
		StartDate:  first.Date,
		EndDate:    last.Date,
		Days:       last.Date.DaysSince(first.Date),
		Trades:     len(records),
		StartValue: first.PortfolioValue,
		EndValue:   last.PortfolioValue,
	}

	if first.PortfolioValue.IsZero() {
		s.ZeroStart = true
	} else {
		s.CumulativeReturn = Percent(last.PortfolioValue.Sub(first.PortfolioValue).Ratio(first.PortfolioValue))
	}

	s.AnnualizationFactor = cfg.AnnualizationBase
	if s.Days > 0 {
		s.AnnualizationFactor = cfg.AnnualizationBase / float64(s.Days)
	}
	// a total loss, or worse, annualizes to a total loss.
	s.AnnualizedReturn = -1
	if growth := 1 + float64(s.CumulativeReturn); growth > 0 {
		s.AnnualizedReturn = Percent(finite(math.Pow(growth, s.AnnualizationFactor) - 1))
	}

	s.Volatility = Percent(finite(volatility(dailyReturns(values), cfg.AnnualizationBase)))
	if s.Volatility != 0 {
		excess := float64(s.AnnualizedReturn) - cfg.RiskFreeRate
		s.SharpeRatio = finite(excess / float64(s.Volatility))
	}

	s.MaxDrawdown = Percent(maxDrawdown(values))
	return s
}

// dailyReturns returns the relative change of each value from the previous
// one. The first return is 0, so is any return following a zero value.
func dailyReturns(values []float64) []float64 {
	returns := make([]float64, len(values))
	for i := 1; i < len(values); i++ {
		if prev := values[i-1]; prev != 0 {
			returns[i] = (values[i] - prev) / prev
		}
	}
	return returns
}

// volatility returns the annualized sample standard deviation of returns, 0
// when it is undefined.
func volatility(returns []float64, base float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	return stat.StdDev(returns, nil) * math.Sqrt(base)
}

// maxDrawdown returns the largest decline from a running peak, as a negative
// fraction of that peak. While the peak is not positive the drawdown is 0.
func maxDrawdown(values []float64) float64 {
	var worst float64
	peak := math.Inf(-1)
	for _, v := range values {
		peak = max(peak, v)
		if peak <= 0 {
			continue
		}
		worst = min(worst, (v-peak)/peak)
	}
	return worst
}

// finite maps NaN to 0 and infinities to the largest finite floats.
func finite(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case math.IsInf(x, 1):
		return math.MaxFloat64
	case math.IsInf(x, -1):
		return -math.MaxFloat64
	default:
		return x
	}
}
