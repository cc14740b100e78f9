package tradestats

import (
	"context"
	"fmt"

	"github.com/etnz/tradestats/date"
	"golang.org/x/sync/errgroup"
)

// Report gathers everything known about a ledger: its performance over the
// full period and over each calendar year, and its current positions.
type Report struct {
	Currency      string                     `json:"currency,omitempty"`
	Range         date.Range                 `json:"range"`
	Full          PerformanceSummary         `json:"full"`
	Years         []int                      `json:"years"`
	Yearly        map[int]PerformanceSummary `json:"yearly"`
	Positions     []PositionRecord           `json:"positions"`
	TotalExposure Money                      `json:"totalExposure"`

	// Values is the portfolio value series, the last recorded value of each day.
	Values date.History[float64] `json:"-"`
}

// Analyze computes the report of l.
//
// Yearly performances are computed concurrently, each one reads the shared
// ledger and produces its own summary. Analyze returns early with ctx error
// if ctx is done before all computations are started.
func Analyze(ctx context.Context, l *Ledger, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	r, ok := l.Range()
	if !ok {
		return nil, ErrEmptyLedger
	}

	report := &Report{
		Currency: l.Currency(),
		Range:    r,
		Years:    l.Years(),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		report.Full, err = ComputePerformance(l, cfg)
		return err
	})

	yearly := make([]PerformanceSummary, len(report.Years))
	for i, year := range report.Years {
		g.Go(func() (err error) {
			if err := ctx.Err(); err != nil {
				return err
			}
			yearly[i], err = ComputeWindowPerformance(l, date.Year(year), cfg)
			if err != nil {
				return fmt.Errorf("year %d: %w", year, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		report.Positions = ComputePositions(l)
		report.TotalExposure = TotalExposure(report.Positions)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Yearly = make(map[int]PerformanceSummary, len(yearly))
	for i, year := range report.Years {
		report.Yearly[year] = yearly[i]
	}
	for _, rec := range l.records {
		report.Values.Append(rec.Date, rec.PortfolioValue.AsFloat())
	}
	return report, nil
}
