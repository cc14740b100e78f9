package tradestats

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/etnz/tradestats/date"
	"github.com/google/go-cmp/cmp"
)

func TestComputePerformance_Sample(t *testing.T) {
	s, err := ComputePerformance(sampleLedger(t), DefaultConfig())
	if err != nil {
		t.Fatalf("ComputePerformance() error = %v", err)
	}

	if s.StartDate != day(t, "2024-01-02") || s.EndDate != day(t, "2024-01-10") {
		t.Errorf("period = %v, want 2024-01-02..2024-01-10", s.Period())
	}
	if s.Days != 8 || s.Trades != 3 {
		t.Errorf("Days, Trades = %d, %d, want 8, 3", s.Days, s.Trades)
	}
	if !s.CumulativeReturn.Equal(1) {
		t.Errorf("CumulativeReturn = %v, want 100.00%%", s.CumulativeReturn)
	}
	if want := 252.0 / 8; !near(s.AnnualizationFactor, want) {
		t.Errorf("AnnualizationFactor = %v, want %v", s.AnnualizationFactor, want)
	}
	if want := math.Pow(2, 252.0/8) - 1; !near(float64(s.AnnualizedReturn), want) {
		t.Errorf("AnnualizedReturn = %v, want %v", float64(s.AnnualizedReturn), want)
	}

	// returns are 0, 0.8 and 1/9.
	returns := []float64{0, 0.8, 1.0 / 9}
	mean := (returns[0] + returns[1] + returns[2]) / 3
	var ss float64
	for _, r := range returns {
		ss += (r - mean) * (r - mean)
	}
	wantVol := math.Sqrt(ss/2) * math.Sqrt(252)
	if !near(float64(s.Volatility), wantVol) {
		t.Errorf("Volatility = %v, want %v", float64(s.Volatility), wantVol)
	}
	if want := (float64(s.AnnualizedReturn) - 0.02) / wantVol; !near(s.SharpeRatio, want) {
		t.Errorf("SharpeRatio = %v, want %v", s.SharpeRatio, want)
	}
	if s.MaxDrawdown != 0 {
		t.Errorf("MaxDrawdown = %v, want 0 for non decreasing values", s.MaxDrawdown)
	}
	if s.ZeroStart {
		t.Errorf("ZeroStart = true, want false")
	}
}

func TestComputePerformance_SingleRow(t *testing.T) {
	s, err := ComputePerformance(valuesLedger(t, 5000), DefaultConfig())
	if err != nil {
		t.Fatalf("ComputePerformance() error = %v", err)
	}
	want := PerformanceSummary{
		StartDate:           day(t, "2024-01-01"),
		EndDate:             day(t, "2024-01-01"),
		Trades:              1,
		StartValue:          NO(5000),
		EndValue:            NO(5000),
		AnnualizationFactor: 252,
	}
	if diff := cmp.Diff(want, s, cmpOpts); diff != "" {
		t.Errorf("ComputePerformance() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputePerformance_MaxDrawdown(t *testing.T) {
	testCases := []struct {
		name   string
		values []float64
		want   Percent
	}{
		{"non decreasing", []float64{100, 100, 110, 150}, 0},
		{"single dip", []float64{100, 120, 90, 130}, -0.25},
		{"deepest dip wins", []float64{100, 120, 90, 130, 65}, -0.5},
		{"decline from start", []float64{100, 80, 60}, -0.4},
		{"zero peak", []float64{0, 0, 0}, 0},
		{"negative values", []float64{-10, -20, -5}, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ComputePerformance(valuesLedger(t, tc.values...), DefaultConfig())
			if err != nil {
				t.Fatalf("ComputePerformance() error = %v", err)
			}
			if !s.MaxDrawdown.Equal(tc.want) {
				t.Errorf("MaxDrawdown = %v, want %v", s.MaxDrawdown, tc.want)
			}
			if s.MaxDrawdown > 0 {
				t.Errorf("MaxDrawdown = %v, want <= 0", s.MaxDrawdown)
			}
		})
	}
}

func TestComputePerformance_TotalLoss(t *testing.T) {
	testCases := []struct {
		name   string
		values []float64
		cum    Percent
	}{
		{"down to zero", []float64{100, 0}, -1},
		{"below zero", []float64{100, -50}, -1.5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ComputePerformance(valuesLedger(t, tc.values...), DefaultConfig())
			if err != nil {
				t.Fatalf("ComputePerformance() error = %v", err)
			}
			if !s.CumulativeReturn.Equal(tc.cum) {
				t.Errorf("CumulativeReturn = %v, want %v", s.CumulativeReturn, tc.cum)
			}
			if !s.AnnualizedReturn.Equal(-1) {
				t.Errorf("AnnualizedReturn = %v, want -100.00%%", s.AnnualizedReturn)
			}
		})
	}
}

func TestComputePerformance_Overflow(t *testing.T) {
	// a 1000x gain in one day overflows once annualized.
	s, err := ComputePerformance(valuesLedger(t, 1, 1000), DefaultConfig())
	if err != nil {
		t.Fatalf("ComputePerformance() error = %v", err)
	}
	if s.AnnualizedReturn != math.MaxFloat64 {
		t.Errorf("AnnualizedReturn = %v, want MaxFloat64", float64(s.AnnualizedReturn))
	}
	if got := s.AnnualizedReturn.String(); got != "1.8e+308%" {
		t.Errorf("AnnualizedReturn.String() = %q, want 1.8e+308%%", got)
	}
}

func TestComputePerformance_ZeroStart(t *testing.T) {
	s, err := ComputePerformance(valuesLedger(t, 0, 100, 50), DefaultConfig())
	if err != nil {
		t.Fatalf("ComputePerformance() error = %v", err)
	}
	if !s.ZeroStart {
		t.Errorf("ZeroStart = false, want true")
	}
	if s.CumulativeReturn != 0 || s.AnnualizedReturn != 0 {
		t.Errorf("CumulativeReturn, AnnualizedReturn = %v, %v, want 0, 0", s.CumulativeReturn, s.AnnualizedReturn)
	}
	// the return after the zero value is 0, the last one is -50%.
	wantVol := math.Sqrt(((0+1.0/6)*(0+1.0/6)*2+(-0.5+1.0/6)*(-0.5+1.0/6))/2) * math.Sqrt(252)
	if !near(float64(s.Volatility), wantVol) {
		t.Errorf("Volatility = %v, want %v", float64(s.Volatility), wantVol)
	}
	if !s.MaxDrawdown.Equal(-0.5) {
		t.Errorf("MaxDrawdown = %v, want -50%%", s.MaxDrawdown)
	}
}

func TestComputePerformance_ZeroVolatility(t *testing.T) {
	s, err := ComputePerformance(valuesLedger(t, 100, 100, 100), DefaultConfig())
	if err != nil {
		t.Fatalf("ComputePerformance() error = %v", err)
	}
	if s.Volatility != 0 || s.SharpeRatio != 0 {
		t.Errorf("Volatility, SharpeRatio = %v, %v, want 0, 0", s.Volatility, s.SharpeRatio)
	}
}

func TestComputePerformance_Finite(t *testing.T) {
	s, err := ComputePerformance(valuesLedger(t, 1, 1e300), DefaultConfig())
	if err != nil {
		t.Fatalf("ComputePerformance() error = %v", err)
	}
	for name, v := range map[string]float64{
		"CumulativeReturn": float64(s.CumulativeReturn),
		"AnnualizedReturn": float64(s.AnnualizedReturn),
		"Volatility":       float64(s.Volatility),
		"SharpeRatio":      s.SharpeRatio,
		"MaxDrawdown":      float64(s.MaxDrawdown),
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s = %v, want a finite value", name, v)
		}
	}
}

func TestComputePerformance_Range(t *testing.T) {
	// Unsorted input, the summary covers the min and max dates.
	ledger := NewLedger(
		trade(t, "2024-03-01", "AAPL", Buy, 1, 10, 300),
		trade(t, "2023-02-01", "AAPL", Buy, 1, 10, 100),
		trade(t, "2024-12-31", "AAPL", Sell, 1, 10, 200),
		trade(t, "2023-06-15", "AAPL", Buy, 1, 10, 150),
	)
	s, err := ComputePerformance(ledger, DefaultConfig())
	if err != nil {
		t.Fatalf("ComputePerformance() error = %v", err)
	}
	if s.StartDate != day(t, "2023-02-01") || s.EndDate != day(t, "2024-12-31") {
		t.Errorf("period = %v, want 2023-02-01..2024-12-31", s.Period())
	}
	if !s.CumulativeReturn.Equal(1) {
		t.Errorf("CumulativeReturn = %v, want 100.00%%", s.CumulativeReturn)
	}
}

func TestComputePerformance_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	values := make([]float64, 100)
	for i := range values {
		values[i] = 1000 + rng.Float64()*500
	}
	ledger := valuesLedger(t, values...)

	first, err := ComputePerformance(ledger, DefaultConfig())
	if err != nil {
		t.Fatalf("ComputePerformance() error = %v", err)
	}
	second, _ := ComputePerformance(ledger, DefaultConfig())
	if diff := cmp.Diff(first, second, cmpOpts); diff != "" {
		t.Errorf("second call differs (-first +second):\n%s", diff)
	}
}

func TestComputePerformance_SameDayOrder(t *testing.T) {
	// Same day trades keep their order, the last one closes the day.
	ledger := NewLedger(
		trade(t, "2024-01-02", "AAPL", Buy, 1, 10, 100),
		trade(t, "2024-01-03", "AAPL", Buy, 1, 10, 150),
		trade(t, "2024-01-03", "AAPL", Buy, 1, 10, 120),
	)
	s, err := ComputePerformance(ledger, DefaultConfig())
	if err != nil {
		t.Fatalf("ComputePerformance() error = %v", err)
	}
	if !s.EndValue.Equal(NO(120)) {
		t.Errorf("EndValue = %v, want 120", s.EndValue)
	}
	if !s.MaxDrawdown.Equal(-0.2) {
		t.Errorf("MaxDrawdown = %v, want -20%%", s.MaxDrawdown)
	}
}

func TestComputeWindowPerformance(t *testing.T) {
	ledger := NewLedger(
		trade(t, "2023-06-01", "AAPL", Buy, 1, 10, 50),
		trade(t, "2024-01-01", "AAPL", Buy, 1, 10, 100),
		trade(t, "2024-06-01", "AAPL", Buy, 1, 10, 90),
		trade(t, "2024-12-31", "AAPL", Buy, 1, 10, 120),
		trade(t, "2025-01-02", "AAPL", Buy, 1, 10, 10),
	)
	s, err := ComputeWindowPerformance(ledger, date.Year(2024), DefaultConfig())
	if err != nil {
		t.Fatalf("ComputeWindowPerformance() error = %v", err)
	}
	if s.Trades != 3 || s.StartDate != day(t, "2024-01-01") || s.EndDate != day(t, "2024-12-31") {
		t.Errorf("window = %v with %d trades, want 2024-01-01..2024-12-31 with 3 trades", s.Period(), s.Trades)
	}
	if !s.CumulativeReturn.Equal(0.2) {
		t.Errorf("CumulativeReturn = %v, want 20.00%%", s.CumulativeReturn)
	}
	if !s.MaxDrawdown.Equal(-0.1) {
		t.Errorf("MaxDrawdown = %v, want -10.00%%", s.MaxDrawdown)
	}

	// start only.
	s, err = ComputeWindowPerformance(ledger, date.Range{From: day(t, "2024-06-01")}, DefaultConfig())
	if err != nil {
		t.Fatalf("ComputeWindowPerformance(from) error = %v", err)
	}
	if s.Trades != 3 || s.StartDate != day(t, "2024-06-01") || s.EndDate != day(t, "2025-01-02") {
		t.Errorf("window = %v with %d trades, want 2024-06-01..2025-01-02 with 3 trades", s.Period(), s.Trades)
	}

	// end only.
	s, err = ComputeWindowPerformance(ledger, date.Range{To: day(t, "2024-01-01")}, DefaultConfig())
	if err != nil {
		t.Fatalf("ComputeWindowPerformance(to) error = %v", err)
	}
	if !s.CumulativeReturn.Equal(1) || s.Trades != 2 {
		t.Errorf("CumulativeReturn = %v over %d trades, want 100.00%% over 2", s.CumulativeReturn, s.Trades)
	}
}

func TestComputePerformance_Errors(t *testing.T) {
	_, err := ComputePerformance(NewLedger(), DefaultConfig())
	if !errors.Is(err, ErrEmptyLedger) {
		t.Errorf("ComputePerformance(empty) error = %v, want ErrEmptyLedger", err)
	}

	_, err = ComputeWindowPerformance(sampleLedger(t), date.Year(2020), DefaultConfig())
	if !errors.Is(err, ErrEmptyWindow) || !errors.Is(err, ErrEmptyLedger) {
		t.Errorf("ComputeWindowPerformance(2020) error = %v, want ErrEmptyWindow", err)
	}

	_, err = ComputePerformance(sampleLedger(t), Config{AnnualizationBase: 0})
	if err == nil {
		t.Errorf("ComputePerformance() with a zero annualization base: error = nil")
	}
}

func TestComputePerformance_Config(t *testing.T) {
	cfg := Config{RiskFreeRate: 0, AnnualizationBase: 365}
	s, err := ComputePerformance(valuesLedger(t, 100, 110), cfg)
	if err != nil {
		t.Fatalf("ComputePerformance() error = %v", err)
	}
	if s.AnnualizationFactor != 365 {
		t.Errorf("AnnualizationFactor = %v, want 365", s.AnnualizationFactor)
	}
	if want := float64(s.AnnualizedReturn) / float64(s.Volatility); !near(s.SharpeRatio, want) {
		t.Errorf("SharpeRatio = %v, want %v", s.SharpeRatio, want)
	}
}
