package tradestats

import (
	"math"
	"testing"

	"github.com/etnz/tradestats/date"
	"github.com/google/go-cmp/cmp"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const wit no currency set
func NO(v float64) Money { return M(v, "") }

// day parses a date or fails the test.
func day(t *testing.T, s string) date.Date {
	t.Helper()
	d, err := date.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// trade is a helper for test to create a trade without currency.
func trade(t *testing.T, on, symbol string, side TradeType, quantity int, price, portfolioValue float64) TradeRecord {
	t.Helper()
	return NewTrade(day(t, on), symbol, side, Q(quantity), NO(price), NO(portfolioValue))
}

// valuesLedger returns a ledger of consecutive daily buys with the given portfolio values.
func valuesLedger(t *testing.T, values ...float64) *Ledger {
	t.Helper()
	start := day(t, "2024-01-01")
	records := make([]TradeRecord, len(values))
	for i, v := range values {
		records[i] = NewTrade(start.Add(i), "AAPL", Buy, Q(1), NO(100), NO(v))
	}
	return NewLedger(records...)
}

// sampleLedger is the ledger of the documented data format.
func sampleLedger(t *testing.T) *Ledger {
	t.Helper()
	return NewLedger(
		trade(t, "2024-01-02", "AAPL", Buy, 10, 150, 5000),
		trade(t, "2024-01-05", "TSLA", Buy, 5, 700, 9000),
		trade(t, "2024-01-10", "AAPL", Sell, 5, 160, 10000),
	)
}

// cmpOpts compares values holding Money and dates.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Quantity) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}

// near reports whether a and b are within 1e-9 relative tolerance.
func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
