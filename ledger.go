package tradestats

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/etnz/tradestats/date"
)

// Ledger represents a list of trades.
//
// In a Ledger trades are always in chronological order, trades on the same
// day keep their relative insertion order. A Ledger is never modified once
// created, so it can be shared between goroutines.
type Ledger struct {
	records  []TradeRecord
	currency string
}

// NewLedger creates a ledger from a copy of records, sorted by date.
func NewLedger(records ...TradeRecord) *Ledger {
	l := &Ledger{records: slices.Clone(records)}
	l.stableSort()
	for _, r := range l.records {
		if c := r.PortfolioValue.Currency(); c != "" {
			l.currency = c
			break
		}
	}
	return l
}

// stableSort sorts the ledger by trade date. The sort is stable, meaning
// trades on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.records[i].Date.Before(l.records[j].Date)
	})
}

// Len returns the number of trades.
func (l *Ledger) Len() int { return len(l.records) }

// At returns the i-th trade in chronological order.
func (l *Ledger) At(i int) TradeRecord { return l.records[i] }

// Currency returns the currency of the ledger amounts, possibly "".
func (l *Ledger) Currency() string { return l.currency }

// Records returns an iterator over trades in chronological order.
func (l *Ledger) Records() iter.Seq2[int, TradeRecord] {
	return func(yield func(int, TradeRecord) bool) {
		for i, r := range l.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Range returns the dates of the first and last trades, false if the ledger is empty.
func (l *Ledger) Range() (date.Range, bool) {
	if len(l.records) == 0 {
		return date.Range{}, false
	}
	return date.Range{From: l.records[0].Date, To: l.records[len(l.records)-1].Date}, true
}

// Window returns a new ledger with the trades within r, boundaries included.
// A zero From or To leaves that side of the window open.
func (l *Ledger) Window(r date.Range) *Ledger {
	w := &Ledger{currency: l.currency}
	for _, rec := range l.records {
		if (r.From.IsZero() || !rec.Date.Before(r.From)) && (r.To.IsZero() || !rec.Date.After(r.To)) {
			w.records = append(w.records, rec)
		}
	}
	return w
}

// Years returns the distinct calendar years with at least one trade, in ascending order.
func (l *Ledger) Years() []int {
	var years []int
	for _, r := range l.records {
		// records are sorted, years come in order.
		if y := r.Date.Year(); len(years) == 0 || years[len(years)-1] != y {
			years = append(years, y)
		}
	}
	return years
}

// Symbols returns the distinct symbols in the order they first appear.
func (l *Ledger) Symbols() []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, r := range l.records {
		if !seen[r.Symbol] {
			seen[r.Symbol] = true
			symbols = append(symbols, r.Symbol)
		}
	}
	return symbols
}

// PortfolioValues returns the recorded portfolio value after each trade.
func (l *Ledger) PortfolioValues() []float64 {
	values := make([]float64, len(l.records))
	for i, r := range l.records {
		values[i] = r.PortfolioValue.AsFloat()
	}
	return values
}

// Validate checks every record and reports all failures with their row number.
func (l *Ledger) Validate() error {
	var errs []error
	// every amount is in one currency, an empty one matches any.
	currency := l.currency
	for i, r := range l.records {
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("trade #%d (%s %s %s): %w", i+1, r.Date, r.Type, r.Symbol, err))
		}
		for _, m := range [...]struct {
			column string
			amount Money
		}{{"price", r.Price}, {"total value", r.TotalValue}, {"portfolio value", r.PortfolioValue}} {
			c := m.amount.Currency()
			if c == "" {
				continue
			}
			if currency == "" {
				currency = c
			}
			if c != currency {
				errs = append(errs, fmt.Errorf("trade #%d: %s currency %s does not match ledger currency %s", i+1, m.column, c, currency))
			}
		}
	}
	return errors.Join(errs...)
}
