package tradestats

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the ledger currency.
//
// A ledger holds a single currency, an empty currency code means "unspecified"
// and is compatible with any other code.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses a decimal string into Money.
func ParseMoney(s, currency string) (Money, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: v, cur: currency}, nil
}

// plainFormatter formats amounts of unknown currencies: two decimals,
// thousands separators, no symbol.
var plainFormatter = money.NewFormatter(2, ".", ",", "", "1")

// formatter returns the go-money formatter for the money's currency.
func (m Money) formatter() *money.Formatter {
	if c := money.GetCurrency(m.cur); c != nil {
		return c.Formatter()
	}
	return plainFormatter
}

// String returns the money value formatted for its currency, with thousands
// separators, e.g. "$1,234.50".
func (m Money) String() string {
	f := m.formatter()
	minor := m.value.Shift(int32(f.Fraction)).Round(0)
	return f.Format(minor.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(q.value), cur: m.cur} }

// Round returns the money rounded to the currency fraction digits.
func (m Money) Round() Money {
	return Money{value: m.value.Round(int32(m.formatter().Fraction)), cur: m.cur}
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Ratio returns m/n as a float, and 0 when n is zero.
func (m Money) Ratio(n Money) float64 {
	if n.value.IsZero() {
		return 0
	}
	return m.value.Div(n.value).InexactFloat64()
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// AsFloat returns the closest float64, the statistics are computed in floats.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// MarshalJSON writes the amount as a json number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	return m.value.UnmarshalJSON(b)
}
