package tradestats

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/tradestats/date"
)

// TradeType is the side of a trade.
type TradeType int

const (
	Buy TradeType = iota + 1
	Sell
)

func (t TradeType) String() string {
	switch t {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		return fmt.Sprintf("TradeType(%d)", int(t))
	}
}

// ParseTradeType parses "Buy" or "Sell", case insensitive.
func ParseTradeType(s string) (TradeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown trade type %q, want Buy or Sell", s)
	}
}

func (t TradeType) MarshalJSON() ([]byte, error) {
	if t != Buy && t != Sell {
		return nil, fmt.Errorf("cannot marshal %v", t)
	}
	return json.Marshal(t.String())
}

func (t *TradeType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseTradeType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// TradeRecord is one row of the ledger.
type TradeRecord struct {
	Date     date.Date
	Symbol   string
	Type     TradeType
	Quantity Quantity // Quantity is the number of shares traded, a whole number.
	Price    Money    // Price is the unit price at trade time.

	// TotalValue is the trade amount as recorded, it is not recomputed from
	// quantity and price.
	TotalValue Money

	// PortfolioValue is the portfolio value right after this trade, as
	// recorded by the ledger. Performance is computed from this column only.
	PortfolioValue Money
}

// NewTrade creates a TradeRecord whose total value is quantity × price.
func NewTrade(on date.Date, symbol string, side TradeType, quantity Quantity, price, portfolioValue Money) TradeRecord {
	return TradeRecord{
		Date:           on,
		Symbol:         symbol,
		Type:           side,
		Quantity:       quantity,
		Price:          price,
		TotalValue:     price.Mul(quantity),
		PortfolioValue: portfolioValue,
	}
}

// SignedQuantity returns the quantity, negated for a Sell.
func (t TradeRecord) SignedQuantity() Quantity {
	if t.Type == Sell {
		return t.Quantity.Neg()
	}
	return t.Quantity
}

// Validate checks the record constraints. All failures are reported.
func (t TradeRecord) Validate() error {
	var errs []error
	if t.Date.IsZero() {
		errs = append(errs, errors.New("date is missing"))
	}
	if strings.TrimSpace(t.Symbol) == "" {
		errs = append(errs, errors.New("symbol is missing"))
	}
	if t.Type != Buy && t.Type != Sell {
		errs = append(errs, fmt.Errorf("invalid trade type %v", t.Type))
	}
	if !t.Quantity.IsInteger() || t.Quantity.LessThan(Q(1)) {
		errs = append(errs, fmt.Errorf("quantity must be a whole number >= 1, got %s", t.Quantity))
	}
	if t.Price.IsNegative() {
		errs = append(errs, fmt.Errorf("price must be positive, got %s", t.Price.Decimal()))
	}
	return errors.Join(errs...)
}

// MarshalJSON writes the record with a stable key order.
func (t TradeRecord) MarshalJSON() ([]byte, error) {
	var o jsonObject
	o.Set("date", t.Date).
		Set("symbol", t.Symbol).
		Set("type", t.Type).
		Set("quantity", t.Quantity).
		Set("price", t.Price).
		Set("totalValue", t.TotalValue).
		Set("portfolioValue", t.PortfolioValue)
	return o.MarshalJSON()
}

// jsonTrade is the decoding form of a TradeRecord.
type jsonTrade struct {
	Date           date.Date `json:"date"`
	Symbol         string    `json:"symbol"`
	Type           TradeType `json:"type"`
	Quantity       Quantity  `json:"quantity"`
	Price          Money     `json:"price"`
	TotalValue     Money     `json:"totalValue"`
	PortfolioValue Money     `json:"portfolioValue"`
}

func (j jsonTrade) record(currency string) TradeRecord {
	j.Price.cur, j.TotalValue.cur, j.PortfolioValue.cur = currency, currency, currency
	return TradeRecord(j)
}
