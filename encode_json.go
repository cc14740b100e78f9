package tradestats

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultJSONPath selects every element of a top level array.
const DefaultJSONPath = "$[*]"

// DecodeJSONLedger reads trades out of any json document. The path expression
// selects the trade objects, it defaults to DefaultJSONPath.
//
// Trade objects use the keys date, symbol, type, quantity, price, totalValue
// and portfolioValue. Amounts are set in currency.
func DecodeJSONLedger(r io.Reader, path, currency string) (*Ledger, error) {
	if path == "" {
		path = DefaultJSONPath
	}
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot decode json document: %w", err)
	}
	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	// a path may select a single object or a list of them.
	items, ok := selected.([]any)
	if !ok {
		items = []any{selected}
	}

	records := make([]TradeRecord, 0, len(items))
	for i, item := range items {
		// go through json again to reuse the field decoders.
		data, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("trade #%d: %w", i+1, err)
		}
		var jt jsonTrade
		if err := json.Unmarshal(data, &jt); err != nil {
			return nil, fmt.Errorf("trade #%d: cannot decode %s: %w", i+1, data, err)
		}
		rec := jt.record(currency)
		if rec.TotalValue.IsZero() {
			rec.TotalValue = rec.Price.Mul(rec.Quantity)
		}
		records = append(records, rec)
	}

	ledger := NewLedger(records...)
	ledger.currency = currency
	if err := ledger.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ledger: %w", err)
	}
	return ledger, nil
}
