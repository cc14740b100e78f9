package tradestats

import (
	"cmp"
	"slices"
)

// PositionRecord is the current holding of a single symbol.
type PositionRecord struct {
	Symbol       string   `json:"symbol"`
	NetQuantity  Quantity `json:"netQuantity"`  // positive when net long
	LastPrice    Money    `json:"lastPrice"`    // price of the symbol's last trade
	CurrentValue Money    `json:"currentValue"` // NetQuantity × LastPrice
	Weight       Percent  `json:"weight"`       // |CurrentValue| / total exposure
}

// Exposure returns the absolute market value of the position.
func (p PositionRecord) Exposure() Money { return p.CurrentValue.Abs() }

// ComputePositions nets the quantities traded for each symbol of the full
// ledger, values open positions at the symbol's last traded price and
// weights them by their share of the total absolute exposure.
//
// Positions come in the order symbols first appear in the ledger. Closed
// positions are omitted, short positions are reported with a negative
// quantity. When the total exposure is zero the result is empty.
func ComputePositions(l *Ledger) []PositionRecord {
	index := make(map[string]int)
	var all []PositionRecord
	for _, r := range l.records {
		i, ok := index[r.Symbol]
		if !ok {
			i = len(all)
			index[r.Symbol] = i
			all = append(all, PositionRecord{Symbol: r.Symbol})
		}
		p := &all[i]
		p.NetQuantity = p.NetQuantity.Add(r.SignedQuantity())
		p.LastPrice = r.Price
	}

	positions := all[:0]
	total := M(0, l.currency)
	for _, p := range all {
		if p.NetQuantity.IsZero() {
			continue
		}
		p.CurrentValue = p.LastPrice.Mul(p.NetQuantity)
		total = total.Add(p.Exposure())
		positions = append(positions, p)
	}
	if total.IsZero() {
		return nil
	}
	for i := range positions {
		positions[i].Weight = Percent(positions[i].Exposure().Ratio(total))
	}
	return positions
}

// TotalExposure returns the sum of the absolute values of positions.
func TotalExposure(positions []PositionRecord) Money {
	var total Money
	for _, p := range positions {
		total = total.Add(p.Exposure())
	}
	return total
}

// SortPositionsByWeight sorts positions by decreasing weight, then by symbol.
func SortPositionsByWeight(positions []PositionRecord) {
	slices.SortStableFunc(positions, func(a, b PositionRecord) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	})
}
