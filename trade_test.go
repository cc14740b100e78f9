package tradestats

import (
	"encoding/json"
	"math"
	"testing"
)

func TestParseTradeType(t *testing.T) {
	testCases := []struct {
		input   string
		want    TradeType
		wantErr bool
	}{
		{"Buy", Buy, false},
		{"buy", Buy, false},
		{" SELL ", Sell, false},
		{"hold", 0, true},
		{"", 0, true},
	}
	for _, tc := range testCases {
		got, err := ParseTradeType(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseTradeType(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTradeType(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestTradeRecord_SignedQuantity(t *testing.T) {
	if got := trade(t, "2024-01-02", "AAPL", Sell, 3, 1, 1).SignedQuantity(); !got.Equal(Q(-3)) {
		t.Errorf("SignedQuantity() of a sell = %v, want -3", got)
	}
	if got := trade(t, "2024-01-02", "AAPL", Buy, 3, 1, 1).SignedQuantity(); !got.Equal(Q(3)) {
		t.Errorf("SignedQuantity() of a buy = %v, want 3", got)
	}
}

func TestTradeRecord_JSON(t *testing.T) {
	rec := NewTrade(day(t, "2024-01-02"), "AAPL", Sell, Q(5), NO(160), NO(10000))
	got, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"date":"2024-01-02","symbol":"AAPL","type":"Sell","quantity":5,"price":160,"totalValue":800,"portfolioValue":10000}`
	if string(got) != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}

	var jt jsonTrade
	if err := json.Unmarshal(got, &jt); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	back := jt.record("")
	if back.Type != Sell || back.Symbol != "AAPL" || !back.Quantity.Equal(Q(5)) || !back.TotalValue.Equal(NO(800)) {
		t.Errorf("decoded trade = %+v, want %+v", back, rec)
	}

	if _, err := json.Marshal(TradeType(7)); err == nil {
		t.Errorf("json.Marshal(TradeType(7)) error = nil, want an error")
	}
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{USD(1234.5), "$1,234.50"},
		{NO(1234.5), "1,234.50"},
		{NO(-3500), "-3,500.00"},
		{NO(0.005), "0.01"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.m.Decimal(), got, tc.want)
		}
	}
}

func TestMoney_Ratio(t *testing.T) {
	if got := NO(800).Ratio(NO(4300)); !near(got, 800.0/4300) {
		t.Errorf("Ratio() = %v, want %v", got, 800.0/4300)
	}
	if got := NO(800).Ratio(NO(0)); got != 0 {
		t.Errorf("Ratio() by zero = %v, want 0", got)
	}
}

func TestPercent_String(t *testing.T) {
	testCases := []struct {
		p          Percent
		want       string
		wantSigned string
	}{
		{0.1234, "12.34%", "+12.34%"},
		{-0.5, "-50.00%", "-50.00%"},
		{0, "0.00%", "-"},
		{1e10, "1e+12%", "+1e+12%"},
		{math.MaxFloat64, "1.8e+308%", "+1.8e+308%"},
		{-math.MaxFloat64, "-1.8e+308%", "-1.8e+308%"},
	}
	for _, tc := range testCases {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("Percent(%v).String() = %q, want %q", float64(tc.p), got, tc.want)
		}
		if got := tc.p.SignedString(); got != tc.wantSigned {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(tc.p), got, tc.wantSigned)
		}
	}
}
