package tradestats

import (
	"math"
	"testing"
)

func TestJSONObject(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var o jsonObject
		got, err := o.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON() error = %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("MarshalJSON() = %s, want %s", got, want)
		}
	})

	t.Run("insertion order", func(t *testing.T) {
		var o jsonObject
		o.Set("symbol", "AAPL").Set("quantity", Q(5)).Set("date", day(t, "2024-01-10"))
		got, err := o.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON() error = %v", err)
		}
		want := `{"symbol":"AAPL","quantity":5,"date":"2024-01-10"}`
		if string(got) != want {
			t.Errorf("MarshalJSON() = %s, want %s", got, want)
		}
	})

	t.Run("first error wins", func(t *testing.T) {
		var o jsonObject
		o.Set("nan", math.NaN()).Set("ok", 1)
		if _, err := o.MarshalJSON(); err == nil {
			t.Error("MarshalJSON() error = nil, want an error for NaN")
		}
	})
}
