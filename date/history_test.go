package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[0], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[1], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[0], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[1], v2)
	}

}

func TestAppendSameDay(t *testing.T) {
	h := new(History[float64])
	d := New(2024, 1, 10)
	h.Append(d, 100).Append(d, 120)

	if h.Len() != 1 {
		t.Fatalf("History.Len() = %v want 1", h.Len())
	}
	if _, v := h.Latest(); v != 120 {
		t.Errorf("Latest() = %v want 120", v)
	}
}

func TestValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2024, 1, 2), 5000)
	h.Append(New(2024, 1, 5), 9000)
	h.Append(New(2024, 1, 10), 10000)

	testCases := []struct {
		name   string
		on     Date
		want   float64
		wantOK bool
	}{
		{"before first", New(2024, 1, 1), 0, false},
		{"exact", New(2024, 1, 5), 9000, true},
		{"between", New(2024, 1, 7), 9000, true},
		{"after last", New(2024, 12, 31), 10000, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := h.ValueAsOf(tc.on)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("ValueAsOf(%v) = %v, %v want %v, %v", tc.on, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestValuesOrder(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2024, 3, 1), 3)
	h.Append(New(2024, 1, 1), 1)
	h.Append(New(2024, 2, 1), 2)

	var got []float64
	for _, v := range h.Values() {
		got = append(got, v)
	}
	want := []float64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %v want %v", i, got[i], want[i])
		}
	}
}
