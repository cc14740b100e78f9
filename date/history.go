package date

import (
	"iter"
	"slices"
)

// History is a series of values indexed by unique dates, kept in
// chronological order. The zero value is an empty history.
type History[T float32 | float64 | string] struct {
	days   []Date
	values []T
}

// Len returns the number of days in the history.
func (h *History[T]) Len() int { return len(h.days) }

// search returns where day is, or would be inserted.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, Date.Compare)
}

// Append records q on day. A day already present keeps the last value.
func (h *History[T]) Append(day Date, q T) *History[T] {
	i, found := h.search(day)
	if found {
		h.values[i] = q
		return h
	}
	h.days = slices.Insert(h.days, i, day)
	h.values = slices.Insert(h.values, i, q)
	return h
}

// Latest returns the last day and its value, or zero values when empty.
func (h *History[T]) Latest() (day Date, value T) {
	if n := len(h.days); n > 0 {
		return h.days[n-1], h.values[n-1]
	}
	return day, value
}

// Values iterates over the days in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, day := range h.days {
			if !yield(day, h.values[i]) {
				return
			}
		}
	}
}

// ValueAsOf returns the value recorded on day, or else on the closest day
// before it. It is false when the history starts after day.
func (h *History[T]) ValueAsOf(day Date) (value T, ok bool) {
	i, found := h.search(day)
	switch {
	case found:
		return h.values[i], true
	case i > 0:
		return h.values[i-1], true
	}
	return value, false
}
