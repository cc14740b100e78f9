package date

import (
	"fmt"
	"strings"
)

// Period is a calendar granularity: a day, a week starting on Monday, a
// month, a quarter or a year.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

// periodNames are the adjective and noun forms of each Period.
var periodNames = [...][2]string{
	Daily:     {"daily", "day"},
	Weekly:    {"weekly", "week"},
	Monthly:   {"monthly", "month"},
	Quarterly: {"quarterly", "quarter"},
	Yearly:    {"yearly", "year"},
}

func (p Period) String() string {
	if p < 0 || int(p) >= len(periodNames) {
		return fmt.Sprintf("Period(%d)", int(p))
	}
	return periodNames[p][0]
}

// Range returns the range of that period containing d.
func (p Period) Range(d Date) Range { return NewRange(d, p) }

// ParsePeriod accepts either form of a period name, in any case.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, names := range periodNames {
		if s == names[0] || s == names[1] {
			return Period(p), nil
		}
	}
	return Daily, fmt.Errorf("unknown period %q, want one of daily, weekly, monthly, quarterly or yearly", s)
}
