package tradestats

import (
	"fmt"
	"math"
)

// Percent is a fraction displayed as a percentage: 0.05 is "5.00%".
type Percent float64

// Equal reports whether p and q agree to a millionth.
func (p Percent) Equal(q Percent) bool { return math.Abs(float64(p-q)) < 1e-6 }

// huge is the magnitude above which percentages use exponent notation.
const huge = 1e12

// percent returns p in percent, within the finite floats.
func (p Percent) percent() float64 {
	v := 100 * float64(p)
	if math.IsInf(v, 0) {
		return math.Copysign(math.MaxFloat64, v)
	}
	return v
}

func (p Percent) String() string {
	if v := p.percent(); math.Abs(v) >= huge {
		return fmt.Sprintf("%.3g%%", v)
	}
	return fmt.Sprintf("%.2f%%", p.percent())
}

// SignedString always shows the sign, a return that rounds to zero is "-".
func (p Percent) SignedString() string {
	if v := p.percent(); math.Abs(v) >= huge {
		return fmt.Sprintf("%+.3g%%", v)
	}
	res := fmt.Sprintf("%+.2f%%", p.percent())
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
