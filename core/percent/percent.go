// percent implements a simple and straightforward type for percentage values
package percent

import (
	"math"
	"strconv"
	"strings"
)

// Percent is a simple and straightforward type for percentage values.
// Values above 100 are legal (scaling factors may enlarge), negative ones
// are not.
type Percent int

// Hundred is the neutral scaling factor.
const Hundred = Percent(100)

func FromInt(n int) Percent {
	if n <= 0 {
		return Percent(0)
	}
	return Percent(n)
}

func FromFloat(f float64) Percent {
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, -1) {
		return Percent(0)
	}
	return Percent(math.Round(f))
}

func FromString(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	n, err := strconv.Atoi(s)
	if err != nil {
		return Percent(0), err
	}
	return FromInt(n), nil
}

func (p Percent) String() string {
	return strconv.Itoa(int(p)) + "%"
}

// Of scales n by p, with floor division. Floor, not truncation, to keep the
// arithmetic stable should a negative size ever sneak in.
func (p Percent) Of(n int) int {
	m := n * int(p)
	q := m / 100
	if m%100 != 0 && m < 0 {
		q--
	}
	return q
}

// IsSet tells whether p carries a value; an unset Percent scales by 100.
func (p Percent) IsSet() bool {
	return p != 0
}
