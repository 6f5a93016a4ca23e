// Package percent implements a simple and straightforward type for
// percentage values.
//
// Unlike the type this one is adapted from, CSS percentages are not
// confined to [0,100]: `width: 150%` and `margin-left: -20%` are both
// legal, so Percent stores a float64 and callers clamp only where the
// property semantics actually require it (e.g. an alpha channel).
package percent

import (
	"math"
	"strconv"
	"strings"
)

// Percent is a percentage value, stored as the number before the `%` sign
// (so 50% is Percent(50), not Percent(0.5)).
type Percent float64

// FromInt constructs a Percent from an integer number of percent.
func FromInt(n int) Percent {
	return Percent(n)
}

// FromFloat constructs a Percent from a float64, treating NaN as 0.
func FromFloat(f float64) Percent {
	if math.IsNaN(f) {
		return Percent(0)
	}
	return Percent(f)
}

// FromString parses a string of the form "50%" or "50" into a Percent.
func FromString(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	f, err := strconv.ParseFloat(s, 64)
	return Percent(f), err
}

// AsFraction returns p as a fraction, where 100% == 1.0 (may exceed that
// range for percentages outside [0,100]).
func (p Percent) AsFraction() float64 {
	return float64(p) / 100
}

// Clamped01 returns p clamped to the [0,100] range, for contexts (like an
// alpha channel) that require it.
func (p Percent) Clamped01() Percent {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

func (p Percent) String() string {
	return strconv.FormatFloat(float64(p), 'g', -1, 64) + "%"
}
