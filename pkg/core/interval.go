package core

import "math"

// Interval is a range over the real line, used for ray parameter windows and color clamping
type Interval struct {
	Min, Max float64
}

// NewInterval creates an interval [min, max]
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Universe returns the interval (-inf, +inf)
func Universe() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Empty returns an interval containing nothing
func Empty() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Size returns max - min
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether min <= v <= max
func (i Interval) Contains(v float64) bool {
	return i.Min <= v && v <= i.Max
}

// Surrounds reports whether min < v < max.
// Hits exactly on either bound are rejected.
func (i Interval) Surrounds(v float64) bool {
	return i.Min < v && v < i.Max
}

// Clamp saturates v into [min, max]
func (i Interval) Clamp(v float64) float64 {
	if v < i.Min {
		return i.Min
	}
	if v > i.Max {
		return i.Max
	}
	return v
}
