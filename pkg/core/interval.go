package core

import "math"

// Interval is a closed range [Min, Max] over the ray parameter t,
// used to prune intersections outside an acceptable distance window.
// An interval with Min > Max is empty and rejects every containment query.
type Interval struct {
	Min, Max float64
}

// Empty contains no value.
var Empty = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// Universe contains every value.
var Universe = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Contains reports whether t lies in the interval, inclusive of both ends
func (i Interval) Contains(t float64) bool {
	return i.Min <= t && t <= i.Max
}

// Surrounds reports whether t lies strictly inside the interval.
// Hit acceptance uses this to reject self-intersections at t near the bounds.
func (i Interval) Surrounds(t float64) bool {
	return i.Min < t && t < i.Max
}

// Clamp projects t into the interval
func (i Interval) Clamp(t float64) float64 {
	if t < i.Min {
		return i.Min
	}
	if t > i.Max {
		return i.Max
	}
	return t
}
