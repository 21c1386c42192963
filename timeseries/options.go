package timeseries

import "math"

// MultiValue selects how GetTimePoints resolves several samples that fall
// within the same tolerance window.
type MultiValue int

const (
	// MultiValueAll returns every matching sample, unchanged.
	MultiValueAll MultiValue = iota
	// MultiValueMax collapses matches to a single sample holding the max value.
	MultiValueMax
	// MultiValueMin collapses matches to a single sample holding the min value.
	MultiValueMin
	// MultiValueAvg collapses matches to a single sample holding the mean value.
	MultiValueAvg
)

func (m MultiValue) String() string {
	switch m {
	case MultiValueAll:
		return "All"
	case MultiValueMax:
		return "Max"
	case MultiValueMin:
		return "Min"
	case MultiValueAvg:
		return "Avg"
	default:
		return "Unknown"
	}
}

// Range is a half-open time filter [Begin, End). A zero Range (Set == false)
// disables filtering.
type Range struct {
	Begin float64
	End   float64
	Set   bool
}

// contains reports whether t falls inside the range, treating an unset
// range as unbounded.
func (r Range) contains(t float64) bool {
	if !r.Set {
		return true
	}
	return t >= r.Begin && t < r.End
}

// Options bundles the configuration shared by every algorithm in this
// package: tolerance windows, weighted-difference scaling, a range filter,
// and the multi-value aggregation policy. It is a plain struct with
// documented defaults, not a builder.
type Options struct {
	TimeTolerance  float64
	ValueTolerance float64
	Atol           float64
	Rtol           float64
	RangeFilter    Range
	MultiValue     MultiValue
}

// DefaultOptions returns the documented defaults from the option table:
// time and value tolerances of 1e-8, Atol of 1.0, Rtol of 0, no range
// filter, and the All multi-value policy.
func DefaultOptions() Options {
	return Options{
		TimeTolerance:  1e-8,
		ValueTolerance: 1e-8,
		Atol:           1.0,
		Rtol:           0.0,
		MultiValue:     MultiValueAll,
	}
}

// WithTimeTolerance sets the time tolerance and returns the receiver.
func (o Options) WithTimeTolerance(tol float64) Options {
	o.TimeTolerance = tol
	return o
}

// WithValueTolerance sets the value tolerance and returns the receiver.
func (o Options) WithValueTolerance(tol float64) Options {
	o.ValueTolerance = tol
	return o
}

// WithScaling sets Atol/Rtol and returns the receiver.
func (o Options) WithScaling(atol, rtol float64) Options {
	o.Atol = atol
	o.Rtol = rtol
	return o
}

// WithRange sets the half-open [begin, end) filter and returns the receiver.
func (o Options) WithRange(begin, end float64) Options {
	o.RangeFilter = Range{Begin: begin, End: end, Set: true}
	return o
}

// WithoutRange clears the range filter and returns the receiver.
func (o Options) WithoutRange() Options {
	o.RangeFilter = Range{}
	return o
}

// WithMultiValue sets the multi-value aggregation policy and returns the receiver.
func (o Options) WithMultiValue(mv MultiValue) Options {
	o.MultiValue = mv
	return o
}

// WeightedDiff computes the scaled residual (v1-v2) / (rtol*max(|v1|,|v2|)+atol),
// the building block of the comparison package's weighted absolute
// difference. This is the corrected form (division happens after adding
// atol to the scaled max, not the operator-precedence bug documented in
// the option table's alternate reading).
func (o Options) WeightedDiff(v1, v2 float64) float64 {
	m := math.Max(math.Abs(v1), math.Abs(v2))
	denom := o.Rtol*m + o.Atol
	if denom == 0 {
		return 0
	}
	return (v1 - v2) / denom
}
