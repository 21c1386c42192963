package compare

import (
	"errors"
	"math"

	"github.com/mashalov/timeseries/timeseries"
)

// ErrFinished is returned by Update when called after Finish.
var ErrFinished = errors.New("compare: Update called on a finished CompareResult")

// state tracks the CompareResult lifecycle: Update is only valid in Empty
// or Accumulating, Finish moves to Finished and is idempotent afterward.
type state int

const (
	Empty state = iota
	Accumulating
	Finished
)

// Extreme is one (v1, v2, t) sample pair together with the absolute
// weighted difference that made it a Max or Min candidate.
type Extreme struct {
	V1, V2, T float64
	Weighted  float64
}

// CompareResult is the incremental accumulator driven by Compare/Update:
// running mean and second moment of the raw difference, the extreme
// weighted-difference pair in either direction, and a KS-style maximum
// absolute cumulative sum of raw differences.
type CompareResult struct {
	Count int
	Sum   float64
	SqSum float64
	Avg   float64

	Max Extreme
	Min Extreme

	KSDiffSum float64
	KSDiff    float64

	state state
}

// NewCompareResult returns an empty accumulator, ready for Update.
func NewCompareResult() *CompareResult {
	return &CompareResult{}
}

// Update folds the aligned samples of s1 and s2 into the accumulator.
// s1 and s2 are the same-time clusters GetTimePoints returns for a
// single union time; only their common prefix (min length) is used, so
// a shorter cluster is never padded with an invented sample.
func (r *CompareResult) Update(s1, s2 *timeseries.Series, opt timeseries.Options) error {
	if r.state == Finished {
		return ErrFinished
	}

	n := s1.Len()
	if s2.Len() < n {
		n = s2.Len()
	}

	for i := 0; i < n; i++ {
		v1, v2, t := s1.At(i).V(), s2.At(i).V(), s1.At(i).T()
		d := v1 - v2
		awd := math.Abs(opt.WeightedDiff(v1, v2))
		ext := Extreme{V1: v1, V2: v2, T: t, Weighted: awd}

		if r.state == Empty {
			r.Max = ext
			r.Min = ext
			r.state = Accumulating
		} else {
			if awd > r.Max.Weighted {
				r.Max = ext
			}
			if awd < r.Min.Weighted {
				r.Min = ext
			}
		}

		r.KSDiffSum += d
		if abs := math.Abs(r.KSDiffSum); abs > r.KSDiff {
			r.KSDiff = abs
		}

		r.Sum += d
		r.SqSum += d * d
		r.Count++
	}

	return nil
}

// Finish freezes the accumulator, computing Avg from Sum/Count. Calling
// Finish more than once is a no-op.
func (r *CompareResult) Finish() {
	if r.state == Finished {
		return
	}
	if r.Count > 0 {
		r.Avg = r.Sum / float64(r.Count)
	}
	r.state = Finished
}

// Identical reports whether the maximum weighted absolute difference
// observed is within tol (0 for an exact match).
func (r *CompareResult) Identical(tol float64) bool {
	return r.Max.Weighted <= tol
}

// KSTest returns the KS-style maximum absolute cumulative deviation.
func (r *CompareResult) KSTest() float64 {
	return r.KSDiff
}
