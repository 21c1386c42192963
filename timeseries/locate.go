package timeseries

import "sort"

// GetTimePoints locates the samples within opt.TimeTolerance of t,
// starting the bracket search at cur (BeginCursor to search from the
// start). It returns the matching cluster as a fresh Series, and the
// Cursor the caller should pass on the next call.
//
//   - Empty series: empty result.
//   - Single-point series: that one point, verbatim, regardless of t.
//   - Otherwise: samples with t-tol <= p.T() < t+tol (half-open on the
//     right, so a grid-aligned sample is not double-counted by adjacent
//     queries) are collected. If none match, the result is a single
//     synthetic point (t, interpolated value). If more than one match,
//     opt.MultiValue selects between returning the cluster unchanged
//     (All) or collapsing it to one point (Max/Min/Avg).
//
// The cursor bounds the search from below: samples before it are never
// examined. A returned cursor is therefore only valid for later queries
// at the same or a later time (the "sweeping caller" access pattern);
// reusing it for an earlier query time can miss samples and give a wrong
// result. BeginCursor is valid for any query.
func (s *Series) GetTimePoints(t float64, opt Options, cur Cursor) (*Series, Cursor, error) {
	if err := s.Check(); err != nil {
		return nil, cur, err
	}

	n := len(s.points)
	if n == 0 {
		return New(), cur, nil
	}
	if n == 1 {
		return NewFromPoints(s.points), Cursor(0), nil
	}

	lo := t - opt.TimeTolerance
	hi := t + opt.TimeTolerance
	start := cur.index(n)

	left := start + sort.Search(n-start, func(i int) bool {
		return s.points[start+i].T() >= lo
	})
	right := left + sort.Search(n-left, func(i int) bool {
		return s.points[left+i].T() > hi
	})

	newCursor := Cursor(left)

	var collected []Point
	for i := left; i < right; i++ {
		if s.points[i].T() < hi {
			collected = append(collected, s.points[i])
		}
	}

	if len(collected) == 0 {
		v, err := s.Interpolate(left, t)
		if err != nil {
			return nil, newCursor, err
		}
		return NewFromPoints([]Point{NewPoint(t, v)}), newCursor, nil
	}

	if len(collected) == 1 {
		return NewFromPoints(collected), newCursor, nil
	}

	switch opt.MultiValue {
	case MultiValueMax:
		m := collected[0].V()
		for _, p := range collected[1:] {
			if p.V() > m {
				m = p.V()
			}
		}
		return NewFromPoints([]Point{NewPoint(t, m)}), newCursor, nil
	case MultiValueMin:
		m := collected[0].V()
		for _, p := range collected[1:] {
			if p.V() < m {
				m = p.V()
			}
		}
		return NewFromPoints([]Point{NewPoint(t, m)}), newCursor, nil
	case MultiValueAvg:
		sum := 0.0
		for _, p := range collected {
			sum += p.V()
		}
		return NewFromPoints([]Point{NewPoint(t, sum/float64(len(collected)))}), newCursor, nil
	default: // MultiValueAll
		return NewFromPoints(collected), newCursor, nil
	}
}
