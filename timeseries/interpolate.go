package timeseries

// Interpolate returns the piecewise-linear interpolated value at time t,
// bracketing around the point at index place (typically the lower-bound
// index returned by a prior GetTimePoints search that found no exact
// match). place is consumed by value; it does not mutate any Cursor the
// caller is holding.
//
// Protocol:
//  1. If place is past the first element, decrement it once — the caller
//     positions place at the lower bound, which lies strictly after the
//     bracket we want to interpolate within.
//  2. If place has a successor, interpolate between place and place+1.
//  3. Otherwise, if place has a predecessor, interpolate between place-1
//     and place.
//  4. If the bracket has zero width (a duplicated abscissa), return the
//     left value when its time is strictly after t, else the right value.
//  5. Fewer than two points in the series: InterpolationUnderdefined.
func (s *Series) Interpolate(place int, t float64) (float64, error) {
	n := len(s.points)
	if n < 2 {
		return 0, errInterpolationUnderdefined()
	}

	if place > 0 {
		place--
	}

	var l, r Point
	switch {
	case place+1 < n:
		l, r = s.points[place], s.points[place+1]
	case place > 0:
		l, r = s.points[place-1], s.points[place]
	default:
		return 0, errInterpolationUnderdefined()
	}

	width := r.T() - l.T()
	if width == 0 {
		if l.T() > t {
			return l.V(), nil
		}
		return r.V(), nil
	}

	frac := (t - l.T()) / width
	return l.V() + frac*(r.V()-l.V()), nil
}
