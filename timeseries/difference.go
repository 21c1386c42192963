package timeseries

// Difference walks the union time axis of s and other and emits, at each
// time, the elementwise subtraction of their GetTimePoints clusters
// (s - other). If the two clusters at a given time have different
// lengths, only the shorter length is emitted — no phantom sample is
// invented to pad the longer cluster.
//
// The result is a Series but is not guaranteed to have unique times until
// Compress is applied.
func (s *Series) Difference(other *Series, opt Options) (*Series, error) {
	times, err := UnionTime(s, other, opt)
	if err != nil {
		return nil, err
	}

	result := make([]Point, 0, len(times))
	cur1, cur2 := BeginCursor, BeginCursor

	for _, t := range times {
		c1, nc1, err := s.GetTimePoints(t, opt, cur1)
		if err != nil {
			return nil, err
		}
		cur1 = nc1

		c2, nc2, err := other.GetTimePoints(t, opt, cur2)
		if err != nil {
			return nil, err
		}
		cur2 = nc2

		n := min(c1.Len(), c2.Len())
		for k := 0; k < n; k++ {
			result = append(result, NewPoint(t, c1.At(k).V()-c2.At(k).V()))
		}
	}

	return NewFromPoints(result), nil
}
