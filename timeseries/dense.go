package timeseries

// DenseOutput resamples the series onto the uniform grid
// start, start+step, ..., <= end, calling GetTimePoints at each grid
// point. Every point in the returned cluster is emitted with the grid
// time as its time coordinate, not the source sample's own time — so the
// result is a strictly uniform grid under a collapsing MultiValue policy,
// or may carry several samples at the same grid time under
// MultiValueAll.
//
// A non-positive step produces an empty series rather than looping
// forever; this guard is not part of the tolerance/comparison contract,
// it only keeps a misused step value from hanging the caller.
func (s *Series) DenseOutput(start, end, step float64, opt Options) (*Series, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}
	if step <= 0 {
		return New(), nil
	}

	var result []Point
	cur := BeginCursor

	for k := 0; ; k++ {
		t := start + float64(k)*step
		if t > end {
			break
		}
		cluster, nc, err := s.GetTimePoints(t, opt, cur)
		if err != nil {
			return nil, err
		}
		cur = nc
		for i := 0; i < cluster.Len(); i++ {
			result = append(result, cluster.At(i).withT(t))
		}
	}

	return NewFromPoints(result), nil
}
