package compare

import "github.com/mashalov/timeseries/timeseries"

// Compare walks the union time axis of a and b and returns a finished
// CompareResult summarizing their difference: at each union time it
// fetches the matching cluster from each series (threading a cursor
// through the sweep so each search starts where the last one ended) and
// feeds the pair into
// Update.
func Compare(a, b *timeseries.Series, opt timeseries.Options) (*CompareResult, error) {
	times, err := timeseries.UnionTime(a, b, opt)
	if err != nil {
		return nil, err
	}

	result := NewCompareResult()
	cur1, cur2 := timeseries.BeginCursor, timeseries.BeginCursor

	for _, t := range times {
		s1, nc1, err := a.GetTimePoints(t, opt, cur1)
		if err != nil {
			return nil, err
		}
		cur1 = nc1

		s2, nc2, err := b.GetTimePoints(t, opt, cur2)
		if err != nil {
			return nil, err
		}
		cur2 = nc2

		if err := result.Update(s1, s2, opt); err != nil {
			return nil, err
		}
	}

	result.Finish()
	return result, nil
}
