package timeseries

// Cursor is a hint into a Series, threaded through successive locator
// calls so a caller sweeping through non-decreasing query times searches
// only the samples from the cursor onward. Each call is still a binary
// search over that remaining suffix, O(log(N-cursor)); the per-call cost
// does not drop to a constant. It is an explicit index, not hidden state
// on the Series, so independent overlapping sweeps of the same Series can
// be interleaved by holding separate Cursors. The Series' validation memo
// is written without synchronization, so this is not safe for concurrent
// use from several goroutines.
//
// BeginCursor starts a sweep from the beginning; the zero value points at
// the first sample, which has the same effect.
type Cursor int

// BeginCursor is the Cursor value meaning "no hint; start from the
// beginning of the series".
const BeginCursor Cursor = -1

func (c Cursor) index(n int) int {
	if c < 0 || int(c) >= n {
		return 0
	}
	return int(c)
}

// Violation is the first adjacent pair (Prev, Next) with Prev.T() > Next.T(),
// as returned by Series.IsMonotonic.
type Violation struct {
	Prev Point
	Next Point
}

// Series is an ordered, non-strictly-increasing-in-time sequence of
// Points. Equal adjacent times are permitted and denote a multi-value
// point. Validation is memoized: once IsMonotonic/Check has passed, later
// algorithmic entry points in this package skip the scan until the Series
// is mutated (construction, Compress, Swap all clear the memo).
type Series struct {
	points  []Point
	checked bool
}

// New returns an empty Series.
func New() *Series {
	return &Series{}
}

// NewFromSlices builds a Series from parallel times/values slices. It
// fails with a SizeMismatch Error when the slices differ in length.
func NewFromSlices(times, values []float64) (*Series, error) {
	if len(times) != len(values) {
		return nil, errSizeMismatch(len(times), len(values))
	}
	points := make([]Point, len(times))
	for i := range times {
		points[i] = NewPoint(times[i], values[i])
	}
	return &Series{points: points}, nil
}

// NewFromPoints builds a Series owning a copy of points. The monotonicity
// memo starts clear.
func NewFromPoints(points []Point) *Series {
	owned := make([]Point, len(points))
	copy(owned, points)
	return &Series{points: owned}
}

// Row is a single (t, v) sample as delivered by a tabular source, e.g. a
// CSV reader.
type Row struct {
	T, V float64
}

// NewFromRows builds a Series from an ordered sequence of (t, v) rows.
func NewFromRows(rows []Row) *Series {
	points := make([]Point, len(rows))
	for i, r := range rows {
		points[i] = NewPoint(r.T, r.V)
	}
	return &Series{points: points}
}

// Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.points) }

// At returns the point at index i.
func (s *Series) At(i int) Point { return s.points[i] }

// Points returns a copy of the series' points, in order.
func (s *Series) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Copy returns a deep, independent copy of the series, including its
// validation memo (copying an already-validated series does not force
// re-validation).
func (s *Series) Copy() *Series {
	out := &Series{points: make([]Point, len(s.points)), checked: s.checked}
	copy(out.points, s.points)
	return out
}

// Swap exchanges the contents of s and other in place. Both series' Check
// memos are cleared, per the interior-mutability contract on Series: any
// in-place mutator invalidates a prior validation.
func (s *Series) Swap(other *Series) {
	s.points, other.points = other.points, s.points
	s.checked, other.checked = false, false
}

// IsMonotonic scans the series for the first adjacent pair with a
// decreasing time and returns it, or nil if the series is monotonic
// (including the empty and single-point cases).
func (s *Series) IsMonotonic() *Violation {
	for i := 1; i < len(s.points); i++ {
		if s.points[i-1].T() > s.points[i].T() {
			return &Violation{Prev: s.points[i-1], Next: s.points[i]}
		}
	}
	return nil
}

// Check validates monotonicity, memoizing success so repeated calls (and
// every algorithmic entry point in this package) skip the scan until the
// series is next mutated. It returns a NonMonotonic Error naming the
// offending pair when validation fails.
func (s *Series) Check() error {
	if s.checked {
		return nil
	}
	if v := s.IsMonotonic(); v != nil {
		return errNonMonotonic(v.Prev, v.Next)
	}
	s.checked = true
	return nil
}
