package timeseries

// Point is an immutable (time, value) sample. Copies are cheap: it is a
// two-field value type, never a pointer.
type Point struct {
	t float64
	v float64
}

// NewPoint constructs a Point at time t with value v.
func NewPoint(t, v float64) Point {
	return Point{t: t, v: v}
}

// T returns the sample's time coordinate.
func (p Point) T() float64 { return p.t }

// V returns the sample's value.
func (p Point) V() float64 { return p.v }

// withT returns a copy of p with its time coordinate replaced. Used by
// DenseOutput to report a sample at a grid time distinct from the source
// sample's own time.
func (p Point) withT(t float64) Point { return Point{t: t, v: p.v} }
