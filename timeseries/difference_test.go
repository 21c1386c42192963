package timeseries

import (
	"math"
	"testing"
)

func TestDifferenceBasic(t *testing.T) {
	a, _ := NewFromSlices([]float64{0, 1, 2, 3}, []float64{0, 10, 20, 30})
	b, _ := NewFromSlices([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3})

	diff, err := a.Difference(b, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{0, 9, 18, 27}
	if diff.Len() != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), diff.Len())
	}
	for i, w := range want {
		if diff.At(i).V() != w {
			t.Errorf("index %d: expected %v, got %v", i, w, diff.At(i).V())
		}
	}
}

// Invariant 5: S.Difference(S, opt).Compress(opt) contains only values
// with |v| < value_tolerance.
func TestDifferenceSelfIsNearZero(t *testing.T) {
	s, _ := NewFromSlices(
		[]float64{0, 0.5, 1, 1.7, 2.3, 3},
		[]float64{0, 1, 4, 2, -3, 5},
	)
	opt := DefaultOptions()

	diff, err := s.Difference(s, opt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := diff.Compress(opt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < diff.Len(); i++ {
		if v := diff.At(i).V(); math.Abs(v) >= opt.ValueTolerance {
			t.Errorf("index %d: expected |v| < %v, got %v", i, opt.ValueTolerance, v)
		}
	}
}

func TestDifferenceStopsAtShorterCluster(t *testing.T) {
	// b has two samples at t=1 (multi-value, All policy); a has one.
	a, _ := NewFromSlices([]float64{1}, []float64{10})
	b, _ := NewFromSlices([]float64{1, 1}, []float64{1, 2})

	diff, err := a.Difference(b, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff.Len() != 1 {
		t.Fatalf("expected exactly 1 emitted point (shorter cluster wins), got %d", diff.Len())
	}
	if diff.At(0).V() != 9 {
		t.Errorf("expected 10-1=9, got %v", diff.At(0).V())
	}
}
