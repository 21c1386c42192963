package timeseries

import (
	"math"
	"testing"
)

func TestDenseOutputUniformGrid(t *testing.T) {
	s, _ := NewFromSlices([]float64{0, 10}, []float64{0, 100})
	dense, err := s.DenseOutput(0, 10, 2, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{0, 2, 4, 6, 8, 10}
	if dense.Len() != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), dense.Len())
	}
	for i, wt := range want {
		if dense.At(i).T() != wt {
			t.Errorf("index %d: expected t=%v, got %v", i, wt, dense.At(i).T())
		}
		wantV := wt * 10
		if math.Abs(dense.At(i).V()-wantV) > 1e-9 {
			t.Errorf("index %d: expected v=%v, got %v", i, wantV, dense.At(i).V())
		}
	}
}

func TestDenseOutputNonPositiveStepIsEmpty(t *testing.T) {
	s, _ := NewFromSlices([]float64{0, 10}, []float64{0, 100})
	for _, step := range []float64{0, -1} {
		dense, err := s.DenseOutput(0, 10, step, DefaultOptions())
		if err != nil {
			t.Fatalf("step %v: unexpected error: %v", step, err)
		}
		if dense.Len() != 0 {
			t.Errorf("step %v: expected empty output, got %d points", step, dense.Len())
		}
	}
}

// Invariant 7: a dense grid that includes every original abscissa, with a
// multi-value policy other than All, reproduces the original values there.
func TestDenseOutputReproducesOriginalPointsOnGrid(t *testing.T) {
	s, _ := NewFromSlices([]float64{0, 1, 2, 3, 4}, []float64{0, 3, 1, 4, 9})
	opt := DefaultOptions().WithMultiValue(MultiValueAvg)

	dense, err := s.DenseOutput(0, 4, 1, opt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dense.Len() != s.Len() {
		t.Fatalf("expected %d points, got %d", s.Len(), dense.Len())
	}
	for i := 0; i < s.Len(); i++ {
		if dense.At(i) != s.At(i) {
			t.Errorf("index %d: expected %v, got %v", i, s.At(i), dense.At(i))
		}
	}
}

func TestDenseOutputBeforeAndAfterRangeExtrapolates(t *testing.T) {
	s, _ := NewFromSlices([]float64{1, 2, 3}, []float64{1, 2, 3})
	// Grid points 0 and 4 lie before and after the samples' span [1, 3].
	dense, err := s.DenseOutput(0, 4, 1, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dense.Len() != 5 {
		t.Fatalf("expected 5 points, got %d", dense.Len())
	}
	for i := 0; i < dense.Len(); i++ {
		if dense.At(i).V() != dense.At(i).T() {
			t.Errorf("index %d: expected v==t, got t=%v v=%v", i, dense.At(i).T(), dense.At(i).V())
		}
	}
}
