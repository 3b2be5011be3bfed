package types

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		h       CanonicalHistogram
		wantErr bool
	}{
		{
			name: "valid with boundaries",
			h:    CanonicalHistogram{Boundaries: []float64{1, 2}, Counts: []float64{1, 2, 3}},
		},
		{
			name: "valid single bucket",
			h:    CanonicalHistogram{Counts: []float64{42}},
		},
		{
			name:    "no counts",
			h:       CanonicalHistogram{},
			wantErr: true,
		},
		{
			name:    "length mismatch",
			h:       CanonicalHistogram{Boundaries: []float64{1}, Counts: []float64{1}},
			wantErr: true,
		},
		{
			name:    "non increasing boundaries",
			h:       CanonicalHistogram{Boundaries: []float64{2, 2}, Counts: []float64{1, 2, 3}},
			wantErr: true,
		},
		{
			name:    "negative count",
			h:       CanonicalHistogram{Counts: []float64{-1}},
			wantErr: true,
		},
		{
			name:    "multiple counts no boundaries",
			h:       CanonicalHistogram{Counts: []float64{1, 2}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.h.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidHistogramShape) {
				t.Errorf("Validate() = %v, want ErrInvalidHistogramShape", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	h := CanonicalHistogram{Boundaries: []float64{1}, Counts: []float64{80.5, 119.5}}
	if got := h.Total(); got != 200 {
		t.Errorf("Total() = %v, want 200", got)
	}

	s := SparseHistogram{1: 80, 2: 120, 10: 350}
	if got := s.Total(); got != 550 {
		t.Errorf("SparseHistogram.Total() = %v, want 550", got)
	}
}

func TestPairsSorted(t *testing.T) {
	s := SparseHistogram{10: 1, 1: 2, 5: 3}

	pairs := s.Pairs()
	if len(pairs) != 3 {
		t.Fatalf("Pairs() returned %d entries, want 3", len(pairs))
	}
	for i := 1; i < len(pairs); i++ {
		if pairs[i].Value <= pairs[i-1].Value {
			t.Errorf("Pairs() not sorted: %v before %v", pairs[i-1].Value, pairs[i].Value)
		}
	}
}

func TestSparseAddCloneEqual(t *testing.T) {
	a := SparseHistogram{1: 2, 3: 4}
	b := a.Clone()

	if !a.Equal(b) {
		t.Error("clone should equal original")
	}

	b.Add(SparseHistogram{1: 1})
	if a.Equal(b) {
		t.Error("modified clone should differ from original")
	}
	if a[1] != 2 {
		t.Error("Add on clone mutated original")
	}
	if b[1] != 3 {
		t.Errorf("Add: b[1] = %v, want 3", b[1])
	}
}

func TestBarGeometryRight(t *testing.T) {
	b := BarGeometry{LeftEdge: 0.2, Width: 0.1}
	want := 0.30000000000000004 // exact float64 sum
	if got := b.Right(); got != want {
		t.Errorf("Right() = %v, want %v", got, want)
	}
}
