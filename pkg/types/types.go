package types

import (
	"errors"
	"sort"
)

// Sentinel errors returned by validation and layout.
var (
	// ErrInvalidHistogramShape indicates boundaries that are not strictly
	// increasing or a count slice whose length does not match the boundaries.
	ErrInvalidHistogramShape = errors.New("invalid histogram shape")

	// ErrEmptyRepresentation indicates a sparse histogram with no values.
	ErrEmptyRepresentation = errors.New("empty representation")

	// ErrDuplicateRepresentativeValue indicates two identical representative
	// values in one sparse histogram.
	ErrDuplicateRepresentativeValue = errors.New("duplicate representative value")

	// ErrLengthMismatch indicates values and counts arrays of unequal length.
	ErrLengthMismatch = errors.New("values and counts length mismatch")
)

// CanonicalHistogram is the authoritative source distribution expressed
// via exact bucket boundaries.
type CanonicalHistogram struct {
	// Boundaries are the explicit bucket boundaries, strictly increasing.
	// May be empty for the single-bucket case.
	Boundaries []float64

	// Counts holds one count per bucket. len(Counts) == len(Boundaries)+1
	// when boundaries are present, else exactly 1.
	Counts []float64

	// Min and Max bound the observed domain. nil means unknown.
	Min *float64
	Max *float64
}

// Validate checks the shape invariants before layout.
func (h *CanonicalHistogram) Validate() error {
	if len(h.Counts) == 0 {
		return ErrInvalidHistogramShape
	}
	if len(h.Boundaries) == 0 {
		if len(h.Counts) != 1 {
			return ErrInvalidHistogramShape
		}
		return nil
	}
	if len(h.Counts) != len(h.Boundaries)+1 {
		return ErrInvalidHistogramShape
	}
	for i := 1; i < len(h.Boundaries); i++ {
		if h.Boundaries[i] <= h.Boundaries[i-1] {
			return ErrInvalidHistogramShape
		}
	}
	for _, c := range h.Counts {
		if c < 0 {
			return ErrInvalidHistogramShape
		}
	}
	return nil
}

// Total returns the observation mass, summed verbatim from the input
// counts. It is never re-derived from geometry.
func (h *CanonicalHistogram) Total() float64 {
	var total float64
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// SparseHistogram is an alternative re-bucketing expressed as
// representative-value to count pairs, lacking explicit interval
// boundaries.
type SparseHistogram map[float64]float64

// NewSparse creates an empty sparse histogram.
func NewSparse() SparseHistogram {
	return make(SparseHistogram)
}

// Pair is one (representative value, count) entry of a sparse histogram.
type Pair struct {
	Value float64
	Count float64
}

// Pairs returns the histogram entries sorted by representative value.
func (s SparseHistogram) Pairs() []Pair {
	pairs := make([]Pair, 0, len(s))
	for v, c := range s {
		pairs = append(pairs, Pair{Value: v, Count: c})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Value < pairs[j].Value })
	return pairs
}

// Total returns the observation mass of the representation.
func (s SparseHistogram) Total() float64 {
	var total float64
	for _, c := range s {
		total += c
	}
	return total
}

// Add merges another sparse histogram into this one.
func (s SparseHistogram) Add(o SparseHistogram) {
	for v, c := range o {
		s[v] += c
	}
}

// Clone returns an independent copy.
func (s SparseHistogram) Clone() SparseHistogram {
	n := make(SparseHistogram, len(s))
	for v, c := range s {
		n[v] = c
	}
	return n
}

// Equal reports whether two sparse histograms hold identical entries.
func (s SparseHistogram) Equal(o SparseHistogram) bool {
	if len(s) != len(o) {
		return false
	}
	for v, c := range s {
		if c2, ok := o[v]; !ok || c2 != c {
			return false
		}
	}
	return true
}

// BarGeometry is the rendering-ready (left edge, width) pair for one
// bucket. The bar spans the half-open interval [LeftEdge, LeftEdge+Width).
type BarGeometry struct {
	LeftEdge float64
	Width    float64
}

// Right returns the right edge of the bar.
func (b BarGeometry) Right() float64 {
	return b.LeftEdge + b.Width
}

// Layout is the computed geometry for one representation.
type Layout struct {
	// Bars holds one entry per bucket, ordered left to right.
	Bars []BarGeometry

	// Total is the representation's observation mass, carried through
	// from the input for conservation checks.
	Total float64

	// Degenerate marks a layout produced from the placeholder fallback
	// interval rather than real data-derived bounds.
	Degenerate bool
}

// Representation is a named alternative view of the canonical histogram.
type Representation struct {
	Name string
	Hist SparseHistogram
}

// Float64Ptr returns a pointer to v, for optional Min/Max fields.
func Float64Ptr(v float64) *float64 {
	return &v
}
