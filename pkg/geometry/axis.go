package geometry

import (
	"github.com/rebin-io/rebin/pkg/config"
	"github.com/rebin-io/rebin/pkg/types"
)

// Extent is the value range one representation occupies on the axis.
type Extent struct {
	Min float64
	Max float64
}

// CanonicalExtent returns the axis extent of a canonical histogram:
// known min/max combined with the boundary extrema. ok is false when the
// histogram exposes neither bounds nor boundaries.
func CanonicalExtent(h *types.CanonicalHistogram) (Extent, bool) {
	var ext Extent
	found := false

	add := func(v float64) {
		if !found {
			ext = Extent{Min: v, Max: v}
			found = true
			return
		}
		if v < ext.Min {
			ext.Min = v
		}
		if v > ext.Max {
			ext.Max = v
		}
	}

	if h.Min != nil {
		add(*h.Min)
	}
	if h.Max != nil {
		add(*h.Max)
	}
	for _, b := range h.Boundaries {
		add(b)
	}
	return ext, found
}

// SparseExtent returns the axis extent of a sparse histogram, ok=false
// when it holds no values.
func SparseExtent(s types.SparseHistogram) (Extent, bool) {
	pairs := s.Pairs()
	if len(pairs) == 0 {
		return Extent{}, false
	}
	return Extent{Min: pairs[0].Value, Max: pairs[len(pairs)-1].Value}, true
}

// SharedAxis reconciles one global axis range accommodating every
// representation, padded on both sides by d.AxisPaddingFraction of the
// raw span. ok is false when no extents were supplied.
func SharedAxis(d config.Defaults, extents ...Extent) (axisMin, axisMax float64, ok bool) {
	if len(extents) == 0 {
		return 0, 0, false
	}

	axisMin, axisMax = extents[0].Min, extents[0].Max
	for _, e := range extents[1:] {
		if e.Min < axisMin {
			axisMin = e.Min
		}
		if e.Max > axisMax {
			axisMax = e.Max
		}
	}

	padding := d.AxisPaddingFraction * (axisMax - axisMin)
	return axisMin - padding, axisMax + padding, true
}
