package geometry

import (
	"fmt"

	"github.com/rebin-io/rebin/pkg/config"
	"github.com/rebin-io/rebin/pkg/log"
	"github.com/rebin-io/rebin/pkg/types"
)

// CanonicalLayout converts a canonical histogram into exact,
// non-overlapping bar intervals, one per count bucket. The intervals
// partition [effective min, effective max] with no gaps.
//
// When the histogram has no boundaries and no min/max, the layout falls
// back to the placeholder interval [-d.DegenerateHalfWidth,
// +d.DegenerateHalfWidth) and the returned Layout carries
// Degenerate=true so the caller never mistakes it for data-derived
// geometry.
func CanonicalLayout(h *types.CanonicalHistogram, d config.Defaults) (types.Layout, error) {
	if err := h.Validate(); err != nil {
		return types.Layout{}, fmt.Errorf("failed to lay out canonical histogram: %w", err)
	}

	layout := types.Layout{Total: h.Total()}

	// Single-bucket case: no boundaries to infer edges from.
	if len(h.Boundaries) == 0 {
		if h.Min != nil && h.Max != nil {
			layout.Bars = []types.BarGeometry{{LeftEdge: *h.Min, Width: *h.Max - *h.Min}}
			return layout, nil
		}
		logger := log.WithComponent("geometry")
		logger.Warn().
			Float64("half_width", d.DegenerateHalfWidth).
			Msg("single bucket without min/max, using placeholder interval")
		layout.Bars = []types.BarGeometry{{
			LeftEdge: -d.DegenerateHalfWidth,
			Width:    2 * d.DegenerateHalfWidth,
		}}
		layout.Degenerate = true
		return layout, nil
	}

	n := len(h.Counts)
	bounds := h.Boundaries
	bars := make([]types.BarGeometry, 0, n)

	for i := 0; i < n; i++ {
		var left, right float64
		switch {
		case i == 0:
			// First bucket: from min to the first boundary, extrapolating
			// one boundary gap below when min is unknown.
			if h.Min != nil {
				left = *h.Min
			} else if len(bounds) > 1 {
				left = bounds[0] - (bounds[1] - bounds[0])
			} else {
				left = bounds[0] - d.EdgeExtrapolation
			}
			right = bounds[0]
		case i == n-1:
			// Last bucket: from the last boundary to max, extrapolating
			// symmetrically above when max is unknown.
			left = bounds[i-1]
			if h.Max != nil {
				right = *h.Max
			} else if len(bounds) > 1 {
				right = bounds[i-1] + (bounds[i-1] - bounds[i-2])
			} else {
				right = bounds[i-1] + d.EdgeExtrapolation
			}
		default:
			left = bounds[i-1]
			right = bounds[i]
		}
		bars = append(bars, types.BarGeometry{LeftEdge: left, Width: right - left})
	}

	layout.Bars = bars
	return layout, nil
}
