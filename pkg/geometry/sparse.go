package geometry

import (
	"fmt"
	"sort"

	"github.com/rebin-io/rebin/pkg/config"
	"github.com/rebin-io/rebin/pkg/types"
)

// SparseLayout synthesizes non-overlapping bar intervals for a sparse
// histogram over the known domain [domainMin, domainMax]. Each bar is
// centered at its representative value.
//
// Bar widths come from local half-gaps toward each neighbor (or toward
// the domain bound for edge bars), clamped by a single global cap of
// d.WidthFraction times the minimum neighbor gap. The global cap applies
// to edge bars too, so an edge bar with plenty of room toward the domain
// bound is still truncated to the tight-gap cap. That asymmetry comes
// from the original comparison algorithm and is kept intact; changing it
// would alter the rendered output this engine exists to reproduce.
func SparseLayout(pairs []types.Pair, domainMin, domainMax float64, d config.Defaults) (types.Layout, error) {
	if len(pairs) == 0 {
		return types.Layout{}, fmt.Errorf("failed to lay out sparse histogram: %w", types.ErrEmptyRepresentation)
	}

	sorted := make([]types.Pair, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })

	var total float64
	for _, p := range sorted {
		total += p.Count
	}
	layout := types.Layout{Total: total}

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Value == sorted[i-1].Value {
			return types.Layout{}, fmt.Errorf("failed to lay out sparse histogram: value %v: %w",
				sorted[i].Value, types.ErrDuplicateRepresentativeValue)
		}
	}

	if domainMin > sorted[0].Value || domainMax < sorted[len(sorted)-1].Value {
		return types.Layout{}, fmt.Errorf("domain [%v, %v] does not cover representative values [%v, %v]",
			domainMin, domainMax, sorted[0].Value, sorted[len(sorted)-1].Value)
	}

	n := len(sorted)
	if n == 1 {
		width := d.WidthFraction * (domainMax - domainMin)
		layout.Bars = []types.BarGeometry{{
			LeftEdge: sorted[0].Value - width/2,
			Width:    width,
		}}
		return layout, nil
	}

	// Global cap from the tightest neighbor gap, so no two bars can
	// overlap even in the densest region.
	minGap := sorted[1].Value - sorted[0].Value
	for i := 2; i < n; i++ {
		if gap := sorted[i].Value - sorted[i-1].Value; gap < minGap {
			minGap = gap
		}
	}
	maxWidth := d.WidthFraction * minGap

	bars := make([]types.BarGeometry, 0, n)
	for i := 0; i < n; i++ {
		var leftSpace, rightSpace float64
		switch {
		case i == 0:
			leftSpace = sorted[0].Value - domainMin
			rightSpace = (sorted[1].Value - sorted[0].Value) / 2
		case i == n-1:
			leftSpace = (sorted[i].Value - sorted[i-1].Value) / 2
			rightSpace = domainMax - sorted[i].Value
		default:
			leftSpace = (sorted[i].Value - sorted[i-1].Value) / 2
			rightSpace = (sorted[i+1].Value - sorted[i].Value) / 2
		}

		width := leftSpace + rightSpace
		if width > maxWidth {
			width = maxWidth
		}
		bars = append(bars, types.BarGeometry{
			LeftEdge: sorted[i].Value - width/2,
			Width:    width,
		})
	}

	layout.Bars = bars
	return layout, nil
}
