package compare

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rebin-io/rebin/pkg/config"
	"github.com/rebin-io/rebin/pkg/geometry"
	"github.com/rebin-io/rebin/pkg/log"
	"github.com/rebin-io/rebin/pkg/metrics"
	"github.com/rebin-io/rebin/pkg/types"
)

// Options configures a comparator.
type Options struct {
	// SharedAxis reconciles one global axis range across all
	// representations. When false each representation keeps its own axis.
	SharedAxis bool

	// Defaults are the layout constants. The zero value is replaced by
	// config.DefaultDefaults().
	Defaults config.Defaults
}

// Comparator lays out a canonical histogram and its alternative
// representations on comparable geometry.
type Comparator struct {
	opts Options
}

// New creates a comparator.
func New(opts Options) *Comparator {
	if opts.Defaults == (config.Defaults{}) {
		opts.Defaults = config.DefaultDefaults()
	}
	return &Comparator{opts: opts}
}

// RepResult is the layout outcome for one representation. Err is set
// when that representation failed; the rest of the comparison is
// unaffected.
type RepResult struct {
	Name    string
	Layout  types.Layout
	Err     error `json:"-"`
	Failure string `json:",omitempty"`
}

// Result is one full comparison pass.
type Result struct {
	// RunID identifies the pass in logs and downstream artifacts.
	RunID string

	// Canonical is the authoritative histogram's layout.
	Canonical types.Layout

	// Representations holds one entry per input representation, in input
	// order, successes and failures alike.
	Representations []RepResult

	// AxisMin and AxisMax are set in shared-axis mode.
	AxisMin *float64 `json:",omitempty"`
	AxisMax *float64 `json:",omitempty"`
}

// Failed returns the representations that could not be laid out.
func (r *Result) Failed() []RepResult {
	var failed []RepResult
	for _, rep := range r.Representations {
		if rep.Err != nil {
			failed = append(failed, rep)
		}
	}
	return failed
}

// Compare lays out the canonical histogram and every representation.
// A representation that fails layout is reported in the result rather
// than aborting the pass; only a malformed canonical histogram is a
// hard error, since nothing can be compared against it.
func (c *Comparator) Compare(canonical *types.CanonicalHistogram, reps ...types.Representation) (*Result, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.LayoutDuration)
	metrics.ComparisonsTotal.Inc()

	runID := uuid.New().String()
	logger := log.WithComponent("compare").With().Str("run_id", runID).Logger()

	canonicalLayout, err := geometry.CanonicalLayout(canonical, c.opts.Defaults)
	if err != nil {
		metrics.LayoutFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		return nil, fmt.Errorf("failed to lay out canonical histogram: %w", err)
	}
	if canonicalLayout.Degenerate {
		metrics.DegenerateLayoutsTotal.Inc()
	}

	result := &Result{
		RunID:     runID,
		Canonical: canonicalLayout,
	}

	extents := make([]geometry.Extent, 0, len(reps)+1)
	if ext, ok := geometry.CanonicalExtent(canonical); ok {
		extents = append(extents, ext)
	}

	for _, rep := range reps {
		repResult := RepResult{Name: rep.Name}

		layout, err := c.layoutRepresentation(rep)
		if err != nil {
			reason := failureReason(err)
			metrics.LayoutFailuresTotal.WithLabelValues(reason).Inc()
			metrics.RepresentationsCompared.WithLabelValues("failed").Inc()
			logger.Warn().Str("representation", rep.Name).Err(err).Msg("representation layout failed")

			repResult.Err = err
			repResult.Failure = err.Error()
			result.Representations = append(result.Representations, repResult)
			continue
		}

		metrics.RepresentationsCompared.WithLabelValues("ok").Inc()
		repResult.Layout = layout
		result.Representations = append(result.Representations, repResult)

		if ext, ok := geometry.SparseExtent(rep.Hist); ok {
			extents = append(extents, ext)
		}

		logger.Debug().
			Str("representation", rep.Name).
			Int("bars", len(layout.Bars)).
			Float64("total", layout.Total).
			Msg("representation laid out")
	}

	if c.opts.SharedAxis {
		if axisMin, axisMax, ok := geometry.SharedAxis(c.opts.Defaults, extents...); ok {
			result.AxisMin = &axisMin
			result.AxisMax = &axisMax
		}
	}

	logger.Info().
		Int("representations", len(reps)).
		Int("failed", len(result.Failed())).
		Float64("canonical_total", canonicalLayout.Total).
		Msg("comparison complete")

	return result, nil
}

// layoutRepresentation lays out one sparse representation over its own
// value extrema, matching how each alternative is rendered when axes are
// not shared.
func (c *Comparator) layoutRepresentation(rep types.Representation) (types.Layout, error) {
	ext, ok := geometry.SparseExtent(rep.Hist)
	if !ok {
		return types.Layout{}, types.ErrEmptyRepresentation
	}
	return geometry.SparseLayout(rep.Hist.Pairs(), ext.Min, ext.Max, c.opts.Defaults)
}

// failureReason maps an error to its metrics label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, types.ErrInvalidHistogramShape):
		return "invalid_shape"
	case errors.Is(err, types.ErrEmptyRepresentation):
		return "empty_representation"
	case errors.Is(err, types.ErrDuplicateRepresentativeValue):
		return "duplicate_value"
	case errors.Is(err, types.ErrLengthMismatch):
		return "length_mismatch"
	default:
		return "other"
	}
}
