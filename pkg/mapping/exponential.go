package mapping

import (
	"fmt"
	"math"

	"github.com/rebin-io/rebin/pkg/types"
)

// Exponential redistributes each populated bucket across inner
// representatives weighted by a quadratic ramp. The ramp direction is
// chosen per bucket from the log ratio of this bucket's density to the
// next one's, so mass leans toward the denser neighbor.
//
// This variant requires known min and max; use ExponentialCW when the
// domain bounds may be absent.
type Exponential struct{}

func (m *Exponential) Name() string { return "exponential" }

func (m *Exponential) Map(h *types.CanonicalHistogram) (types.SparseHistogram, error) {
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("exponential mapping: %w", err)
	}
	if h.Min == nil || h.Max == nil {
		return nil, fmt.Errorf("exponential mapping requires min and max")
	}

	out := expRamp(h, *h.Min, *h.Max)
	if len(out) == 0 {
		return nil, fmt.Errorf("exponential mapping: %w", types.ErrEmptyRepresentation)
	}
	return out, nil
}

// ExponentialCW is the exponential ramp with open-boundary handling:
// an unknown min or max is capped at the nearest boundary, and the
// boundary-less single-bucket case collapses to one representative.
type ExponentialCW struct{}

func (m *ExponentialCW) Name() string { return "exponentialcw" }

func (m *ExponentialCW) Map(h *types.CanonicalHistogram) (types.SparseHistogram, error) {
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("exponentialcw mapping: %w", err)
	}

	min, max := effectiveBounds(h)

	// No boundaries implies a single bucket with a single representative.
	if len(h.Boundaries) == 0 {
		out := types.NewSparse()
		switch {
		case h.Min != nil && h.Max != nil:
			out[*h.Min+(*h.Max-*h.Min)/2] = h.Counts[0]
		case h.Max != nil:
			out[*h.Max] = h.Counts[0]
		case h.Min != nil:
			out[*h.Min] = h.Counts[0]
		default:
			// No usable bound at all; representative value is arbitrary.
			out[0] = h.Counts[0]
		}
		return out, nil
	}

	out := expRamp(h, min, max)
	if len(out) == 0 {
		return nil, fmt.Errorf("exponentialcw mapping: %w", types.ErrEmptyRepresentation)
	}
	return out, nil
}

// effectiveBounds caps unknown min/max at the nearest boundary so
// open-ended buckets stay finite.
func effectiveBounds(h *types.CanonicalHistogram) (min, max float64) {
	if h.Min != nil {
		min = *h.Min
	} else if len(h.Boundaries) > 0 {
		min = h.Boundaries[0]
	} else {
		min = math.Inf(-1)
	}

	if h.Max != nil {
		max = *h.Max
	} else if len(h.Boundaries) > 0 {
		max = h.Boundaries[len(h.Boundaries)-1]
	} else {
		max = math.Inf(1)
	}
	return min, max
}

// expRamp runs the quadratic redistribution over every bucket and moves
// the topmost representative to the histogram maximum.
func expRamp(h *types.CanonicalHistogram, histMin, histMax float64) types.SparseHistogram {
	bounds := h.Boundaries
	n := len(h.Counts)
	natural := types.NewSparse()

	for i := 0; i < n; i++ {
		count := h.Counts[i]
		if count <= 0 {
			continue
		}

		var lower, upper float64
		if i == 0 {
			lower = histMin
		} else {
			lower = bounds[i-1]
		}
		if i == n-1 {
			upper = histMax
		} else {
			upper = bounds[i]
		}

		// Log ratio of this bucket's density to the next bucket's decides
		// the ramp direction.
		magnitude := -1.0
		if i < n-1 {
			nextCount := h.Counts[i+1]
			var nextUpper float64
			if i+1 == n-1 {
				nextUpper = histMax
			} else {
				nextUpper = bounds[i+1]
			}
			magnitude = math.Log(((upper - lower) / count) / ((nextUpper - upper) / nextCount))
		}

		inner := int(math.Min(count, maxInnerBuckets))
		if inner < 1 {
			inner = 1
		}
		delta := (upper - lower) / float64(inner)

		switch {
		case magnitude < 0:
			// Falling ramp: weight j by (j-inner)^2
			rampInto(natural, lower, delta, count, inner, func(j int) float64 {
				return math.Pow(float64(j-inner), 2)
			})
		case magnitude < 1:
			// Flat: split evenly
			for j := 1; j <= inner; j++ {
				natural[lower+delta*float64(j)] += count / float64(inner)
			}
		default:
			// Rising ramp: weight j by j^2
			rampInto(natural, lower, delta, count, inner, func(j int) float64 {
				return math.Pow(float64(j), 2)
			})
		}
	}

	// Pin the topmost representative to the histogram maximum so the
	// rendered range ends exactly at max.
	if len(natural) > 0 {
		var lastKey, lastValue float64
		first := true
		for k, v := range natural {
			if first || k > lastKey {
				lastKey = k
				lastValue = v
				first = false
			}
		}
		delete(natural, lastKey)
		natural[histMax] += lastValue
	}

	return natural
}

// rampInto distributes count across inner points at lower+delta*(j+1)
// with quadratic weights, alternating ceil/floor to keep the sum close
// to the bucket count.
func rampInto(dst types.SparseHistogram, lower, delta, count float64, inner int, weight func(j int) float64) {
	// Closed form of sum(x^2, 0, inner)
	sigma := float64(inner) * float64(inner+1) * float64(2*inner+1) / 6.0
	epsilon := count / sigma

	for j := 0; j < inner; j++ {
		w := epsilon * weight(j)
		if j%2 == 0 {
			w = math.Ceil(w)
		} else {
			w = math.Floor(w)
		}
		if w > 0 {
			dst[lower+delta*float64(j+1)] += w
		}
	}
}
