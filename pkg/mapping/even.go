package mapping

import (
	"fmt"
	"math"

	"github.com/rebin-io/rebin/pkg/types"
)

// Even spreads each populated bucket across up to maxInnerBuckets evenly
// spaced representatives starting at the bucket's lower bound, splitting
// the bucket count evenly between them.
type Even struct{}

func (m *Even) Name() string { return "even" }

func (m *Even) Map(h *types.CanonicalHistogram) (types.SparseHistogram, error) {
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("even mapping: %w", err)
	}

	out := types.NewSparse()
	for i, count := range h.Counts {
		if count <= 0 {
			continue
		}
		lower, upper := bucketBounds(h, i)

		inner := int(math.Min(count, maxInnerBuckets))
		if inner < 1 {
			inner = 1
		}
		delta := (upper - lower) / float64(inner)
		perPoint := count / float64(inner)

		for n := 0; n < inner; n++ {
			out[lower+delta*float64(n)] += perPoint
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("even mapping: %w", types.ErrEmptyRepresentation)
	}
	return out, nil
}
