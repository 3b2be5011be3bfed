package mapping

import (
	"fmt"

	"github.com/rebin-io/rebin/pkg/types"
)

// Midpoint collapses each populated bucket to a single representative
// at the bucket's midpoint, carrying the full bucket count.
type Midpoint struct{}

func (m *Midpoint) Name() string { return "middlepoint" }

func (m *Midpoint) Map(h *types.CanonicalHistogram) (types.SparseHistogram, error) {
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("midpoint mapping: %w", err)
	}

	out := types.NewSparse()
	for i, count := range h.Counts {
		if count <= 0 {
			continue
		}
		lower, upper := bucketBounds(h, i)
		out[(lower+upper)/2] += count
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("midpoint mapping: %w", types.ErrEmptyRepresentation)
	}
	return out, nil
}
