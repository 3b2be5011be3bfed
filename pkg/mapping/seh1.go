package mapping

import (
	"fmt"
	"math"

	"github.com/rebin-io/rebin/pkg/types"
)

// seh1BucketFactor is the log of the SEH1 growth base (1.1): bucket i
// covers values in [1.1^i, 1.1^(i+1)).
var seh1BucketFactor = math.Log(1 + 0.1)

// seh1ZeroBucket is the sentinel index for exact zeros, which have no
// finite log bucket.
const seh1ZeroBucket = math.MinInt16

// SEH1 re-buckets into a sparse exponential histogram with 10% growth:
// each populated source bucket is folded in at its midpoint, and each
// SEH1 bucket is represented by its exponential mid value. Negative
// values are not representable.
type SEH1 struct{}

func (m *SEH1) Name() string { return "cwagent" }

func (m *SEH1) Map(h *types.CanonicalHistogram) (types.SparseHistogram, error) {
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("seh1 mapping: %w", err)
	}

	buckets := map[int]float64{}
	for i, count := range h.Counts {
		if count <= 0 {
			continue
		}
		lower, upper := bucketBounds(h, i)
		mid := (lower + upper) / 2
		if mid < 0 {
			return nil, fmt.Errorf("seh1 mapping: negative value %v not supported", mid)
		}

		if mid == 0 {
			buckets[seh1ZeroBucket] += count
			continue
		}
		buckets[int(math.Floor(math.Log(mid)/seh1BucketFactor))] += count
	}

	if len(buckets) == 0 {
		return nil, fmt.Errorf("seh1 mapping: %w", types.ErrEmptyRepresentation)
	}

	out := types.NewSparse()
	for bucket, count := range buckets {
		var value float64
		if bucket == seh1ZeroBucket {
			value = 0
		} else {
			// Half a bucket up puts the representative at the bin middle.
			value = math.Exp((float64(bucket) + 0.5) * seh1BucketFactor)
		}
		out[value] += count
	}
	return out, nil
}
