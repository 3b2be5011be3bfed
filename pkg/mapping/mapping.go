package mapping

import (
	"fmt"
	"sort"

	"github.com/rebin-io/rebin/pkg/types"
)

// Mapper converts a canonical histogram into a sparse re-bucketed
// representation.
type Mapper interface {
	// Name is the registry key and the dataset folder name the
	// representation is stored under.
	Name() string

	// Map produces the sparse representation. Implementations must not
	// mutate the input histogram.
	Map(h *types.CanonicalHistogram) (types.SparseHistogram, error)
}

// maxInnerBuckets caps how many representative points one source bucket
// may fan out into.
const maxInnerBuckets = 50

var registry = map[string]Mapper{}

// Register adds a mapper to the registry. Registering a duplicate name
// panics, mirroring prometheus.MustRegister semantics.
func Register(m Mapper) {
	if _, exists := registry[m.Name()]; exists {
		panic(fmt.Sprintf("mapper %q already registered", m.Name()))
	}
	registry[m.Name()] = m
}

// Get returns the named mapper.
func Get(name string) (Mapper, error) {
	m, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown mapper: %s", name)
	}
	return m, nil
}

// Names returns the registered mapper names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(&Midpoint{})
	Register(&Even{})
	Register(&Exponential{})
	Register(&ExponentialCW{})
	Register(&SEH1{})
}

// bucketBounds returns the effective [lower, upper] interval of bucket i.
// Unknown min/max cap the open-ended first/last buckets at the nearest
// boundary, so an open bucket contributes a zero-width interval rather
// than an unbounded one.
func bucketBounds(h *types.CanonicalHistogram, i int) (lower, upper float64) {
	bounds := h.Boundaries
	n := len(h.Counts)

	if i == 0 {
		switch {
		case h.Min != nil:
			lower = *h.Min
		case len(bounds) > 0:
			lower = bounds[0]
		}
	} else {
		lower = bounds[i-1]
	}

	if i == n-1 {
		switch {
		case h.Max != nil:
			upper = *h.Max
		case len(bounds) > 0:
			upper = bounds[len(bounds)-1]
		}
	} else {
		upper = bounds[i]
	}
	return lower, upper
}
