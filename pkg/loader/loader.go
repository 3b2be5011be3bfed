package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rebin-io/rebin/pkg/log"
	"github.com/rebin-io/rebin/pkg/types"
)

// CanonicalFolder is the dataset subdirectory holding the authoritative
// histograms.
const CanonicalFolder = "original"

// canonicalFile is the JSON shape of an exported canonical histogram.
type canonicalFile struct {
	Boundaries []float64 `json:"Boundaries"`
	Counts     []float64 `json:"Counts"`
	Min        *float64  `json:"Min"`
	Max        *float64  `json:"Max"`
}

// sparseFile is the JSON shape of a re-bucketed representation: parallel
// values and counts arrays to be zipped.
type sparseFile struct {
	Values []float64 `json:"values"`
	Counts []float64 `json:"counts"`
}

// ReadCanonical loads a canonical histogram from a JSON file and
// validates its shape.
func ReadCanonical(path string) (*types.CanonicalHistogram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read canonical histogram: %v", err)
	}

	var f canonicalFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse canonical histogram %s: %v", path, err)
	}

	h := &types.CanonicalHistogram{
		Boundaries: f.Boundaries,
		Counts:     f.Counts,
		Min:        f.Min,
		Max:        f.Max,
	}
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("canonical histogram %s: %w", path, err)
	}
	return h, nil
}

// ReadSparse loads a sparse representation from a JSON file, zipping the
// values and counts arrays. Unequal lengths and duplicate values are
// rejected here rather than truncated or silently merged, so no mass is
// lost before the conservation check.
func ReadSparse(path string) (types.SparseHistogram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read representation: %v", err)
	}

	var f sparseFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse representation %s: %v", path, err)
	}

	return Zip(f.Values, f.Counts)
}

// Zip builds a sparse histogram from parallel values and counts arrays.
func Zip(values, counts []float64) (types.SparseHistogram, error) {
	if len(values) != len(counts) {
		return nil, fmt.Errorf("%d values vs %d counts: %w",
			len(values), len(counts), types.ErrLengthMismatch)
	}

	s := types.NewSparse()
	for i, v := range values {
		if _, exists := s[v]; exists {
			return nil, fmt.Errorf("value %v: %w", v, types.ErrDuplicateRepresentativeValue)
		}
		s[v] = counts[i]
	}
	return s, nil
}

// Dataset is one named histogram with every representation found on
// disk for it.
type Dataset struct {
	Name            string
	Canonical       *types.CanonicalHistogram
	Representations []types.Representation
}

// ReadDataset loads <root>/original/<name>.json plus
// <root>/<folder>/<name>.json for each requested folder. Folders whose
// file is missing are skipped with a warning; any other failure aborts
// the load.
func ReadDataset(root, name string, folders []string) (*Dataset, error) {
	logger := log.WithDataset(name)

	canonical, err := ReadCanonical(filepath.Join(root, CanonicalFolder, name+".json"))
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Name: name, Canonical: canonical}
	for _, folder := range folders {
		path := filepath.Join(root, folder, name+".json")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			logger.Warn().Str("folder", folder).Msg("representation file missing, skipping")
			continue
		}

		sparse, err := ReadSparse(path)
		if err != nil {
			return nil, err
		}
		ds.Representations = append(ds.Representations, types.Representation{
			Name: folder,
			Hist: sparse,
		})
	}
	return ds, nil
}

// ListDatasets returns the dataset names present in the canonical
// folder, without extensions.
func ListDatasets(root string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(root, CanonicalFolder))
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %v", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, e.Name()[:len(e.Name())-len(".json")])
	}
	return names, nil
}
