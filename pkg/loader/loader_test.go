package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rebin-io/rebin/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestReadCanonical(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "h.json",
		`{"Boundaries": [0.3, 0.5], "Counts": [1, 2, 3], "Min": 0.2, "Max": 0.6}`)

	h, err := ReadCanonical(filepath.Join(dir, "h.json"))
	require.NoError(t, err)

	assert.Equal(t, []float64{0.3, 0.5}, h.Boundaries)
	assert.Equal(t, []float64{1, 2, 3}, h.Counts)
	require.NotNil(t, h.Min)
	require.NotNil(t, h.Max)
	assert.Equal(t, 0.2, *h.Min)
	assert.Equal(t, 0.6, *h.Max)
}

func TestReadCanonicalOptionalFields(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "h.json", `{"Counts": [42]}`)

	h, err := ReadCanonical(filepath.Join(dir, "h.json"))
	require.NoError(t, err)

	assert.Empty(t, h.Boundaries)
	assert.Nil(t, h.Min)
	assert.Nil(t, h.Max)
}

func TestReadCanonicalRejectsMalformedShape(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "h.json", `{"Boundaries": [2, 1], "Counts": [1, 2, 3]}`)

	_, err := ReadCanonical(filepath.Join(dir, "h.json"))
	assert.ErrorIs(t, err, types.ErrInvalidHistogramShape)
}

func TestReadSparse(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "s.json", `{"values": [1, 2, 10], "counts": [80, 120, 350]}`)

	s, err := ReadSparse(filepath.Join(dir, "s.json"))
	require.NoError(t, err)

	assert.Len(t, s, 3)
	assert.Equal(t, 80.0, s[1])
	assert.Equal(t, 350.0, s[10])
	assert.Equal(t, 550.0, s.Total())
}

func TestZipLengthMismatch(t *testing.T) {
	_, err := Zip([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, types.ErrLengthMismatch)
}

func TestZipDuplicateValue(t *testing.T) {
	_, err := Zip([]float64{1, 2, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, types.ErrDuplicateRepresentativeValue)
}

func TestReadDataset(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "original"), "latency.json",
		`{"Boundaries": [10], "Counts": [3, 4], "Min": 5, "Max": 20}`)
	writeFile(t, filepath.Join(root, "even"), "latency.json",
		`{"values": [5, 10], "counts": [3, 4]}`)
	writeFile(t, filepath.Join(root, "middlepoint"), "latency.json",
		`{"values": [7.5, 15], "counts": [3, 4]}`)

	ds, err := ReadDataset(root, "latency", []string{"even", "middlepoint", "cwagent"})
	require.NoError(t, err)

	assert.Equal(t, "latency", ds.Name)
	assert.NotNil(t, ds.Canonical)

	// cwagent file is absent and skipped
	require.Len(t, ds.Representations, 2)
	assert.Equal(t, "even", ds.Representations[0].Name)
	assert.Equal(t, "middlepoint", ds.Representations[1].Name)
}

func TestReadDatasetMissingCanonical(t *testing.T) {
	_, err := ReadDataset(t.TempDir(), "nope", []string{"even"})
	assert.Error(t, err)
}

func TestReadDatasetBadRepresentation(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "original"), "d.json", `{"Counts": [1]}`)
	writeFile(t, filepath.Join(root, "even"), "d.json",
		`{"values": [1, 2], "counts": [1]}`)

	_, err := ReadDataset(root, "d", []string{"even"})
	assert.ErrorIs(t, err, types.ErrLengthMismatch)
}

func TestListDatasets(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "original"), "a.json", `{"Counts": [1]}`)
	writeFile(t, filepath.Join(root, "original"), "b.json", `{"Counts": [1]}`)
	writeFile(t, filepath.Join(root, "original"), "notes.txt", "x")

	names, err := ListDatasets(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, names)
}
