package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDefaults(t *testing.T) {
	d := DefaultDefaults()

	assert.Equal(t, 10.0, d.DegenerateHalfWidth)
	assert.Equal(t, 10.0, d.EdgeExtrapolation)
	assert.Equal(t, 0.8, d.WidthFraction)
	assert.Equal(t, 0.05, d.AxisPaddingFraction)
	assert.NoError(t, d.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Defaults)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(d *Defaults) {}, wantErr: false},
		{name: "zero half width", mutate: func(d *Defaults) { d.DegenerateHalfWidth = 0 }, wantErr: true},
		{name: "negative extrapolation", mutate: func(d *Defaults) { d.EdgeExtrapolation = -1 }, wantErr: true},
		{name: "width fraction above one", mutate: func(d *Defaults) { d.WidthFraction = 1.5 }, wantErr: true},
		{name: "width fraction zero", mutate: func(d *Defaults) { d.WidthFraction = 0 }, wantErr: true},
		{name: "full width fraction", mutate: func(d *Defaults) { d.WidthFraction = 1 }, wantErr: false},
		{name: "negative padding", mutate: func(d *Defaults) { d.AxisPaddingFraction = -0.1 }, wantErr: true},
		{name: "zero padding", mutate: func(d *Defaults) { d.AxisPaddingFraction = 0 }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DefaultDefaults()
			tt.mutate(&d)
			err := d.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rebin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("widthFraction: 0.5\naxisPaddingFraction: 0.1\n"), 0o644))

	d, err := Load(path)
	require.NoError(t, err)

	// Overridden fields
	assert.Equal(t, 0.5, d.WidthFraction)
	assert.Equal(t, 0.1, d.AxisPaddingFraction)

	// Untouched fields keep defaults
	assert.Equal(t, 10.0, d.DegenerateHalfWidth)
	assert.Equal(t, 10.0, d.EdgeExtrapolation)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rebin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("widthFraction: 2.0\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rebin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("widthFraction: [not a number\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
