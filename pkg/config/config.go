package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults holds the named layout constants. The zero value is not
// usable; start from DefaultDefaults and override selectively.
type Defaults struct {
	// DegenerateHalfWidth is half the placeholder interval used for a
	// single-bucket histogram with no min/max. The fallback interval is
	// [-DegenerateHalfWidth, +DegenerateHalfWidth).
	DegenerateHalfWidth float64 `yaml:"degenerateHalfWidth"`

	// EdgeExtrapolation is the distance by which the first or last bucket
	// edge is extrapolated past a lone boundary when min/max are absent
	// and no boundary gap is available.
	EdgeExtrapolation float64 `yaml:"edgeExtrapolation"`

	// WidthFraction is the fraction of the minimum neighbor gap (or of
	// the domain span for a single value) a sparse bar may occupy.
	WidthFraction float64 `yaml:"widthFraction"`

	// AxisPaddingFraction is the fraction of the global value range added
	// on each side of a shared axis.
	AxisPaddingFraction float64 `yaml:"axisPaddingFraction"`
}

// DefaultDefaults returns the layout constants carried over from the
// original comparison scripts.
func DefaultDefaults() Defaults {
	return Defaults{
		DegenerateHalfWidth: 10,
		EdgeExtrapolation:   10,
		WidthFraction:       0.8,
		AxisPaddingFraction: 0.05,
	}
}

// Validate checks that the constants are usable for layout.
func (d Defaults) Validate() error {
	if d.DegenerateHalfWidth <= 0 {
		return fmt.Errorf("degenerateHalfWidth must be > 0, got %v", d.DegenerateHalfWidth)
	}
	if d.EdgeExtrapolation <= 0 {
		return fmt.Errorf("edgeExtrapolation must be > 0, got %v", d.EdgeExtrapolation)
	}
	if d.WidthFraction <= 0 || d.WidthFraction > 1 {
		return fmt.Errorf("widthFraction must be in (0, 1], got %v", d.WidthFraction)
	}
	if d.AxisPaddingFraction < 0 {
		return fmt.Errorf("axisPaddingFraction must be >= 0, got %v", d.AxisPaddingFraction)
	}
	return nil
}

// Load reads a YAML overrides file on top of the defaults. Fields not
// present in the file keep their default values.
func Load(path string) (Defaults, error) {
	d := DefaultDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("failed to read config file: %v", err)
	}

	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("failed to parse config file: %v", err)
	}

	if err := d.Validate(); err != nil {
		return d, fmt.Errorf("invalid config %s: %v", path, err)
	}
	return d, nil
}
