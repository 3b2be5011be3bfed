/*
Package config holds the named layout constants and their YAML override
mechanism.

The fallback values used by the geometry package (the 10-unit edge
extrapolation, the -10..10 degenerate placeholder, the 0.8 width
fraction, the 5% axis padding) are exposed here as explicit named
defaults rather than magic literals, so callers can override them
without touching layout logic:

	defaults := config.DefaultDefaults()
	defaults.WidthFraction = 0.9

	// Or from a YAML file:
	defaults, err := config.Load("rebin.yaml")

Overrides files only need to name the fields they change:

	widthFraction: 0.9
	axisPaddingFraction: 0.1
*/
package config
