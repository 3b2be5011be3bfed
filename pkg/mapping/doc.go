/*
Package mapping implements the re-bucketing strategies that turn a
canonical histogram into the sparse representations the comparison
engine lays out side by side.

# Strategies

  - middlepoint (Midpoint): one representative per populated bucket at
    the bucket midpoint
  - even (Even): up to 50 evenly spaced representatives per bucket,
    count split evenly
  - exponential (Exponential): quadratic ramps leaning mass toward the
    denser neighbor, requires known min/max
  - exponentialcw (ExponentialCW): same ramps with open-boundary capping
    and a single-representative fallback for boundary-less histograms
  - cwagent (SEH1): sparse exponential histogram with base 1.1

# Registry

Mappers self-register under their dataset folder names:

	m, err := mapping.Get("even")
	sparse, err := m.Map(hist)

All mappers are stateless and safe for concurrent use; none mutates its
input. Mass is conserved by middlepoint and cwagent exactly; even keeps
the total exact up to float division; the exponential ramps round inner
weights and may drift the total slightly, which is precisely the kind of
deviation the comparison engine exists to make visible.
*/
package mapping
