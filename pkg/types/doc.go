/*
Package types defines the core data structures used throughout rebin.

This package contains the fundamental types of rebin's domain model:
canonical histograms, sparse re-bucketed representations, and the bar
geometry computed for rendering. These types are used by all other
packages for layout, mapping, and comparison logic.

# Core Types

Histograms:
  - CanonicalHistogram: The authoritative distribution with explicit
    bucket boundaries, counts, and optional min/max domain bounds
  - SparseHistogram: A re-bucketed view mapping representative values
    to counts, with no explicit interval boundaries
  - Pair: One sorted (value, count) entry of a sparse histogram

Geometry:
  - BarGeometry: A (left edge, width) pair defining the half-open
    rendering interval of one bucket
  - Layout: The ordered bars for one representation, its carried-through
    total mass, and a degenerate flag for placeholder-derived geometry

Comparison:
  - Representation: A named sparse histogram entering a comparison

# Invariants

Counts are carried verbatim: Total() sums the input counts and no
geometry computation ever feeds back into the mass. Boundaries must be
strictly increasing; Validate() rejects malformed shapes before layout.
Bars within one Layout never overlap.

# Errors

The package defines the sentinel errors shared by layout and loading:

	types.ErrInvalidHistogramShape
	types.ErrEmptyRepresentation
	types.ErrDuplicateRepresentativeValue
	types.ErrLengthMismatch

Callers match them with errors.Is after unwrapping context added by
higher layers.

# Thread Safety

All types are plain values with no internal synchronization. A histogram
constructed for one comparison pass must not be mutated while that pass
runs; independent passes over independent inputs are safe concurrently.
*/
package types
