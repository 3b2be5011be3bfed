/*
Package geometry computes rendering-ready bar intervals for histogram
representations sharing one axis.

Three pure functions make up the package:

  - CanonicalLayout: exact edge inference for a histogram with explicit
    boundaries, including gap-based extrapolation for unknown min/max
    and the flagged placeholder fallback for the boundary-less case
  - SparseLayout: gap-aware width packing for point-representative
    histograms, with a global tight-gap width cap preventing overlap
  - SharedAxis: global axis range reconciliation with padding

All functions are deterministic, allocate only their outputs, and never
mutate their inputs, so independent comparisons can run concurrently
with no coordination. Counts pass through untouched: geometry never
changes a representation's mass.
*/
package geometry
