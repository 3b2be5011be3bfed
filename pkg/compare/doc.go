/*
Package compare orchestrates one comparison pass: the canonical
histogram and N alternative representations laid out on comparable
geometry.

	cmp := compare.New(compare.Options{SharedAxis: true})
	result, err := cmp.Compare(canonical,
		types.Representation{Name: "even", Hist: even},
		types.Representation{Name: "middlepoint", Hist: mid},
	)

Each representation is laid out over its own value extrema. Failures are
local: a representation that cannot be laid out (empty, duplicate
values) is reported in its RepResult while the others succeed. Only a
malformed canonical histogram aborts the pass, since nothing can be
compared against it.

In shared-axis mode the result carries one global [AxisMin, AxisMax]
covering the canonical bounds and every successful representation,
padded per the configured axis padding fraction.

Every layout carries its representation's total mass, passed through
verbatim from the input counts, so callers can display and verify
conservation against the canonical total.
*/
package compare
