/*
Package loader reads histogram datasets from their on-disk JSON layout.

A dataset root holds one folder per representation:

	<root>/original/<name>.json       canonical histograms
	<root>/even/<name>.json           one folder per re-bucketing
	<root>/middlepoint/<name>.json    ...

Canonical files carry {Boundaries, Counts, Min, Max}; representation
files carry parallel {values, counts} arrays that are zipped into a
sparse histogram. Zipping is strict: unequal array lengths and duplicate
representative values are errors, never silent truncation or merging.

Missing representation files are skipped with a warning so a dataset can
be compared against whichever re-bucketings exist for it.
*/
package loader
