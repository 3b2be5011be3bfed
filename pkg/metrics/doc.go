/*
Package metrics provides Prometheus instrumentation for rebin.

Metrics are package-level collectors registered once in init():

  - rebin_comparisons_total: comparison passes run
  - rebin_representations_compared_total{outcome}: representations laid
    out, labeled "ok" or "failed"
  - rebin_layout_failures_total{reason}: failures by sentinel error
  - rebin_degenerate_layouts_total: layouts built from the placeholder
    fallback interval
  - rebin_layout_duration_seconds: duration of one full comparison pass

The package never starts an HTTP server; Handler() is exposed for hosts
that embed rebin and want to scrape it.

Timer Helper:

	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.LayoutDuration)
*/
package metrics
