/*
Package log provides structured logging for rebin built on zerolog.

Init configures the global logger once at startup; packages then derive
child loggers carrying their context:

	log.Init(log.Config{Level: log.InfoLevel})
	logger := log.WithComponent("compare")
	logger.Info().Str("run_id", id).Msg("comparison complete")

Console output (human readable) is the default; JSONOutput switches to
newline-delimited JSON for machine consumption. Output defaults to
stderr so geometry results written to stdout stay clean.
*/
package log
