package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rebin-io/rebin/pkg/log"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rebin",
	Short: "Rebin - histogram re-bucketing comparison engine",
	Long: `Rebin compares alternative re-bucketings of a histogram against the
canonical distribution they were derived from. It computes geometrically
consistent bar intervals for every representation so a rendering front
end can draw them on one shared axis, and reports each representation's
total mass for conservation checks.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		levelName, _ := cmd.Flags().GetString("log-level")
		jsonOutput, _ := cmd.Flags().GetBool("log-json")
		log.Init(log.Config{
			Level:      log.Level(levelName),
			JSONOutput: jsonOutput,
		})
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Rebin version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Log as JSON instead of console output")
}
