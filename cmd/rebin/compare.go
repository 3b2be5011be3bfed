package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rebin-io/rebin/pkg/compare"
	"github.com/rebin-io/rebin/pkg/config"
	"github.com/rebin-io/rebin/pkg/loader"
	"github.com/rebin-io/rebin/pkg/log"
	"github.com/rebin-io/rebin/pkg/mapping"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare re-bucketed representations against their canonical histogram",
	Long: `Compare loads a dataset (a canonical histogram plus one JSON file per
re-bucketing folder) and emits the computed bar geometry for every
representation as JSON.

Examples:
  # Compare one dataset against all known re-bucketings
  rebin compare --data-dir ./testdata --dataset latency

  # Every dataset in the directory, on one shared axis
  rebin compare --data-dir ./testdata --shared-axis`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().String("data-dir", ".", "Dataset root directory")
	compareCmd.Flags().String("dataset", "", "Dataset name (default: all datasets under <data-dir>/original)")
	compareCmd.Flags().StringSlice("folders", mapping.Names(), "Representation folders to load")
	compareCmd.Flags().Bool("shared-axis", false, "Reconcile one global axis across all representations")
	compareCmd.Flags().String("config", "", "YAML file overriding the layout defaults")
	compareCmd.Flags().StringP("output", "o", "", "Write result JSON to file instead of stdout")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	dataset, _ := cmd.Flags().GetString("dataset")
	folders, _ := cmd.Flags().GetStringSlice("folders")
	sharedAxis, _ := cmd.Flags().GetBool("shared-axis")
	configPath, _ := cmd.Flags().GetString("config")
	output, _ := cmd.Flags().GetString("output")

	defaults := config.DefaultDefaults()
	if configPath != "" {
		var err error
		if defaults, err = config.Load(configPath); err != nil {
			return err
		}
	}

	names := []string{dataset}
	if dataset == "" {
		var err error
		if names, err = loader.ListDatasets(dataDir); err != nil {
			return err
		}
		if len(names) == 0 {
			return fmt.Errorf("no datasets found under %s/%s", dataDir, loader.CanonicalFolder)
		}
	}

	cmp := compare.New(compare.Options{SharedAxis: sharedAxis, Defaults: defaults})

	type datasetResult struct {
		Dataset string
		Result  *compare.Result
	}
	results := make([]datasetResult, 0, len(names))

	for _, name := range names {
		ds, err := loader.ReadDataset(dataDir, name, folders)
		if err != nil {
			return fmt.Errorf("failed to load dataset %s: %v", name, err)
		}

		result, err := cmp.Compare(ds.Canonical, ds.Representations...)
		if err != nil {
			return fmt.Errorf("failed to compare dataset %s: %v", name, err)
		}

		for _, failed := range result.Failed() {
			logger := log.WithDataset(name)
			logger.Warn().
				Str("representation", failed.Name).
				Str("failure", failed.Failure).
				Msg("representation skipped")
		}
		results = append(results, datasetResult{Dataset: name, Result: result})
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %v", err)
	}

	if output != "" {
		return os.WriteFile(output, append(data, '\n'), 0o644)
	}
	fmt.Println(string(data))
	return nil
}
