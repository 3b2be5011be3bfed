package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rebin-io/rebin/pkg/loader"
	"github.com/rebin-io/rebin/pkg/log"
	"github.com/rebin-io/rebin/pkg/mapping"
	"github.com/rebin-io/rebin/pkg/types"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Re-bucket canonical histograms through the mapping strategies",
	Long: `Map reads the canonical histograms of a dataset directory and writes
one sparse representation file per mapping strategy, producing the
folder layout the compare command consumes.

Examples:
  # Regenerate every representation folder for every dataset
  rebin map --data-dir ./testdata

  # One strategy for one dataset
  rebin map --data-dir ./testdata --dataset latency --mapper even`,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().String("data-dir", ".", "Dataset root directory")
	mapCmd.Flags().String("dataset", "", "Dataset name (default: all datasets under <data-dir>/original)")
	mapCmd.Flags().StringSlice("mapper", mapping.Names(), "Mapping strategies to run")

	rootCmd.AddCommand(mapCmd)
}

func runMap(cmd *cobra.Command, args []string) error {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	dataset, _ := cmd.Flags().GetString("dataset")
	mappers, _ := cmd.Flags().GetStringSlice("mapper")

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

	for _, name := range names {
		canonical, err := loader.ReadCanonical(filepath.Join(dataDir, loader.CanonicalFolder, name+".json"))
		if err != nil {
			return err
		}
		logger := log.WithDataset(name)

		for _, mapperName := range mappers {
			m, err := mapping.Get(mapperName)
			if err != nil {
				return err
			}

			sparse, err := m.Map(canonical)
			if err != nil {
				logger.Warn().Str("mapper", mapperName).Err(err).Msg("mapping failed, skipping")
				continue
			}

			if err := writeSparse(filepath.Join(dataDir, mapperName, name+".json"), sparse.Pairs()); err != nil {
				return err
			}
			logger.Info().
				Str("mapper", mapperName).
				Int("values", len(sparse)).
				Float64("total", sparse.Total()).
				Msg("representation written")
		}
	}
	return nil
}

// writeSparse writes the {values, counts} JSON file the compare command
// and the original plotting scripts consume.
func writeSparse(path string, pairs []types.Pair) error {
	values := make([]float64, len(pairs))
	counts := make([]float64, len(pairs))
	for i, p := range pairs {
		values[i] = p.Value
		counts[i] = p.Count
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create representation folder: %v", err)
	}

	data, err := json.MarshalIndent(struct {
		Values []float64 `json:"values"`
		Counts []float64 `json:"counts"`
	}{values, counts}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode representation: %v", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
