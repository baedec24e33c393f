package main

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/azielinski/go-punct/corpus"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert corpus documents into parallel input/expected TSV buckets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := activeCfg
			if len(cfg.Paths.DataDirs) == 0 {
				return fmt.Errorf("no data directories configured, set --paths-data-dirs")
			}
			if cfg.Paths.TrainManifest == "" || cfg.Paths.TestManifest == "" {
				return fmt.Errorf("both --paths-train-manifest and --paths-test-manifest are required")
			}

			conv := &corpus.Converter{
				TrainManifest: cfg.Paths.TrainManifest,
				TestManifest:  cfg.Paths.TestManifest,
				DataDirs:      cfg.Paths.DataDirs,
				SaveDir:       cfg.Paths.SaveDir,
				Rand:          rand.New(rand.NewSource(cfg.Split.RouteSeed)),
				Logger:        slog.Default(),
			}
			return conv.Convert()
		},
	}
	return cmd
}
