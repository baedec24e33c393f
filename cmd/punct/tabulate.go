package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/azielinski/go-punct/dataset"
	"github.com/spf13/cobra"
)

func newTabulateCmd() *cobra.Command {
	var inPath string
	var outPath string
	var split bool

	cmd := &cobra.Command{
		Use:   "tabulate",
		Short: "Convert a CONLL file into the tabular TSV dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if inPath == "" || outPath == "" {
				return fmt.Errorf("--in and --out are required")
			}

			f, err := os.Open(inPath)
			if err != nil {
				return fmt.Errorf("open conll: %w", err)
			}
			defer f.Close()

			sentences, err := dataset.ReadCONLL(f)
			if err != nil {
				return err
			}
			ds := dataset.Tabulate(sentences)

			if !split {
				return writeDataset(ds, outPath)
			}

			cfg := activeCfg
			rng := rand.New(rand.NewSource(cfg.Split.Seed))
			trainDS, rest := dataset.Split(ds, cfg.Split.TrainRatio, rng)
			devDS, testDS := dataset.Split(rest, cfg.Split.DevRatio, rng)

			for _, part := range []struct {
				name string
				ds   *dataset.Dataset
			}{
				{"train", trainDS},
				{"dev", devDS},
				{"test", testDS},
			} {
				path := suffixPath(outPath, fmt.Sprintf("_%s_%d", part.name, cfg.Split.Seed))
				if err := writeDataset(part.ds, path); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "Input CONLL file")
	cmd.Flags().StringVar(&outPath, "out", "", "Output TSV file (base name when splitting)")
	cmd.Flags().BoolVar(&split, "split", false, "Split into seed-suffixed train/dev/test files")

	return cmd
}

// suffixPath inserts a suffix between a path's stem and its extension,
// always writing .tsv.
func suffixPath(path, suffix string) string {
	dir := filepath.Dir(path)
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return filepath.Join(dir, stem+suffix+".tsv")
}

func writeDataset(ds *dataset.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := ds.WriteTSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
