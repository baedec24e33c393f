package main

import (
	"fmt"
	"os"

	"github.com/azielinski/go-punct/dataset"
	"github.com/azielinski/go-punct/tokenizer"
	"github.com/spf13/cobra"
)

func newChunkCmd() *cobra.Command {
	var inPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "chunk",
		Short: "Split overlong sentences into model-sized chunks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if inPath == "" || outPath == "" {
				return fmt.Errorf("--in and --out are required")
			}

			tok, err := tokenizer.New(activeCfg.Paths.TokenizerPath)
			if err != nil {
				return err
			}
			defer tok.Close()

			f, err := os.Open(inPath)
			if err != nil {
				return fmt.Errorf("open dataset: %w", err)
			}
			defer f.Close()

			ds, err := dataset.ReadTSV(f)
			if err != nil {
				return err
			}

			chunker := &dataset.Chunker{
				MaxSeqLen: activeCfg.Chunk.MaxSeqLen,
				Stride:    activeCfg.Chunk.Stride,
				Counter:   tok,
			}
			return writeDataset(chunker.Split(ds), outPath)
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "Input TSV dataset")
	cmd.Flags().StringVar(&outPath, "out", "", "Output TSV dataset")

	return cmd
}
