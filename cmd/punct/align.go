package main

import (
	"fmt"
	"log/slog"

	"github.com/azielinski/go-punct/align"
	"github.com/spf13/cobra"
)

func newAlignCmd() *cobra.Command {
	var inPath string
	var expectedPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "align",
		Short: "Align input and expected texts into labeled CONLL tokens",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if inPath == "" || expectedPath == "" || outPath == "" {
				return fmt.Errorf("--in, --expected and --out are required")
			}

			var pauses align.PauseSource = align.NoPauses{}
			if dir := activeCfg.Paths.TranscriptDir; dir != "" {
				pauses = align.TranscriptDir{Dir: dir}
			}

			aligner := align.NewAligner(pauses, slog.Default())
			return aligner.RunFiles(inPath, expectedPath, outPath)
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "Input-side TSV (id<TAB>text)")
	cmd.Flags().StringVar(&expectedPath, "expected", "", "Expected-side TSV (one text per line)")
	cmd.Flags().StringVar(&outPath, "out", "", "Output CONLL file")

	return cmd
}
