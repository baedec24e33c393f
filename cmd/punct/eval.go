package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	punct "github.com/azielinski/go-punct"
	"github.com/azielinski/go-punct/dataset"
	"github.com/azielinski/go-punct/metrics"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var inPath string
	var showConfusion bool

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Score model predictions against a gold TSV dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if inPath == "" {
				return fmt.Errorf("--in is required")
			}

			f, err := os.Open(inPath)
			if err != nil {
				return fmt.Errorf("open dataset: %w", err)
			}
			defer f.Close()

			ds, err := dataset.ReadTSV(f)
			if err != nil {
				return err
			}

			cfg := activeCfg
			restorer, err := punct.New(cfg.Paths.ModelPath, cfg.Paths.TokenizerPath,
				punct.WithMaxSeqLen(cfg.Chunk.MaxSeqLen))
			if err != nil {
				return err
			}
			defer restorer.Close()

			var gold, pred [][]string
			for _, sentence := range ds.Sentences() {
				words := make([]string, len(sentence.Records))
				labels := make([]string, len(sentence.Records))
				for i, r := range sentence.Records {
					words[i] = r.Word
					labels[i] = r.Label
				}

				predicted, err := restorer.Predict(cmd.Context(), words)
				if err != nil {
					return fmt.Errorf("predict sentence %s: %w", sentence.ID, err)
				}
				gold = append(gold, labels)
				pred = append(pred, punct.LabelStrings(predicted))
			}

			report := metrics.Evaluate(gold, pred)
			printReport(cmd.OutOrStdout(), report, showConfusion)
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "Gold TSV dataset")
	cmd.Flags().BoolVar(&showConfusion, "confusion", false, "Print the confusion matrix")

	return cmd
}

func printReport(w io.Writer, r metrics.Report, showConfusion bool) {
	fmt.Fprintf(w, "Evaluation over %d punctuation labels\n", len(r.Labels))
	fmt.Fprintln(w, strings.Repeat("=", 44))
	fmt.Fprintf(w, "%-12s %-10s %-10s %-10s\n", "Average", "Prec", "Rec", "F1")
	fmt.Fprintf(w, "%-12s %-10.4f %-10.4f %-10.4f\n", "micro", r.Precision.Micro, r.Recall.Micro, r.F1.Micro)
	fmt.Fprintf(w, "%-12s %-10.4f %-10.4f %-10.4f\n", "macro", r.Precision.Macro, r.Recall.Macro, r.F1.Macro)
	fmt.Fprintf(w, "%-12s %-10.4f %-10.4f %-10.4f\n", "weighted", r.Precision.Weighted, r.Recall.Weighted, r.F1.Weighted)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-12s %-10s %-10s %-10s\n", "Label", "Prec", "Rec", "F1")
	for _, l := range r.Labels {
		fmt.Fprintf(w, "%-12s %-10.4f %-10.4f %-10.4f\n", l, r.PrecisionPerLabel[l], r.RecallPerLabel[l], r.F1PerLabel[l])
	}

	if showConfusion {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%-8s", "gold\\pred")
		for _, l := range r.Labels {
			fmt.Fprintf(w, " %6s", l)
		}
		fmt.Fprintln(w)
		for i, l := range r.Labels {
			fmt.Fprintf(w, "%-8s", l)
			for j := range r.Labels {
				fmt.Fprintf(w, " %6d", r.Confusion[i][j])
			}
			fmt.Fprintln(w)
		}
	}
}
