package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	punct "github.com/azielinski/go-punct"
	"github.com/azielinski/go-punct/dataset"
	"github.com/azielinski/go-punct/train"
	"github.com/spf13/cobra"
)

func newTrainCmd() *cobra.Command {
	var trainPath string
	var devPath string
	var runnerPath string
	var useDice bool
	var useFocal bool

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fine-tune a token-classification model on a labeled dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if trainPath == "" || devPath == "" {
				return fmt.Errorf("--train and --dev are required")
			}
			if useDice && useFocal {
				return fmt.Errorf("--dice-loss and --focal-loss are mutually exclusive")
			}

			trainSet, err := loadExamples(trainPath)
			if err != nil {
				return err
			}
			devSet, err := loadExamples(devPath)
			if err != nil {
				return err
			}

			cfg := activeCfg
			args := train.DefaultArgs()
			args.ModelType = cfg.Train.ModelType
			args.ModelName = cfg.Train.ModelName
			args.OutputDir = cfg.Train.OutputDir
			args.TrainBatchSize = cfg.Train.BatchSize
			args.EvalBatchSize = cfg.Train.BatchSize
			args.LearningRate = cfg.Train.LearningRate
			args.Epochs = cfg.Train.Epochs
			args.EvalSteps = cfg.Train.EvalSteps
			args.MaxSeqLen = cfg.Chunk.MaxSeqLen
			args.Seed = cfg.Train.Seed
			args.UseDiceLoss = useDice
			args.UseFocalLoss = useFocal

			if err := os.MkdirAll(args.OutputDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			manifest := train.NewManifest(args,
				punct.LabelStrings(punct.Labels()),
				len(trainSet), len(devSet))

			if runnerPath != "" {
				trainer := &train.CommandTrainer{Path: runnerPath, Logger: slog.Default()}
				result, err := trainer.Train(cmd.Context(), trainSet, devSet, args)
				if err != nil {
					return err
				}
				manifest.Result = &result
				slog.Default().Info("training run finished",
					"global_steps", result.GlobalSteps,
					"best_metric", result.BestMetric)
			}

			return train.WriteManifest(filepath.Join(args.OutputDir, "run_manifest.json"), manifest)
		},
	}

	cmd.Flags().StringVar(&trainPath, "train", "", "Training TSV dataset")
	cmd.Flags().StringVar(&devPath, "dev", "", "Development TSV dataset")
	cmd.Flags().StringVar(&runnerPath, "runner", "", "External trainer executable; omitted, only the run manifest is written")
	cmd.Flags().BoolVar(&useDice, "dice-loss", false, "Use dice loss instead of cross-entropy")
	cmd.Flags().BoolVar(&useFocal, "focal-loss", false, "Use focal loss instead of cross-entropy")

	return cmd
}

func loadExamples(path string) ([]train.Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := dataset.ReadTSV(f)
	if err != nil {
		return nil, err
	}
	return train.LoadData(ds, slog.Default()), nil
}
