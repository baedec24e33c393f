package train

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/azielinski/go-punct/dataset"
)

// CommandTrainer runs fine-tuning through an external runner
// executable. The examples and arguments are materialized in a work
// directory, the runner is invoked with their paths, and the run result
// is decoded from its standard output as JSON.
type CommandTrainer struct {
	Path    string
	WorkDir string
	Logger  *slog.Logger
}

func (t *CommandTrainer) Train(ctx context.Context, trainSet, evalSet []Example, args Args) (Result, error) {
	if t.Path == "" {
		return Result{}, errors.New("train: no runner executable configured")
	}
	logger := t.Logger
	if logger == nil {
		logger = slog.Default()
	}

	workDir := t.WorkDir
	if workDir == "" {
		dir, err := os.MkdirTemp("", "punct-train-")
		if err != nil {
			return Result{}, fmt.Errorf("create work dir: %w", err)
		}
		workDir = dir
	} else if err := os.MkdirAll(workDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create work dir: %w", err)
	}

	trainPath := filepath.Join(workDir, "train.tsv")
	evalPath := filepath.Join(workDir, "eval.tsv")
	argsPath := filepath.Join(workDir, "args.json")

	if err := writeExamples(trainPath, trainSet); err != nil {
		return Result{}, err
	}
	if err := writeExamples(evalPath, evalSet); err != nil {
		return Result{}, err
	}

	argsJSON, err := json.MarshalIndent(args, "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("marshal args: %w", err)
	}
	if err := os.WriteFile(argsPath, argsJSON, 0o644); err != nil {
		return Result{}, fmt.Errorf("write args: %w", err)
	}

	logger.Info("starting training run",
		"runner", t.Path,
		"work_dir", workDir,
		"train_examples", len(trainSet),
		"eval_examples", len(evalSet))

	cmd := exec.CommandContext(ctx, t.Path,
		"--args", argsPath,
		"--train", trainPath,
		"--eval", evalPath)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return Result{}, fmt.Errorf("run trainer %s: %w", t.Path, err)
	}

	var result Result
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		return Result{}, fmt.Errorf("decode trainer result: %w", err)
	}
	return result, nil
}

// writeExamples serializes examples in the tabular dataset format so
// the runner reads the same files the pipeline produces.
func writeExamples(path string, examples []Example) error {
	var ds dataset.Dataset
	for _, ex := range examples {
		for i, w := range ex.Words {
			ds.Records = append(ds.Records, dataset.Record{
				Word:       w,
				Label:      ex.Labels[i],
				Time:       " ",
				SentenceID: ex.ID,
			})
		}
	}

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
