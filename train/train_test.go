package train

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/azielinski/go-punct/dataset"
)

func TestDefaultArgs(t *testing.T) {
	args := DefaultArgs()

	if args.ModelType != "herbert" {
		t.Errorf("ModelType = %q, want herbert", args.ModelType)
	}
	if args.ModelName != "allegro/herbert-base-cased" {
		t.Errorf("ModelName = %q, want allegro/herbert-base-cased", args.ModelName)
	}
	if args.TrainBatchSize != 12 || args.EvalBatchSize != 12 {
		t.Errorf("batch sizes = %d/%d, want 12/12", args.TrainBatchSize, args.EvalBatchSize)
	}
	if args.LearningRate != 2e-5 {
		t.Errorf("LearningRate = %v, want 2e-5", args.LearningRate)
	}
	if args.Epochs != 2 || args.MaxSeqLen != 256 || args.Seed != 2 {
		t.Errorf("epochs/maxseq/seed = %d/%d/%d, want 2/256/2", args.Epochs, args.MaxSeqLen, args.Seed)
	}
	if !args.EvaluateDuringTraining || args.EvalSteps != 200 {
		t.Errorf("eval settings = %v/%d, want true/200", args.EvaluateDuringTraining, args.EvalSteps)
	}
	if args.EarlyStoppingMetric != "f1_weighted" {
		t.Errorf("EarlyStoppingMetric = %q, want f1_weighted", args.EarlyStoppingMetric)
	}
	if args.WarmupSteps != 0 {
		t.Errorf("WarmupSteps = %d, want 0", args.WarmupSteps)
	}
	if args.UseDiceLoss || args.UseFocalLoss {
		t.Error("loss alternatives enabled by default")
	}
}

func TestLoadData(t *testing.T) {
	ds := &dataset.Dataset{Records: []dataset.Record{
		{Word: "dog", Label: "B", Time: " ", SentenceID: "0"},
		{Word: "runs", Label: ".", Time: " ", SentenceID: "0"},
		{Word: "home", Label: "B", Time: " ", SentenceID: "1"},
	}}

	examples := LoadData(ds, slog.Default())

	if len(examples) != 2 {
		t.Fatalf("got %d examples, want 2", len(examples))
	}
	first := examples[0]
	if first.ID != "0" || len(first.Words) != 2 {
		t.Errorf("first example = %+v", first)
	}
	if first.Words[1] != "runs" || first.Labels[1] != "." {
		t.Errorf("first example = %+v", first)
	}
}

func TestLoadData_DropsSentencesWithUnknownLabels(t *testing.T) {
	ds := &dataset.Dataset{Records: []dataset.Record{
		{Word: "dog", Label: "B", Time: " ", SentenceID: "0"},
		{Word: "runs", Label: "XYZ", Time: " ", SentenceID: "0"},
		{Word: "home", Label: ".", Time: " ", SentenceID: "1"},
	}}

	examples := LoadData(ds, slog.Default())

	if len(examples) != 1 {
		t.Fatalf("got %d examples, want 1", len(examples))
	}
	if examples[0].ID != "1" {
		t.Errorf("kept example %q, want sentence 1", examples[0].ID)
	}
}

func TestManifest_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run_manifest.json")

	m := NewManifest(DefaultArgs(), []string{"B", "."}, 100, 20)
	m.Result = &Result{GlobalSteps: 400, BestMetric: 0.91, ModelDir: "models/best"}

	if err := WriteManifest(path, m); err != nil {
		t.Fatalf("WriteManifest() failed: %v", err)
	}

	got, err := ReadManifest(path)
	if err != nil {
		t.Fatalf("ReadManifest() failed: %v", err)
	}

	if got.TrainExamples != 100 || got.EvalExamples != 20 {
		t.Errorf("example counts = %d/%d, want 100/20", got.TrainExamples, got.EvalExamples)
	}
	if got.Args.ModelName != m.Args.ModelName {
		t.Errorf("Args.ModelName = %q, want %q", got.Args.ModelName, m.Args.ModelName)
	}
	if got.Result == nil || got.Result.GlobalSteps != 400 {
		t.Errorf("Result = %+v, want global steps 400", got.Result)
	}
	if len(got.MetricNames) == 0 {
		t.Error("MetricNames is empty")
	}
}

func TestCommandTrainer_NoRunner(t *testing.T) {
	trainer := &CommandTrainer{}
	if _, err := trainer.Train(context.Background(), nil, nil, DefaultArgs()); err == nil {
		t.Error("expected error when no runner is configured")
	}
}
