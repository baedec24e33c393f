// Package train prepares labeled datasets for token-classification
// fine-tuning and records run configuration. The optimization loop
// itself runs out of process; this package owns data loading, the run
// arguments, and the run manifest.
package train

import (
	"context"
	"log/slog"

	punct "github.com/azielinski/go-punct"
	"github.com/azielinski/go-punct/dataset"
)

// Args configures a fine-tuning run. Zero values are meaningful, so
// construct with DefaultArgs and override.
type Args struct {
	ModelType string `json:"model_type"`
	ModelName string `json:"model_name"`
	OutputDir string `json:"output_dir"`

	TrainBatchSize int     `json:"train_batch_size"`
	EvalBatchSize  int     `json:"eval_batch_size"`
	LearningRate   float64 `json:"learning_rate"`
	Epochs         int     `json:"num_train_epochs"`
	MaxSeqLen      int     `json:"max_seq_length"`
	WarmupSteps    int     `json:"warmup_steps"`
	Seed           int64   `json:"seed"`

	EvaluateDuringTraining bool   `json:"evaluate_during_training"`
	EvalSteps              int    `json:"evaluate_during_training_steps"`
	EarlyStoppingMetric    string `json:"early_stopping_metric"`
	EarlyStoppingPatience  int    `json:"early_stopping_patience"`

	// Alternatives to cross-entropy for the class imbalance between
	// unpunctuated and punctuated tokens. At most one may be set.
	UseDiceLoss  bool    `json:"use_dice_loss"`
	UseFocalLoss bool    `json:"use_focal_loss"`
	FocalGamma   float64 `json:"focal_gamma"`
}

// DefaultArgs returns the reference run configuration for Polish
// punctuation restoration.
func DefaultArgs() Args {
	return Args{
		ModelType:              "herbert",
		ModelName:              "allegro/herbert-base-cased",
		TrainBatchSize:         12,
		EvalBatchSize:          12,
		LearningRate:           2e-5,
		Epochs:                 2,
		MaxSeqLen:              256,
		WarmupSteps:            0,
		Seed:                   2,
		EvaluateDuringTraining: true,
		EvalSteps:              200,
		EarlyStoppingMetric:    "f1_weighted",
		EarlyStoppingPatience:  3,
		FocalGamma:             2,
	}
}

// Example is one training sentence.
type Example struct {
	ID     string
	Words  []string
	Labels []string
}

// LoadData converts a tabular dataset into training examples. A
// sentence carrying any label outside the model's alphabet is dropped
// whole, with a warning, rather than truncated.
func LoadData(ds *dataset.Dataset, logger *slog.Logger) []Example {
	if logger == nil {
		logger = slog.Default()
	}

	var out []Example
	dropped := 0
	for _, s := range ds.Sentences() {
		ex := Example{ID: s.ID}
		valid := true
		for _, r := range s.Records {
			if _, ok := punct.ParseLabel(r.Label); !ok {
				valid = false
				break
			}
			ex.Words = append(ex.Words, r.Word)
			ex.Labels = append(ex.Labels, r.Label)
		}
		if !valid {
			dropped++
			logger.Warn("dropping sentence with unknown label", "sentence_id", s.ID)
			continue
		}
		out = append(out, ex)
	}
	if dropped > 0 {
		logger.Warn("dropped sentences during load", "count", dropped)
	}
	return out
}

// Result summarizes a completed run.
type Result struct {
	GlobalSteps int                `json:"global_steps"`
	BestMetric  float64            `json:"best_metric"`
	ModelDir    string             `json:"model_dir"`
	Scores      map[string]float64 `json:"scores,omitempty"`
}

// Trainer runs the fine-tuning loop. The bundled implementation shells
// out to an external runner; tests substitute their own.
type Trainer interface {
	Train(ctx context.Context, trainSet, evalSet []Example, args Args) (Result, error)
}
