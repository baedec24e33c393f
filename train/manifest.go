package train

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/azielinski/go-punct/metrics"
)

// Manifest records everything needed to reproduce or audit a run.
type Manifest struct {
	CreatedAt     time.Time `json:"created_at"`
	Args          Args      `json:"args"`
	LabelList     []string  `json:"label_list"`
	TrainExamples int       `json:"train_examples"`
	EvalExamples  int       `json:"eval_examples"`
	MetricNames   []string  `json:"metric_names"`
	Result        *Result   `json:"result,omitempty"`
}

// NewManifest stamps a manifest with the current time and the full
// metric name set.
func NewManifest(args Args, labels []string, trainN, evalN int) Manifest {
	return Manifest{
		CreatedAt:     time.Now().UTC(),
		Args:          args,
		LabelList:     labels,
		TrainExamples: trainN,
		EvalExamples:  evalN,
		MetricNames:   metrics.Names(),
	}
}

// WriteManifest writes the manifest as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest reads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m, nil
}
