// Package config holds the punct CLI configuration, merged from
// defaults, an optional config file, PUNCT_* environment variables,
// and command-line flags, in ascending precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string      `mapstructure:"log_level"`
	Paths    PathsConfig `mapstructure:"paths"`
	Split    SplitConfig `mapstructure:"split"`
	Chunk    ChunkConfig `mapstructure:"chunk"`
	Train    TrainConfig `mapstructure:"train"`
}

type PathsConfig struct {
	DataDirs      []string `mapstructure:"data_dirs"`
	TrainManifest string   `mapstructure:"train_manifest"`
	TestManifest  string   `mapstructure:"test_manifest"`
	SaveDir       string   `mapstructure:"save_dir"`
	TokenizerPath string   `mapstructure:"tokenizer_path"`
	ModelPath     string   `mapstructure:"model_path"`
	TranscriptDir string   `mapstructure:"transcript_dir"`
}

type SplitConfig struct {
	Seed       int64   `mapstructure:"seed"`
	RouteSeed  int64   `mapstructure:"route_seed"`
	TrainRatio float64 `mapstructure:"train_ratio"`
	DevRatio   float64 `mapstructure:"dev_ratio"`
}

type ChunkConfig struct {
	MaxSeqLen int     `mapstructure:"max_seq_len"`
	Stride    float64 `mapstructure:"stride"`
}

type TrainConfig struct {
	ModelType    string  `mapstructure:"model_type"`
	ModelName    string  `mapstructure:"model_name"`
	OutputDir    string  `mapstructure:"output_dir"`
	BatchSize    int     `mapstructure:"batch_size"`
	LearningRate float64 `mapstructure:"learning_rate"`
	Epochs       int     `mapstructure:"epochs"`
	EvalSteps    int     `mapstructure:"eval_steps"`
	Seed         int64   `mapstructure:"seed"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Paths: PathsConfig{
			SaveDir:       "data/processed",
			TokenizerPath: "models/tokenizer.model",
			ModelPath:     "models/punct.onnx",
		},
		Split: SplitConfig{
			Seed:       1353,
			RouteSeed:  0,
			TrainRatio: 0.8,
			DevRatio:   0.5,
		},
		Chunk: ChunkConfig{
			MaxSeqLen: 256,
			Stride:    1.0,
		},
		Train: TrainConfig{
			ModelType:    "herbert",
			ModelName:    "allegro/herbert-base-cased",
			OutputDir:    "models/runs",
			BatchSize:    12,
			LearningRate: 2e-5,
			Epochs:       2,
			EvalSteps:    200,
			Seed:         2,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringSlice("paths-data-dirs", defaults.Paths.DataDirs, "Directories holding corpus JSON documents")
	fs.String("paths-train-manifest", defaults.Paths.TrainManifest, "Manifest listing training document ids")
	fs.String("paths-test-manifest", defaults.Paths.TestManifest, "Manifest listing test document ids")
	fs.String("paths-save-dir", defaults.Paths.SaveDir, "Output directory for processed data")
	fs.String("paths-tokenizer-path", defaults.Paths.TokenizerPath, "Path to sentencepiece model")
	fs.String("paths-model-path", defaults.Paths.ModelPath, "Path to ONNX token-classification model")
	fs.String("paths-transcript-dir", defaults.Paths.TranscriptDir, "Directory holding timestamped transcripts")
	fs.Int64("split-seed", defaults.Split.Seed, "Seed for train/dev/test sentence sampling")
	fs.Int64("split-route-seed", defaults.Split.RouteSeed, "Seed for shuffling unrouted documents")
	fs.Float64("split-train-ratio", defaults.Split.TrainRatio, "Fraction of sentences kept for training")
	fs.Float64("split-dev-ratio", defaults.Split.DevRatio, "Fraction of the remainder kept for dev")
	fs.Int("chunk-max-seq-len", defaults.Chunk.MaxSeqLen, "Subword budget per chunk")
	fs.Float64("chunk-stride", defaults.Chunk.Stride, "Window fraction discarded at each chunk flush")
	fs.String("train-model-type", defaults.Train.ModelType, "Model architecture family")
	fs.String("train-model-name", defaults.Train.ModelName, "Pretrained model name or path")
	fs.String("train-output-dir", defaults.Train.OutputDir, "Directory for run outputs and manifests")
	fs.Int("train-batch-size", defaults.Train.BatchSize, "Per-device batch size")
	fs.Float64("train-learning-rate", defaults.Train.LearningRate, "Initial learning rate")
	fs.Int("train-epochs", defaults.Train.Epochs, "Number of training epochs")
	fs.Int("train-eval-steps", defaults.Train.EvalSteps, "Steps between mid-training evaluations")
	fs.Int64("train-seed", defaults.Train.Seed, "Training seed")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("PUNCT")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("punct")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("paths.data_dirs", c.Paths.DataDirs)
	v.SetDefault("paths.train_manifest", c.Paths.TrainManifest)
	v.SetDefault("paths.test_manifest", c.Paths.TestManifest)
	v.SetDefault("paths.save_dir", c.Paths.SaveDir)
	v.SetDefault("paths.tokenizer_path", c.Paths.TokenizerPath)
	v.SetDefault("paths.model_path", c.Paths.ModelPath)
	v.SetDefault("paths.transcript_dir", c.Paths.TranscriptDir)
	v.SetDefault("split.seed", c.Split.Seed)
	v.SetDefault("split.route_seed", c.Split.RouteSeed)
	v.SetDefault("split.train_ratio", c.Split.TrainRatio)
	v.SetDefault("split.dev_ratio", c.Split.DevRatio)
	v.SetDefault("chunk.max_seq_len", c.Chunk.MaxSeqLen)
	v.SetDefault("chunk.stride", c.Chunk.Stride)
	v.SetDefault("train.model_type", c.Train.ModelType)
	v.SetDefault("train.model_name", c.Train.ModelName)
	v.SetDefault("train.output_dir", c.Train.OutputDir)
	v.SetDefault("train.batch_size", c.Train.BatchSize)
	v.SetDefault("train.learning_rate", c.Train.LearningRate)
	v.SetDefault("train.epochs", c.Train.Epochs)
	v.SetDefault("train.eval_steps", c.Train.EvalSteps)
	v.SetDefault("train.seed", c.Train.Seed)
}

// flagKeys maps each configuration key to its command-line flag.
// Binding per key keeps flag values layered above the config file and
// defaults; a blanket BindPFlags would register every flag under its
// dashed name and leave the dotted keys unbound.
var flagKeys = map[string]string{
	"log_level":            "log-level",
	"paths.data_dirs":      "paths-data-dirs",
	"paths.train_manifest": "paths-train-manifest",
	"paths.test_manifest":  "paths-test-manifest",
	"paths.save_dir":       "paths-save-dir",
	"paths.tokenizer_path": "paths-tokenizer-path",
	"paths.model_path":     "paths-model-path",
	"paths.transcript_dir": "paths-transcript-dir",
	"split.seed":           "split-seed",
	"split.route_seed":     "split-route-seed",
	"split.train_ratio":    "split-train-ratio",
	"split.dev_ratio":      "split-dev-ratio",
	"chunk.max_seq_len":    "chunk-max-seq-len",
	"chunk.stride":         "chunk-stride",
	"train.model_type":     "train-model-type",
	"train.model_name":     "train-model-name",
	"train.output_dir":     "train-output-dir",
	"train.batch_size":     "train-batch-size",
	"train.learning_rate":  "train-learning-rate",
	"train.epochs":         "train-epochs",
	"train.eval_steps":     "train-eval-steps",
	"train.seed":           "train-seed",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
