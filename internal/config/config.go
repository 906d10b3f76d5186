// Package config loads and validates the knobs for a training run.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Initializer names accepted by the init field.
const (
	InitConstant = "constant"
	InitXavier   = "xavier"
)

// Labelling schemes accepted by the labels field.
const (
	LabelsHeuristic = "heuristic"
	LabelsPeriodic  = "periodic"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	DataDir           string  `yaml:"data_dir"`
	Columns           []int   `yaml:"columns"`
	SegmentLength     int     `yaml:"segment_length"`
	HiddenUnits       int     `yaml:"hidden_units"`
	Epochs            int     `yaml:"epochs"`
	LearningRate      float64 `yaml:"learning_rate"`
	TrainFraction     float64 `yaml:"train_fraction"`
	EvalEvery         int     `yaml:"eval_every"`
	Init              string  `yaml:"init"`
	Labels            string  `yaml:"labels"`
	Seed              int64   `yaml:"seed"`
	Workers           int     `yaml:"workers"`
	SyntheticFallback bool    `yaml:"synthetic_fallback"`
	CheckpointPath    string  `yaml:"checkpoint_path"`
	Store             string  `yaml:"store"`
	StorePath         string  `yaml:"store_path"`
}

// Default returns the stock configuration: 250-sample segments, 64 hidden
// units, 50 epochs at learning rate 0.01 and an 80/20 split.
func Default() *Config {
	return &Config{
		Columns:           []int{1, 2},
		SegmentLength:     250,
		HiddenUnits:       64,
		Epochs:            50,
		LearningRate:      0.01,
		TrainFraction:     0.8,
		EvalEvery:         2,
		Init:              InitConstant,
		Labels:            LabelsHeuristic,
		SyntheticFallback: true,
		Store:             "memory",
	}
}

// Overrides captures CLI supplied values. Zero values leave the config alone.
type Overrides struct {
	DataDir        string
	SegmentLength  int
	HiddenUnits    int
	Epochs         int
	LearningRate   float64
	TrainFraction  float64
	EvalEvery      int
	Init           string
	Labels         string
	Seed           int64
	Workers        int
	CheckpointPath string
	Store          string
	StorePath      string
	NoSynthetic    bool
}

// Load reads a YAML file over Default and validates the result. Keys absent
// from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML over Default without validating.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.DataDir != "" {
		c.DataDir = o.DataDir
	}
	if o.SegmentLength > 0 {
		c.SegmentLength = o.SegmentLength
	}
	if o.HiddenUnits > 0 {
		c.HiddenUnits = o.HiddenUnits
	}
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.TrainFraction > 0 {
		c.TrainFraction = o.TrainFraction
	}
	if o.EvalEvery > 0 {
		c.EvalEvery = o.EvalEvery
	}
	if o.Init != "" {
		c.Init = o.Init
	}
	if o.Labels != "" {
		c.Labels = o.Labels
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Workers > 0 {
		c.Workers = o.Workers
	}
	if o.CheckpointPath != "" {
		c.CheckpointPath = o.CheckpointPath
	}
	if o.Store != "" {
		c.Store = o.Store
	}
	if o.StorePath != "" {
		c.StorePath = o.StorePath
	}
	if o.NoSynthetic {
		c.SyntheticFallback = false
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.DataDir == "" && !c.SyntheticFallback {
		return errors.New("data_dir must be set when synthetic_fallback is off")
	}
	if len(c.Columns) == 0 {
		return errors.New("columns must name at least one column")
	}
	for _, col := range c.Columns {
		if col < 1 {
			return fmt.Errorf("columns must be >= 1 (got %d); column 0 always passes through", col)
		}
	}
	if c.SegmentLength <= 0 {
		return fmt.Errorf("segment_length must be > 0 (got %d)", c.SegmentLength)
	}
	if c.HiddenUnits <= 0 {
		return fmt.Errorf("hidden_units must be > 0 (got %d)", c.HiddenUnits)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if c.LearningRate < 0 {
		return fmt.Errorf("learning_rate must be >= 0 (got %v)", c.LearningRate)
	}
	if c.TrainFraction <= 0 || c.TrainFraction >= 1 {
		return fmt.Errorf("train_fraction must be in (0, 1) (got %v)", c.TrainFraction)
	}
	if c.Init != InitConstant && c.Init != InitXavier {
		return fmt.Errorf("init must be %q or %q (got %q)", InitConstant, InitXavier, c.Init)
	}
	if c.Labels != LabelsHeuristic && c.Labels != LabelsPeriodic {
		return fmt.Errorf("labels must be %q or %q (got %q)", LabelsHeuristic, LabelsPeriodic, c.Labels)
	}
	if c.EvalEvery <= 0 {
		return fmt.Errorf("eval_every must be > 0 (got %d)", c.EvalEvery)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", c.Workers)
	}
	switch c.Store {
	case "", "memory":
	case "sqlite":
		if c.StorePath == "" {
			return errors.New("store_path is required for the sqlite store")
		}
	default:
		return fmt.Errorf("unsupported store %q", c.Store)
	}
	return nil
}
