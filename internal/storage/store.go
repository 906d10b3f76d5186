// Package storage persists training run history.
package storage

import (
	"context"
	"time"
)

// VersionedRecord tags every persisted payload with the layout it was written in.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Run status values.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
	StatusFailed    = "failed"
)

// Run summarizes one training run.
type Run struct {
	VersionedRecord
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at,omitempty"`
	Features       int       `json:"features"`
	Hidden         int       `json:"hidden"`
	Epochs         int       `json:"epochs"`
	LearningRate   float64   `json:"learning_rate"`
	Init           string    `json:"init"`
	DataSource     string    `json:"data_source"`
	TrainSize      int       `json:"train_size"`
	TestSize       int       `json:"test_size"`
	FinalLoss      float64   `json:"final_loss"`
	TestLoss       float64   `json:"test_loss"`
	TestAccuracy   float64   `json:"test_accuracy"`
	CheckpointPath string    `json:"checkpoint_path,omitempty"`
	Error          string    `json:"error,omitempty"`
}

// EpochRecord is the outcome of one training epoch.
type EpochRecord struct {
	VersionedRecord
	RunID    string        `json:"run_id"`
	Epoch    int           `json:"epoch"`
	Loss     float64       `json:"loss"`
	Duration time.Duration `json:"duration"`
	// TrainAccuracy is only measured on evaluation epochs.
	TrainAccuracy *float64 `json:"train_accuracy,omitempty"`
}

// Store defines persistence operations for run history.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	// ListRuns returns every run, oldest first.
	ListRuns(ctx context.Context) ([]Run, error)
	AppendEpoch(ctx context.Context, record EpochRecord) error
	// GetEpochs returns a run's epochs in epoch order.
	GetEpochs(ctx context.Context, runID string) ([]EpochRecord, bool, error)
}
