package nn

import (
	"fmt"
	"strconv"
	"time"

	"github.com/LoftinTitus/ECGNN/internal/serialization"
)

// ModelType identifies this network in checkpoint headers.
const ModelType = "binary-mlp"

// Checkpoint is a parameter snapshot plus the training state that produced it.
//
// Example:
//
//	ckpt := &nn.Checkpoint{Params: params, RunID: runID, Epoch: 50, Loss: loss, LearningRate: 0.01}
//	if err := ckpt.Save("model.ecgn"); err != nil {
//	    return err
//	}
//
//	restored, err := nn.LoadCheckpoint("model.ecgn")
type Checkpoint struct {
	Params       *Params
	RunID        string
	Epoch        int
	Loss         float64
	LearningRate float64
	CreatedAt    time.Time
}

// Save writes the checkpoint to path in .ecgn format.
func (c *Checkpoint) Save(path string) (err error) {
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}

	writer, err := serialization.NewWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}
	defer func() {
		if closeErr := writer.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	state := make(map[string]serialization.Tensor, 4)
	for name, t := range c.Params.StateDict() {
		state[name] = serialization.Tensor{Shape: t.Shape, Data: t.Data}
	}

	header := serialization.Header{
		ModelType: ModelType,
		CreatedAt: c.CreatedAt,
		Metadata: map[string]string{
			"features": strconv.Itoa(c.Params.Features()),
			"hidden":   strconv.Itoa(c.Params.Hidden()),
		},
		CheckpointMeta: &serialization.CheckpointMeta{
			RunID:        c.RunID,
			Epoch:        c.Epoch,
			Loss:         c.Loss,
			LearningRate: c.LearningRate,
			Optimizer:    "SGD",
		},
	}

	if err := writer.WriteStateDict(state, header); err != nil {
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint reads a checkpoint written by Checkpoint.Save.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	state, header, err := serialization.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read checkpoint: %w", err)
	}
	if header.ModelType != ModelType {
		return nil, fmt.Errorf("checkpoint: model type %q, want %q", header.ModelType, ModelType)
	}

	dict := make(map[string]Tensor, len(state))
	for name, t := range state {
		dict[name] = Tensor{Shape: t.Shape, Data: t.Data}
	}
	params, err := ParamsFromStateDict(dict)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: %w", err)
	}

	ckpt := &Checkpoint{Params: params, CreatedAt: header.CreatedAt}
	if meta := header.CheckpointMeta; meta != nil {
		ckpt.RunID = meta.RunID
		ckpt.Epoch = meta.Epoch
		ckpt.Loss = meta.Loss
		ckpt.LearningRate = meta.LearningRate
	}
	return ckpt, nil
}
