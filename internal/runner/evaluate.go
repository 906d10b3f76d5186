package runner

import (
	"context"
	"fmt"
	"log"

	"github.com/LoftinTitus/ECGNN/internal/config"
	"github.com/LoftinTitus/ECGNN/internal/nn"
	"github.com/LoftinTitus/ECGNN/internal/parallel"
	"github.com/LoftinTitus/ECGNN/internal/tensor"
	"github.com/LoftinTitus/ECGNN/internal/train"
)

// Evaluation scores a checkpoint against a dataset.
type Evaluation struct {
	RunID    string
	Epoch    int
	Examples int
	Loss     float64
	Accuracy float64
}

// Evaluate loads the checkpoint at path and scores it on every segment cfg's
// data pipeline produces.
func Evaluate(ctx context.Context, cfg *config.Config, path string) (Evaluation, error) {
	if err := cfg.Validate(); err != nil {
		return Evaluation{}, fmt.Errorf("invalid config: %w", err)
	}
	ckpt, err := nn.LoadCheckpoint(path)
	if err != nil {
		return Evaluation{}, err
	}

	data, err := prepare(cfg)
	if err != nil {
		return Evaluation{}, err
	}
	if data.features != ckpt.Params.Features() {
		return Evaluation{}, fmt.Errorf("checkpoint expects %d features, data has %d: %w",
			ckpt.Params.Features(), data.features, tensor.ErrShapeMismatch)
	}
	if err := ctx.Err(); err != nil {
		return Evaluation{}, err
	}

	predictions, err := train.PredictBatchWith(data.segments, ckpt.Params, parallel.DefaultConfig().WithWorkers(cfg.Workers))
	if err != nil {
		return Evaluation{}, err
	}
	acc, err := train.Accuracy(predictions, data.labels)
	if err != nil {
		return Evaluation{}, err
	}
	loss, err := nn.BinaryCrossEntropy(predictions, data.labels)
	if err != nil {
		return Evaluation{}, err
	}

	log.Printf("eval: run=%s examples=%d loss=%.4f accuracy=%.2f%%", ckpt.RunID, len(predictions), loss, acc*100)
	return Evaluation{
		RunID:    ckpt.RunID,
		Epoch:    ckpt.Epoch,
		Examples: len(predictions),
		Loss:     loss,
		Accuracy: acc,
	}, nil
}
