// Package train runs one full-batch gradient step of the binary classifier
// and scores it afterwards.
package train

import (
	"fmt"

	"github.com/LoftinTitus/ECGNN/internal/nn"
	"github.com/LoftinTitus/ECGNN/internal/optim"
	"github.com/LoftinTitus/ECGNN/internal/parallel"
	"github.com/LoftinTitus/ECGNN/internal/tensor"
)

// Options controls how an epoch is executed.
type Options struct {
	// Parallel configures the per-segment fan-out. Results do not depend on it.
	Parallel parallel.Config

	// Optimizer applies the averaged gradients. Nil means plain SGD at the
	// learning rate passed to TrainEpochWith.
	Optimizer optim.Optimizer
}

// DefaultOptions fans out over every logical core.
func DefaultOptions() Options {
	return Options{Parallel: parallel.DefaultConfig()}
}

// TrainEpoch performs one full-batch training step and returns the loss
// measured before the update.
//
// Every segment is evaluated, the mean binary cross-entropy is computed,
// gradients are averaged over the whole set and one SGD step is applied.
// p is only modified after all gradients are complete; on error it is left
// as it was.
func TrainEpoch(segments []*tensor.Matrix, labels tensor.Vector, p *nn.Params, lr float64) (float64, error) {
	return TrainEpochWith(segments, labels, p, lr, DefaultOptions())
}

// TrainEpochWith is TrainEpoch with an explicit execution configuration.
func TrainEpochWith(segments []*tensor.Matrix, labels tensor.Vector, p *nn.Params, lr float64, opts Options) (float64, error) {
	outputs, err := PredictBatchWith(segments, p, opts.Parallel)
	if err != nil {
		return 0, fmt.Errorf("train: %w", err)
	}
	loss, err := nn.BinaryCrossEntropy(outputs, labels)
	if err != nil {
		return 0, fmt.Errorf("train: loss: %w", err)
	}

	grads, err := nn.Backprop(segments, p, labels, opts.Parallel)
	if err != nil {
		return 0, fmt.Errorf("train: %w", err)
	}

	optimizer := opts.Optimizer
	if optimizer == nil {
		optimizer = optim.NewSGD(optim.SGDConfig{LR: lr})
	}
	if err := optimizer.Step(p, grads); err != nil {
		return 0, fmt.Errorf("train: %w", err)
	}
	return loss, nil
}
