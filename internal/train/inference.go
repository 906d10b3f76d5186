package train

import (
	"fmt"

	"github.com/LoftinTitus/ECGNN/internal/nn"
	"github.com/LoftinTitus/ECGNN/internal/parallel"
	"github.com/LoftinTitus/ECGNN/internal/tensor"
)

// Threshold separates the two classes: predictions strictly above it are 1.
const Threshold = 0.5

// Predict returns the model's probability that segment is class 1.
func Predict(segment *tensor.Matrix, p *nn.Params) (float64, error) {
	output, _, err := nn.Forward(segment, p)
	return output, err
}

// PredictBatch predicts every segment, preserving order.
func PredictBatch(segments []*tensor.Matrix, p *nn.Params) (tensor.Vector, error) {
	return PredictBatchWith(segments, p, parallel.DefaultConfig())
}

// PredictBatchWith is PredictBatch with an explicit parallel configuration.
func PredictBatchWith(segments []*tensor.Matrix, p *nn.Params, cfg parallel.Config) (tensor.Vector, error) {
	outputs, err := parallel.Map(len(segments), func(i int) (float64, error) {
		output, err := Predict(segments[i], p)
		if err != nil {
			return 0, fmt.Errorf("predict: segment %d: %w", i, err)
		}
		return output, nil
	}, cfg)
	if err != nil {
		return nil, err
	}
	return tensor.Vector(outputs), nil
}

// Classify maps a probability to a hard label.
func Classify(prediction float64) float64 {
	if prediction > Threshold {
		return 1
	}
	return 0
}

// Accuracy returns the fraction of predictions whose hard label equals the
// corresponding label.
//
// Returns nn.ErrEmptyBatch for empty input and a *tensor.ShapeError when the
// lengths differ.
func Accuracy(predictions, labels tensor.Vector) (float64, error) {
	if len(predictions) != len(labels) {
		return 0, &tensor.ShapeError{Op: "Accuracy", Left: predictions.Shape(), Right: labels.Shape(), Rule: "len(predictions) == len(labels)"}
	}
	if len(predictions) == 0 {
		return 0, nn.ErrEmptyBatch
	}

	correct := 0
	for i, prediction := range predictions {
		if Classify(prediction) == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(predictions)), nil
}
