// Copyright 2025 The ECGNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs full-batch training epochs and scores predictions.
//
// # Basic Usage
//
//	params, _ := nn.NewParams(500, 64, nn.DefaultInit)
//	for epoch := 1; epoch <= 50; epoch++ {
//	    loss, err := train.TrainEpoch(segments, labels, params, 0.01)
//	    if err != nil {
//	        return err
//	    }
//	    log.Printf("epoch=%d loss=%.4f", epoch, loss)
//	}
//
//	predictions, _ := train.PredictBatch(testSegments, params)
//	acc, _ := train.Accuracy(predictions, testLabels)
package train

import (
	"github.com/LoftinTitus/ECGNN/internal/nn"
	"github.com/LoftinTitus/ECGNN/internal/tensor"
	"github.com/LoftinTitus/ECGNN/internal/train"
)

// Options controls how an epoch is executed.
type Options = train.Options

// Threshold separates the two classes.
const Threshold = train.Threshold

// DefaultOptions fans out over every logical core.
func DefaultOptions() Options { return train.DefaultOptions() }

// TrainEpoch performs one full-batch SGD step and returns the pre-update loss.
func TrainEpoch(segments []*tensor.Matrix, labels tensor.Vector, p *nn.Params, lr float64) (float64, error) {
	return train.TrainEpoch(segments, labels, p, lr)
}

// TrainEpochWith is TrainEpoch with explicit options.
func TrainEpochWith(segments []*tensor.Matrix, labels tensor.Vector, p *nn.Params, lr float64, opts Options) (float64, error) {
	return train.TrainEpochWith(segments, labels, p, lr, opts)
}

// Predict returns the probability that segment is class 1.
func Predict(segment *tensor.Matrix, p *nn.Params) (float64, error) { return train.Predict(segment, p) }

// PredictBatch predicts every segment, preserving order.
func PredictBatch(segments []*tensor.Matrix, p *nn.Params) (tensor.Vector, error) {
	return train.PredictBatch(segments, p)
}

// Accuracy returns the fraction of thresholded predictions matching labels.
func Accuracy(predictions, labels tensor.Vector) (float64, error) {
	return train.Accuracy(predictions, labels)
}
