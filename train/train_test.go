// Copyright 2025 The ECGNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train_test

import (
	"testing"

	"github.com/LoftinTitus/ECGNN/nn"
	"github.com/LoftinTitus/ECGNN/optim"
	"github.com/LoftinTitus/ECGNN/parallel"
	"github.com/LoftinTitus/ECGNN/tensor"
	"github.com/LoftinTitus/ECGNN/train"
)

// TestPublicTrainingLoop drives the public API end to end on a tiny problem.
func TestPublicTrainingLoop(t *testing.T) {
	var segments []*tensor.Matrix
	var labels tensor.Vector
	for i := 0; i < 16; i++ {
		x := float64(i%8) - 3.5
		seg, err := tensor.FromSlice(1, 2, []float64{x, -x})
		if err != nil {
			t.Fatalf("FromSlice failed: %v", err)
		}
		segments = append(segments, seg)
		if x > 0 {
			labels = append(labels, 1)
		} else {
			labels = append(labels, 0)
		}
	}

	params, err := nn.NewParams(2, 4, nn.Xavier{Seed: 1})
	if err != nil {
		t.Fatalf("NewParams failed: %v", err)
	}

	opts := train.Options{Parallel: parallel.Sequential(), Optimizer: optim.NewSGD(optim.SGDConfig{LR: 0.3})}
	first, err := train.TrainEpochWith(segments, labels, params, 0, opts)
	if err != nil {
		t.Fatalf("TrainEpochWith failed: %v", err)
	}
	var last float64
	for epoch := 0; epoch < 50; epoch++ {
		if last, err = train.TrainEpochWith(segments, labels, params, 0, opts); err != nil {
			t.Fatalf("epoch %d: %v", epoch, err)
		}
	}
	if last >= first {
		t.Errorf("loss did not decrease: first=%v last=%v", first, last)
	}

	predictions, err := train.PredictBatch(segments, params)
	if err != nil {
		t.Fatalf("PredictBatch failed: %v", err)
	}
	acc, err := train.Accuracy(predictions, labels)
	if err != nil {
		t.Fatalf("Accuracy failed: %v", err)
	}
	if acc < 0.5 {
		t.Errorf("accuracy = %v, want >= 0.5", acc)
	}
}
