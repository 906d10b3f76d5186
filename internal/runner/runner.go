// Package runner drives a full training run: data preparation, the epoch
// loop, evaluation, checkpointing and run history.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/LoftinTitus/ECGNN/internal/config"
	"github.com/LoftinTitus/ECGNN/internal/dataset"
	"github.com/LoftinTitus/ECGNN/internal/metrics"
	"github.com/LoftinTitus/ECGNN/internal/nn"
	"github.com/LoftinTitus/ECGNN/internal/parallel"
	"github.com/LoftinTitus/ECGNN/internal/storage"
	"github.com/LoftinTitus/ECGNN/internal/train"
	"github.com/google/uuid"
)

const progressWidth = 30

// Result summarizes a finished (or canceled) run.
type Result struct {
	RunID        string
	Params       *nn.Params
	Epochs       int // completed epochs
	FinalLoss    float64
	TestLoss     float64
	TestAccuracy float64
	TrainSize    int
	TestSize     int
	Checkpoint   string
}

// Run trains a classifier as described by cfg and records it in store.
//
// Cancellation is checked between epochs. A canceled run is still recorded,
// with status canceled, and Run returns the partial Result together with
// ctx.Err().
func Run(ctx context.Context, cfg *config.Config, store storage.Store) (Result, error) {
	if store == nil {
		return Result{}, errors.New("runner: store is nil")
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid config: %w", err)
	}

	data, err := prepare(cfg)
	if err != nil {
		return Result{}, err
	}

	trainSet, testSet, err := dataset.Split(data.segments, data.labels, cfg.TrainFraction)
	if err != nil {
		return Result{}, err
	}
	if trainSet.Len() == 0 {
		return Result{}, fmt.Errorf("%w: training split is empty (%d segments)", nn.ErrEmptyBatch, len(data.segments))
	}
	log.Printf("split: train=%d test=%d", trainSet.Len(), testSet.Len())

	params, err := nn.NewParams(data.features, cfg.HiddenUnits, initializer(cfg))
	if err != nil {
		return Result{}, err
	}
	log.Printf("model: features=%d hidden=%d params=%d init=%s", data.features, cfg.HiddenUnits, params.NumParams(), cfg.Init)

	run := storage.Run{
		VersionedRecord: storage.CurrentVersion(),
		ID:              uuid.NewString(),
		Status:          storage.StatusRunning,
		StartedAt:       time.Now().UTC(),
		Features:        data.features,
		Hidden:          cfg.HiddenUnits,
		Epochs:          cfg.Epochs,
		LearningRate:    cfg.LearningRate,
		Init:            cfg.Init,
		DataSource:      data.source,
		TrainSize:       trainSet.Len(),
		TestSize:        testSet.Len(),
	}
	if err := store.SaveRun(ctx, run); err != nil {
		return Result{}, fmt.Errorf("save run: %w", err)
	}

	result := Result{RunID: run.ID, Params: params, TrainSize: trainSet.Len(), TestSize: testSet.Len()}
	opts := train.Options{Parallel: parallel.DefaultConfig().WithWorkers(cfg.Workers)}

	loopErr := trainLoop(ctx, cfg, store, run.ID, trainSet, params, opts, &result)
	if loopErr == nil {
		loopErr = evaluateTest(testSet, params, opts.Parallel, &result)
	}
	if loopErr == nil && cfg.CheckpointPath != "" {
		loopErr = saveCheckpoint(cfg, params, &result)
	}

	run.FinishedAt = time.Now().UTC()
	run.FinalLoss = result.FinalLoss
	run.TestLoss = result.TestLoss
	run.TestAccuracy = result.TestAccuracy
	run.CheckpointPath = result.Checkpoint
	switch {
	case loopErr == nil:
		run.Status = storage.StatusCompleted
	case errors.Is(loopErr, context.Canceled), errors.Is(loopErr, context.DeadlineExceeded):
		run.Status = storage.StatusCanceled
		run.Error = loopErr.Error()
	default:
		run.Status = storage.StatusFailed
		run.Error = loopErr.Error()
	}

	// The caller's context may already be done; the final record must still land.
	if err := store.SaveRun(context.WithoutCancel(ctx), run); err != nil {
		return result, errors.Join(loopErr, fmt.Errorf("save run: %w", err))
	}
	return result, loopErr
}

func initializer(cfg *config.Config) nn.Initializer {
	if cfg.Init == config.InitXavier {
		return nn.Xavier{Seed: cfg.Seed}
	}
	return nn.DefaultInit
}

func trainLoop(ctx context.Context, cfg *config.Config, store storage.Store, runID string, set dataset.Set, params *nn.Params, opts train.Options, result *Result) error {
	var window metrics.Window
	start := time.Now()

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			log.Printf("training canceled after %d epochs", result.Epochs)
			return err
		}

		epochStart := time.Now()
		loss, err := train.TrainEpochWith(set.Segments, set.Labels, params, cfg.LearningRate, opts)
		if err != nil {
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}
		elapsed := time.Since(epochStart)
		window.Record(set.Len(), elapsed, loss)
		result.Epochs = epoch
		result.FinalLoss = loss

		record := storage.EpochRecord{
			VersionedRecord: storage.CurrentVersion(),
			RunID:           runID,
			Epoch:           epoch,
			Loss:            loss,
			Duration:        elapsed,
		}

		log.Printf("epoch=%d/%d %s loss=%.4f", epoch, cfg.Epochs, metrics.ProgressBar(epoch, cfg.Epochs, progressWidth), loss)

		if (epoch-1)%cfg.EvalEvery == 0 || epoch == cfg.Epochs {
			predictions, err := train.PredictBatchWith(set.Segments, params, opts.Parallel)
			if err != nil {
				return fmt.Errorf("epoch %d: evaluate: %w", epoch, err)
			}
			acc, err := train.Accuracy(predictions, set.Labels)
			if err != nil {
				return fmt.Errorf("epoch %d: evaluate: %w", epoch, err)
			}
			record.TrainAccuracy = &acc

			snap := window.Snapshot()
			log.Printf("epoch=%d train_acc=%.2f%% samples_per_sec=%.1f epoch_ms=%.2f eta=%s",
				epoch,
				acc*100,
				snap.SamplesPerSec,
				float64(snap.AvgEpoch.Microseconds())/1000,
				snap.Remaining(cfg.Epochs-epoch).Round(time.Millisecond),
			)
		}

		if err := store.AppendEpoch(ctx, record); err != nil {
			return fmt.Errorf("epoch %d: save: %w", epoch, err)
		}
	}

	log.Printf("training completed in %s", time.Since(start).Round(time.Millisecond))
	return nil
}

func evaluateTest(set dataset.Set, params *nn.Params, cfg parallel.Config, result *Result) error {
	if set.Len() == 0 {
		log.Printf("test: split is empty, skipping evaluation")
		return nil
	}
	predictions, err := train.PredictBatchWith(set.Segments, params, cfg)
	if err != nil {
		return fmt.Errorf("test: %w", err)
	}
	acc, err := train.Accuracy(predictions, set.Labels)
	if err != nil {
		return fmt.Errorf("test: %w", err)
	}
	loss, err := nn.BinaryCrossEntropy(predictions, set.Labels)
	if err != nil {
		return fmt.Errorf("test: %w", err)
	}
	result.TestAccuracy = acc
	result.TestLoss = loss
	log.Printf("test: loss=%.4f accuracy=%.2f%%", loss, acc*100)
	return nil
}

func saveCheckpoint(cfg *config.Config, params *nn.Params, result *Result) error {
	ckpt := &nn.Checkpoint{
		Params:       params,
		RunID:        result.RunID,
		Epoch:        result.Epochs,
		Loss:         result.FinalLoss,
		LearningRate: cfg.LearningRate,
		CreatedAt:    time.Now().UTC(),
	}
	if err := ckpt.Save(cfg.CheckpointPath); err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	result.Checkpoint = cfg.CheckpointPath
	log.Printf("checkpoint: wrote %s", cfg.CheckpointPath)
	return nil
}
