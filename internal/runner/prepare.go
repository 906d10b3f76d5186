package runner

import (
	"errors"
	"fmt"
	"log"

	"github.com/LoftinTitus/ECGNN/internal/config"
	"github.com/LoftinTitus/ECGNN/internal/dataset"
	"github.com/LoftinTitus/ECGNN/internal/tensor"
	"github.com/dustin/go-humanize"
)

// Synthetic fallback dimensions.
const (
	syntheticSamples = 1000
	syntheticWidth   = 200
)

// ErrNoSegments is returned when the data is shorter than one segment.
var ErrNoSegments = errors.New("no complete segments")

// Data source names recorded with each run.
const (
	SourceSynthetic = "synthetic"
)

type prepared struct {
	source   string
	segments []*tensor.Matrix
	labels   tensor.Vector
	features int
}

// loadRows reads cfg.DataDir, falling back to the synthetic signal when the
// directory is unset, unreadable or empty and the fallback is allowed.
func loadRows(cfg *config.Config) ([][]float64, string, error) {
	if cfg.DataDir != "" {
		rows, err := dataset.LoadDir(cfg.DataDir)
		switch {
		case err == nil && len(rows) > 0:
			log.Printf("data: loaded %s rows from %s", humanize.Comma(int64(len(rows))), cfg.DataDir)
			return rows, cfg.DataDir, nil
		case !cfg.SyntheticFallback:
			if err == nil {
				err = fmt.Errorf("no data rows under %s", cfg.DataDir)
			}
			return nil, "", err
		case err != nil:
			log.Printf("data: cannot load %s: %v; falling back to synthetic data", cfg.DataDir, err)
		default:
			log.Printf("data: %s has no rows; falling back to synthetic data", cfg.DataDir)
		}
	} else if !cfg.SyntheticFallback {
		return nil, "", errors.New("no data_dir configured")
	}
	return dataset.Synthetic(syntheticSamples, syntheticWidth), SourceSynthetic, nil
}

// prepare runs the whole data pipeline: load, standardize, segment, flatten, label.
func prepare(cfg *config.Config) (*prepared, error) {
	rows, source, err := loadRows(cfg)
	if err != nil {
		return nil, fmt.Errorf("load data: %w", err)
	}
	log.Printf("data: samples=%s features_per_sample=%d size=%s",
		humanize.Comma(int64(len(rows))), len(rows[0]), humanize.IBytes(uint64(len(rows)*len(rows[0])*8)))

	scaled, err := dataset.Standardize(rows, cfg.Columns)
	if err != nil {
		return nil, err
	}

	windows, err := dataset.Segment(scaled, cfg.SegmentLength)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, fmt.Errorf("%w: %d rows, segment_length %d", ErrNoSegments, len(scaled), cfg.SegmentLength)
	}

	flat, err := dataset.FlattenAll(windows)
	if err != nil {
		return nil, err
	}
	segments, err := dataset.Matrices(flat)
	if err != nil {
		return nil, err
	}

	var labels tensor.Vector
	switch cfg.Labels {
	case config.LabelsPeriodic:
		labels = dataset.SyntheticLabels(len(flat))
	default:
		labels = dataset.HeuristicLabels(flat)
	}

	log.Printf("data: segments=%d segment_length=%d features=%d", len(segments), cfg.SegmentLength, len(flat[0]))
	return &prepared{
		source:   source,
		segments: segments,
		labels:   labels,
		features: len(flat[0]),
	}, nil
}
