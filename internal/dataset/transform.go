package dataset

import (
	"fmt"
	"math"

	"github.com/LoftinTitus/ECGNN/internal/tensor"
	"gonum.org/v1/gonum/stat"
)

// DefaultColumns are the signal columns standardized by default. Column 0 is
// the sample index and passes through unchanged.
var DefaultColumns = []int{1, 2}

// Standardize rescales the given columns to zero mean and unit population
// variance. Each output row is [row[0], z(row[c]) for c in columns]. A column
// with zero variance maps to 0.
//
// Every row must have at least max(columns)+1 values.
func Standardize(rows [][]float64, columns []int) ([][]float64, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	width := 1
	for _, c := range columns {
		if c < 0 {
			return nil, fmt.Errorf("standardize: negative column %d", c)
		}
		width = max(width, c+1)
	}
	for i, row := range rows {
		if len(row) < width {
			return nil, fmt.Errorf("standardize: row %d has %d values, need %d", i, len(row), width)
		}
	}

	means := make([]float64, len(columns))
	stds := make([]float64, len(columns))
	col := make([]float64, len(rows))
	for k, c := range columns {
		for i, row := range rows {
			col[i] = row[c]
		}
		mean, variance := stat.PopMeanVariance(col, nil)
		means[k] = mean
		stds[k] = math.Sqrt(variance)
	}

	out := make([][]float64, len(rows))
	for i, row := range rows {
		scaled := make([]float64, 1+len(columns))
		scaled[0] = row[0]
		for k, c := range columns {
			if stds[k] != 0 {
				scaled[k+1] = (row[c] - means[k]) / stds[k]
			}
		}
		out[i] = scaled
	}
	return out, nil
}

// Segment cuts rows into consecutive non-overlapping windows of length rows.
// A trailing partial window is dropped.
func Segment(rows [][]float64, length int) ([][][]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("segment: length must be > 0 (got %d)", length)
	}
	windows := make([][][]float64, 0, len(rows)/length)
	for start := 0; start+length <= len(rows); start += length {
		windows = append(windows, rows[start:start+length:start+length])
	}
	return windows, nil
}

// Flatten concatenates a window's rows into one feature vector.
func Flatten(window [][]float64) []float64 {
	n := 0
	for _, row := range window {
		n += len(row)
	}
	out := make([]float64, 0, n)
	for _, row := range window {
		out = append(out, row...)
	}
	return out
}

// FlattenAll flattens every window and checks they share one width.
func FlattenAll(windows [][][]float64) ([][]float64, error) {
	out := make([][]float64, len(windows))
	for i, w := range windows {
		out[i] = Flatten(w)
		if i > 0 && len(out[i]) != len(out[0]) {
			return nil, fmt.Errorf("flatten: window %d has %d features, window 0 has %d: %w",
				i, len(out[i]), len(out[0]), tensor.ErrShapeMismatch)
		}
	}
	return out, nil
}

// Matrices wraps flattened windows as 1×F segments.
func Matrices(flat [][]float64) ([]*tensor.Matrix, error) {
	out := make([]*tensor.Matrix, len(flat))
	for i, f := range flat {
		m, err := tensor.FromSlice(1, len(f), f)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		out[i] = m
	}
	return out, nil
}

// Set is a list of segments with one label each.
type Set struct {
	Segments []*tensor.Matrix
	Labels   tensor.Vector
}

// Len returns the number of examples.
func (s Set) Len() int { return len(s.Segments) }

// Split keeps order and puts the first floor(n·fraction) examples in train and
// the rest in test.
func Split(segments []*tensor.Matrix, labels tensor.Vector, fraction float64) (train, test Set, err error) {
	if len(segments) != len(labels) {
		return Set{}, Set{}, &tensor.ShapeError{Op: "Split", Left: tensor.Shape{len(segments)}, Right: labels.Shape(), Rule: "len(segments) == len(labels)"}
	}
	if fraction < 0 || fraction > 1 || math.IsNaN(fraction) {
		return Set{}, Set{}, fmt.Errorf("split: fraction must be in [0, 1] (got %v)", fraction)
	}
	at := int(float64(len(segments)) * fraction)
	train = Set{Segments: segments[:at], Labels: labels[:at]}
	test = Set{Segments: segments[at:], Labels: labels[at:]}
	return train, test, nil
}
