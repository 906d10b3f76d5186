package dataset

import (
	"math"

	"github.com/LoftinTitus/ECGNN/internal/tensor"
	"gonum.org/v1/gonum/stat"
)

// Label thresholds on a segment's population standard deviation. Segments
// outside [LowStdDev, HighStdDev] are labelled abnormal.
const (
	HighStdDev = 1.5
	LowStdDev  = 0.3
)

// Synthetic generates a deterministic ECG-like signal: a slow sine, a drifting
// low-amplitude sine and a unit spike every 50 samples.
func Synthetic(samples, width int) [][]float64 {
	rows := make([][]float64, samples)
	for i := range rows {
		row := make([]float64, width)
		for j := range row {
			base := math.Sin(float64(j)*0.1) * 0.5
			noise := math.Sin(float64(i)*0.01+float64(j)*0.02) * 0.1
			var beat float64
			if j%50 == 0 {
				beat = 1
			}
			row[j] = base + noise + beat
		}
		rows[i] = row
	}
	return rows
}

// HeuristicLabels marks a flattened segment 1 when its population standard
// deviation is above HighStdDev or below LowStdDev, and 0 otherwise.
func HeuristicLabels(flat [][]float64) tensor.Vector {
	labels := make(tensor.Vector, len(flat))
	for i, f := range flat {
		sd := math.Sqrt(popVariance(f))
		if sd > HighStdDev || sd < LowStdDev {
			labels[i] = 1
		}
	}
	return labels
}

func popVariance(x []float64) float64 {
	_, variance := stat.PopMeanVariance(x, nil)
	return variance
}

// SyntheticLabels marks every third example, starting with the first, as 1.
func SyntheticLabels(n int) tensor.Vector {
	labels := make(tensor.Vector, n)
	for i := 0; i < n; i += 3 {
		labels[i] = 1
	}
	return labels
}
