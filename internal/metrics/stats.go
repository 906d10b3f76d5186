// Package metrics tracks epoch timing and renders training progress.
package metrics

import (
	"strings"
	"time"
)

// Window accumulates timing stats across multiple epochs.
type Window struct {
	samples  int
	elapsed  time.Duration
	epochs   int
	lastLoss float64
}

// Record adds a new measurement to the window.
func (w *Window) Record(samples int, elapsed time.Duration, loss float64) {
	w.samples += samples
	w.elapsed += elapsed
	w.epochs++
	w.lastLoss = loss
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{Epochs: w.epochs}
	if w.elapsed > 0 {
		snap.SamplesPerSec = float64(w.samples) / w.elapsed.Seconds()
	}
	if w.epochs > 0 {
		snap.AvgEpoch = w.elapsed / time.Duration(w.epochs)
	}
	snap.LastLoss = w.lastLoss

	w.samples = 0
	w.elapsed = 0
	w.epochs = 0
	w.lastLoss = 0
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	Epochs        int
	SamplesPerSec float64
	AvgEpoch      time.Duration
	LastLoss      float64
}

// Remaining estimates the time left for the given number of epochs at the
// snapshot's average pace.
func (s Snapshot) Remaining(epochsLeft int) time.Duration {
	if epochsLeft <= 0 {
		return 0
	}
	return s.AvgEpoch * time.Duration(epochsLeft)
}

// ProgressBar renders a fixed-width bar such as "[=====>    ]" for
// current out of total.
func ProgressBar(current, total, width int) string {
	if width <= 0 {
		return "[]"
	}
	filled := 0
	if total > 0 {
		filled = min(max(current*width/total, 0), width)
	}

	var b strings.Builder
	b.Grow(width + 2)
	b.WriteByte('[')
	b.WriteString(strings.Repeat("=", filled))
	if filled < width {
		b.WriteByte('>')
		b.WriteString(strings.Repeat(" ", width-filled-1))
	}
	b.WriteByte(']')
	return b.String()
}
