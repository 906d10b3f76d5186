package nn

import "errors"

// ErrEmptyBatch is returned when a loss, gradient or training computation is
// asked to average over zero examples.
var ErrEmptyBatch = errors.New("empty batch")
