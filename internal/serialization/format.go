package serialization

import (
	"math"
	"time"
)

// Format constants.
const (
	MagicBytes      = "ECGN"
	FormatVersion   = 1  // v1: float64 tensors with SHA-256 checksum of the data section
	HeaderAlignment = 64 // Tensor data starts on a 64-byte boundary
	FixedHeaderSize = 4 + 4 + 4 + 8
	DTypeFloat64    = "float64"
	bytesPerElement = 8
)

// Flags for the .ecgn format.
const (
	FlagHasMetadata   uint32 = 1 << 0 // bit 0: custom metadata included
	FlagHasCheckpoint uint32 = 1 << 1 // bit 1: training checkpoint metadata included
)

// Header represents the JSON header in a .ecgn file.
type Header struct {
	FormatVersion  int               `json:"format_version"`       // Version of the .ecgn format
	ModelType      string            `json:"model_type"`           // e.g. "binary-mlp"
	CreatedAt      time.Time         `json:"created_at"`           // When the file was created
	Tensors        []TensorMeta      `json:"tensors"`              // Tensor metadata
	Checksum       string            `json:"checksum"`             // Hex SHA-256 of the data section
	Metadata       map[string]string `json:"metadata"`             // Custom metadata
	CheckpointMeta *CheckpointMeta   `json:"checkpoint,omitempty"` // Training state (optional)
}

// CheckpointMeta contains training state information for checkpoints.
type CheckpointMeta struct {
	RunID        string  `json:"run_id"`        // Run that produced the parameters
	Epoch        int     `json:"epoch"`         // Last completed epoch
	Loss         float64 `json:"loss"`          // Training loss of the last epoch
	LearningRate float64 `json:"learning_rate"` // SGD learning rate
	Optimizer    string  `json:"optimizer"`     // Optimizer type ("SGD")
}

// TensorMeta describes a tensor in the .ecgn file.
type TensorMeta struct {
	Name   string `json:"name"`   // Tensor name (e.g., "weights_input_hidden")
	DType  string `json:"dtype"`  // Always "float64"
	Shape  []int  `json:"shape"`  // Tensor shape
	Offset int64  `json:"offset"` // Offset in the data section (bytes from start of tensor data)
	Size   int64  `json:"size"`   // Size in bytes
}

// Tensor is a shaped float64 buffer as stored on disk.
type Tensor struct {
	Shape []int
	Data  []float64
}

// numElements returns the element count of shape. ok is false when a
// dimension is negative or the byte size would overflow an int.
func numElements(shape []int) (n int, ok bool) {
	n = 1
	for _, d := range shape {
		if d < 0 {
			return 0, false
		}
		if d > 0 && n > math.MaxInt/bytesPerElement/d {
			return 0, false
		}
		n *= d
	}
	return n, true
}
