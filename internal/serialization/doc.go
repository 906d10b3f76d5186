// Package serialization provides the .ecgn checkpoint format for classifier parameters.
//
// The .ecgn format is a small binary container for float64 tensors:
//
//	Format Structure:
//	  [4 bytes: Magic "ECGN"]
//	  [4 bytes: Version (uint32 LE)]
//	  [4 bytes: Flags (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON metadata, including SHA-256 of the data section]
//	  [Padding to a 64-byte boundary]
//	  [Tensor data: float64 little-endian, tensors in name order]
//
// Readers reject files whose magic, version, tensor layout or checksum do not
// validate, so a truncated or edited checkpoint is never loaded silently.
//
// Example usage:
//
//	// Save
//	w, err := serialization.NewWriter("model.ecgn")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = w.WriteStateDict(state, serialization.Header{ModelType: "binary-mlp"})
//	w.Close()
//
//	// Load
//	state, header, err := serialization.ReadFile("model.ecgn")
package serialization
