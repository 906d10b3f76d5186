// Copyright 2025 The ECGNN Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package parallel configures how per-segment work is spread over goroutines.
//
// Results never depend on the configuration: per-segment values are reduced
// in segment order, so any worker count gives bit-identical output.
package parallel

import "github.com/LoftinTitus/ECGNN/internal/parallel"

// Config controls parallel execution behavior.
type Config = parallel.Config

// DefaultConfig sizes the pool to the machine's logical cores.
func DefaultConfig() Config { return parallel.DefaultConfig() }

// Sequential runs everything on the calling goroutine.
func Sequential() Config { return parallel.Sequential() }
