// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/adamw/internal/backend/cpu"
	"github.com/born-ml/adamw/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend provides pure Go float32 kernels and gonum-accelerated
// float64 kernels for all element-wise tensor operations.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/adamw/backend/cpu"
//	    "github.com/born-ml/adamw/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    _ = x
//	}
func New() *Backend {
	return internalcpu.New()
}
