// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the type-safe tensor operations the adamw optimizer
// library is built on.
//
// # Overview
//
// This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Dense and sparse (COO) raw tensors
//   - Element-wise arithmetic via a pluggable Backend
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/adamw/tensor"
//	    "github.com/born-ml/adamw/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create tensors
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//
//	    // Tensor operations
//	    z := x.Add(y)
//	    _ = z
//	}
//
// # Supported Data Types
//
// The tensor package supports the following data types via the DType constraint:
//   - float32, float64 (floating-point)
//   - int64 (integer counters, e.g. optimizer step counts)
//
// # Storage Layouts
//
// Dense tensors store every element explicitly in row-major order. SparseCOO
// tensors store only their nonzero entries as (flat index, value) pairs; they
// exist so sparse gradients can be represented and detected, and are not
// supported by the arithmetic backends.
//
// # Memory Management
//
// The typed views returned by Data(), AsFloat32() etc. alias the underlying
// buffer: mutations through a view mutate the tensor. The optimizer relies on
// this for in-place parameter updates.
package tensor
