// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the trainable parameter type consumed by the optimizer.
package nn

import (
	"github.com/born-ml/adamw/internal/nn"
	"github.com/born-ml/adamw/tensor"
)

// Parameter represents a trainable parameter tensor.
//
// Parameters are tensors that participate in training. The parameter tensor
// and its gradient are owned by the caller; the optimizer reads and mutates
// them through this handle.
//
// Example:
//
//	// Create a weight parameter
//	weight := nn.NewParameter("weight", weightTensor)
//
//	// Attach the gradient computed by the autograd engine
//	weight.SetGrad(grad)
//
// Methods:
//
//	Name() string
//	    Returns the parameter name (e.g., "weight", "bias").
//
//	Tensor() *tensor.Tensor[float32, B]
//	    Returns the parameter tensor.
//
//	Grad() *tensor.Tensor[float32, B]
//	    Returns the attached gradient tensor (nil if none is attached).
//
//	SetGrad(grad *tensor.Tensor[float32, B])
//	    Attaches a gradient tensor.
//
//	ZeroGrad()
//	    Detaches the gradient tensor.
//
// Note: Parameter is implemented as a type alias so the public and internal
// packages share one concrete type.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new trainable parameter.
//
// The parameter tensor should be initialized before creating the Parameter.
// The gradient is attached later via SetGrad.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}
