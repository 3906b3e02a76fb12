// Package nn provides the trainable parameter type the optimizer operates on.
package nn

import (
	"github.com/born-ml/adamw/internal/tensor"
)

// Parameter represents a trainable parameter tensor.
//
// The parameter tensor and its gradient are owned by the caller (typically a
// model and its autograd engine); the optimizer only reads and mutates them
// through this handle. The gradient is attached before each optimization step
// and may be absent, in which case the optimizer skips the parameter.
//
// Example:
//
//	// Create a weight parameter
//	weight := nn.NewParameter("weight", weightTensor)
//
//	// Attach the gradient computed by the autograd engine
//	weight.SetGrad(grad)
type Parameter[B tensor.Backend] struct {
	name   string                     // Parameter name (e.g., "weight", "bias")
	tensor *tensor.Tensor[float32, B] // The parameter tensor
	grad   *tensor.Tensor[float32, B] // Gradient tensor (attached before each step)
}

// NewParameter creates a new trainable parameter.
//
// The parameter tensor should be initialized before creating the Parameter.
// The gradient is attached later via SetGrad.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t,
		grad:   nil,
	}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// Grad returns the gradient tensor.
//
// Returns nil if no gradient is currently attached.
func (p *Parameter[B]) Grad() *tensor.Tensor[float32, B] {
	return p.grad
}

// SetGrad attaches a gradient tensor.
//
// The gradient may use a sparse layout; consumers that require dense storage
// are responsible for rejecting it.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[float32, B]) {
	p.grad = grad
}

// ZeroGrad detaches the gradient tensor.
//
// This should be called after each training iteration so that stale gradients
// from previous iterations are never reused.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}
