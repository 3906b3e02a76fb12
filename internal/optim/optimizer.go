// Package optim implements the AdamW optimization algorithm (Adam with
// decoupled weight decay) for training neural networks.
//
// The optimizer is a pure callee of an external training loop: gradients are
// computed elsewhere and attached to each nn.Parameter before Step is called.
//
// Example usage:
//
//	optimizer, err := optim.NewAdamW(model.Parameters(), optim.DefaultAdamWConfig(), backend)
//	if err != nil {
//	    return err
//	}
//
//	// Training loop
//	for range epochs {
//	    // Forward + backward pass (external autograd engine)
//	    attachGradients(model)
//
//	    // Update parameters
//	    if _, err := optimizer.Step(nil); err != nil {
//	        return err
//	    }
//	    optimizer.ZeroGrad()
//	}
package optim

import "errors"

// Configuration errors returned at construction time, one per invalid
// hyperparameter. No optimizer state exists when construction fails.
var (
	ErrInvalidLearningRate = errors.New("optim: learning rate must be >= 0.0")
	ErrInvalidBeta1        = errors.New("optim: beta1 must be in [0.0, 1.0)")
	ErrInvalidBeta2        = errors.New("optim: beta2 must be in [0.0, 1.0)")
	ErrInvalidEpsilon      = errors.New("optim: epsilon must be >= 0.0")
)

// ErrSparseGradient is returned by Step when a parameter's gradient uses a
// sparse storage layout. The step aborts where it stands: parameters earlier
// in iteration order keep their updates, later ones are untouched.
var ErrSparseGradient = errors.New("optim: adamw does not support sparse gradients")

// Optimizer is the base interface for optimization algorithms.
//
// Optimizers update model parameters in place based on gradients attached to
// the parameters by an external autograd engine.
type Optimizer interface {
	// Step applies one optimization update to all parameters.
	//
	// The optional closure re-evaluates the loss before the update; when
	// non-nil it is invoked exactly once and its value is returned.
	//
	// Example:
	//   loss, err := optimizer.Step(func() float32 {
	//       return model.Loss(batch)
	//   })
	Step(closure func() float32) (float32, error)

	// ZeroGrad detaches all parameter gradients.
	//
	// This should be called after each step so gradients from previous
	// iterations are never reused.
	ZeroGrad()

	// GetLR returns the current learning rate.
	//
	// Useful for monitoring and external learning rate scheduling.
	GetLR() float32
}
