package optim

import (
	"fmt"
	"math"

	"github.com/born-ml/adamw/internal/nn"
	"github.com/born-ml/adamw/internal/tensor"
)

// AdamW implements Adam with decoupled weight decay.
//
// Per parameter, AdamW maintains exponential moving averages of gradients
// (first moment) and squared gradients (second moment), corrects their
// zero-initialization bias, and applies weight decay as a direct shrinkage of
// the parameter after the gradient-based update:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * grad
//	v_t = beta2 * v_{t-1} + (1-beta2) * grad²
//	step_size = lr * sqrt(1 - beta2^t) / (1 - beta1^t)   // if CorrectBias
//	param = param - step_size * m_t / (sqrt(v_t) + eps)
//	param = param - lr * weight_decay * param            // decoupled decay
//
// The decay term deliberately uses the undiscounted learning rate, not the
// bias-corrected step size, and is applied after the moment-based update.
// Folding it into the gradient instead would couple the decay to the adaptive
// denominator and change the algorithm.
//
// Reference: "Decoupled Weight Decay Regularization" (Loshchilov & Hutter, 2019)
//
// Example:
//
//	optimizer, err := optim.NewAdamW(model.Parameters(), optim.AdamWConfig{
//	    LR:          0.001,
//	    Betas:       [2]float32{0.9, 0.999},
//	    Eps:         1e-6,
//	    CorrectBias: true,
//	}, backend)
type AdamW[B tensor.Backend] struct {
	groups  []ParamGroup[B]
	state   [][]*adamState[B] // Parallel to groups[i].Params; nil until first update
	backend B
}

// AdamWConfig holds the hyperparameters of one parameter group.
type AdamWConfig struct {
	LR          float32    // Learning rate (>= 0)
	Betas       [2]float32 // Moment decay coefficients, each in [0, 1)
	Eps         float32    // Added to the sqrt denominator for stability (>= 0)
	WeightDecay float32    // Decoupled weight decay coefficient
	CorrectBias bool       // Apply bias correction to the step size
}

// DefaultAdamWConfig returns the standard hyperparameters:
// lr=1e-3, betas=(0.9, 0.999), eps=1e-6, weight_decay=0, bias correction on.
func DefaultAdamWConfig() AdamWConfig {
	return AdamWConfig{
		LR:          1e-3,
		Betas:       [2]float32{0.9, 0.999},
		Eps:         1e-6,
		WeightDecay: 0.0,
		CorrectBias: true,
	}
}

// validate checks the hyperparameter bounds.
func (c AdamWConfig) validate() error {
	if c.LR < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidLearningRate, c.LR)
	}
	if c.Betas[0] < 0 || c.Betas[0] >= 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidBeta1, c.Betas[0])
	}
	if c.Betas[1] < 0 || c.Betas[1] >= 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidBeta2, c.Betas[1])
	}
	if c.Eps < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidEpsilon, c.Eps)
	}
	return nil
}

// ParamGroup is a collection of parameters sharing one hyperparameter
// configuration. Multiple groups with different hyperparameters may coexist
// in one optimizer; group membership is fixed at construction.
type ParamGroup[B tensor.Backend] struct {
	Name   string // Optional label, e.g. "decay" / "no_decay"
	Params []*nn.Parameter[B]
	Config AdamWConfig
}

// adamState is the per-parameter optimizer state, created lazily on the first
// update that sees a gradient for the parameter.
type adamState[B tensor.Backend] struct {
	step     int64                      // Number of updates applied to this parameter
	expAvg   *tensor.Tensor[float32, B] // First moment (mean of gradients)
	expAvgSq *tensor.Tensor[float32, B] // Second moment (mean of squared gradients)
}

// NewAdamW creates an AdamW optimizer with a single parameter group.
//
// Returns an error and no optimizer if the configuration is invalid.
func NewAdamW[B tensor.Backend](params []*nn.Parameter[B], config AdamWConfig, backend B) (*AdamW[B], error) {
	return NewAdamWGroups([]ParamGroup[B]{{Params: params, Config: config}}, backend)
}

// NewAdamWGroups creates an AdamW optimizer over multiple parameter groups,
// each with its own hyperparameters.
//
// Every group's configuration is validated before any state is created.
func NewAdamWGroups[B tensor.Backend](groups []ParamGroup[B], backend B) (*AdamW[B], error) {
	for i, group := range groups {
		if err := group.Config.validate(); err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
	}

	state := make([][]*adamState[B], len(groups))
	for i, group := range groups {
		state[i] = make([]*adamState[B], len(group.Params))
	}

	return &AdamW[B]{
		groups:  groups,
		state:   state,
		backend: backend,
	}, nil
}

// Step performs a single AdamW update over all parameter groups.
//
// If closure is non-nil it is invoked exactly once, before any update, and its
// value is returned as the loss. Parameters without an attached gradient are
// skipped entirely: no state is created and their step count does not advance.
//
// A sparse gradient aborts the call with ErrSparseGradient. Parameters already
// processed in the same call keep their updates; there is no rollback. After a
// failed Step the caller must treat parameters and optimizer state as
// partially updated.
func (a *AdamW[B]) Step(closure func() float32) (float32, error) {
	var loss float32
	if closure != nil {
		loss = closure()
	}

	for gi, group := range a.groups {
		for pi, param := range group.Params {
			grad := param.Grad()
			if grad == nil {
				continue
			}
			if grad.Raw().IsSparse() {
				return loss, fmt.Errorf("parameter %q: %w", param.Name(), ErrSparseGradient)
			}

			st := a.state[gi][pi]
			if st == nil {
				st = &adamState[B]{
					step:     0,
					expAvg:   tensor.Zeros[float32](param.Tensor().Shape(), a.backend),
					expAvgSq: tensor.Zeros[float32](param.Tensor().Shape(), a.backend),
				}
				a.state[gi][pi] = st
			}

			st.step++
			updateParameter(param, grad, st, group.Config)
		}
	}

	return loss, nil
}

// updateParameter applies the AdamW update for a single parameter, mutating
// the parameter and moment buffers in place.
func updateParameter[B tensor.Backend](
	param *nn.Parameter[B],
	grad *tensor.Tensor[float32, B],
	st *adamState[B],
	cfg AdamWConfig,
) {
	gradData := grad.Raw().AsFloat32()
	mData := st.expAvg.Raw().AsFloat32()
	vData := st.expAvgSq.Raw().AsFloat32()
	paramData := param.Tensor().Raw().AsFloat32()

	beta1 := cfg.Betas[0]
	beta2 := cfg.Betas[1]

	// step_size = lr * sqrt(1 - beta2^t) / (1 - beta1^t), or plain lr when
	// bias correction is disabled.
	stepSize := cfg.LR
	if cfg.CorrectBias {
		biasCorrection1 := 1.0 - math.Pow(float64(beta1), float64(st.step))
		biasCorrection2 := 1.0 - math.Pow(float64(beta2), float64(st.step))
		stepSize = cfg.LR * float32(math.Sqrt(biasCorrection2)/biasCorrection1)
	}

	for i := range paramData {
		g := gradData[i]

		// m_t = beta1 * m_{t-1} + (1-beta1) * grad
		mData[i] = beta1*mData[i] + (1.0-beta1)*g

		// v_t = beta2 * v_{t-1} + (1-beta2) * grad²
		vData[i] = beta2*vData[i] + (1.0-beta2)*g*g

		// param = param - step_size * m_t / (sqrt(v_t) + eps)
		// eps sits outside the sqrt: it guards the division, not the variance.
		denom := float32(math.Sqrt(float64(vData[i]))) + cfg.Eps
		paramData[i] -= stepSize * mData[i] / denom

		// Decoupled weight decay, strictly after the gradient-based update
		// and with the undiscounted learning rate.
		if cfg.WeightDecay != 0 {
			paramData[i] -= cfg.LR * cfg.WeightDecay * paramData[i]
		}
	}
}

// ZeroGrad detaches gradients from all parameters in all groups.
func (a *AdamW[B]) ZeroGrad() {
	for _, group := range a.groups {
		for _, param := range group.Params {
			param.ZeroGrad()
		}
	}
}

// GetLR returns the learning rate of the first parameter group.
func (a *AdamW[B]) GetLR() float32 {
	if len(a.groups) == 0 {
		return 0
	}
	return a.groups[0].Config.LR
}

// SetLR updates the learning rate of every parameter group.
//
// Useful for external learning rate scheduling.
func (a *AdamW[B]) SetLR(lr float32) {
	for i := range a.groups {
		a.groups[i].Config.LR = lr
	}
}

// StepCount returns the number of updates applied to the given parameter.
// Returns 0 for parameters that never received a gradient or that this
// optimizer does not manage.
func (a *AdamW[B]) StepCount(param *nn.Parameter[B]) int64 {
	for gi, group := range a.groups {
		for pi, p := range group.Params {
			if p == param {
				if st := a.state[gi][pi]; st != nil {
					return st.step
				}
				return 0
			}
		}
	}
	return 0
}
