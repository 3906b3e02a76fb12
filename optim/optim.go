// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	internalcpu "github.com/born-ml/adamw/internal/backend/cpu"
	"github.com/born-ml/adamw/internal/optim"
	"github.com/born-ml/adamw/nn"
	"github.com/born-ml/adamw/tensor"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// AdamW (Adam with decoupled weight decay)

// AdamW represents the AdamW optimizer.
type AdamW[B tensor.Backend] = optim.AdamW[B]

// AdamWConfig contains configuration for the AdamW optimizer.
type AdamWConfig = optim.AdamWConfig

// ParamGroup is a collection of parameters sharing one hyperparameter
// configuration.
type ParamGroup[B tensor.Backend] = optim.ParamGroup[B]

// Configuration errors returned at construction time.
var (
	ErrInvalidLearningRate = optim.ErrInvalidLearningRate
	ErrInvalidBeta1        = optim.ErrInvalidBeta1
	ErrInvalidBeta2        = optim.ErrInvalidBeta2
	ErrInvalidEpsilon      = optim.ErrInvalidEpsilon
)

// ErrSparseGradient is returned by Step when a parameter's gradient uses a
// sparse storage layout.
var ErrSparseGradient = optim.ErrSparseGradient

// Compile-time check that AdamW implements Optimizer.
var _ Optimizer = (*AdamW[*internalcpu.CPUBackend])(nil)

// DefaultAdamWConfig returns the standard hyperparameters:
// lr=1e-3, betas=(0.9, 0.999), eps=1e-6, weight_decay=0, bias correction on.
func DefaultAdamWConfig() AdamWConfig {
	return optim.DefaultAdamWConfig()
}

// NewAdamW creates a new AdamW optimizer with a single parameter group.
//
// Example:
//
//	backend := cpu.New()
//	optimizer, err := optim.NewAdamW(
//	    model.Parameters(),
//	    optim.AdamWConfig{
//	        LR:          0.001,
//	        Betas:       [2]float32{0.9, 0.999},
//	        Eps:         1e-6,
//	        WeightDecay: 0.01,
//	        CorrectBias: true,
//	    },
//	    backend,
//	)
func NewAdamW[B tensor.Backend](params []*nn.Parameter[B], config AdamWConfig, backend B) (*AdamW[B], error) {
	return optim.NewAdamW(params, config, backend)
}

// NewAdamWGroups creates a new AdamW optimizer over multiple parameter groups,
// each with its own hyperparameters.
//
// Example:
//
//	optimizer, err := optim.NewAdamWGroups([]optim.ParamGroup[*cpu.Backend]{
//	    {Name: "decay", Params: weights, Config: decayConfig},
//	    {Name: "no_decay", Params: biases, Config: noDecayConfig},
//	}, backend)
func NewAdamWGroups[B tensor.Backend](groups []ParamGroup[B], backend B) (*AdamW[B], error) {
	return optim.NewAdamWGroups(groups, backend)
}
