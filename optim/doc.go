// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the AdamW optimization algorithm for training
// neural networks.
//
// # Overview
//
// This package contains:
//   - AdamW: Adam with decoupled weight decay and bias correction
//   - Parameter groups with independent hyperparameters
//   - Optimizer state export/import for checkpointing
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/adamw/optim"
//	    "github.com/born-ml/adamw/nn"
//	    "github.com/born-ml/adamw/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create optimizer
//	    optimizer, err := optim.NewAdamW(
//	        params,
//	        optim.DefaultAdamWConfig(),
//	        backend,
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Training loop
//	    for epoch := range 10 {
//	        // Forward + backward pass (external autograd engine)
//	        attachGradients(params)
//
//	        // Update parameters
//	        if _, err := optimizer.Step(nil); err != nil {
//	            log.Fatal(err)
//	        }
//	        optimizer.ZeroGrad()
//	    }
//	}
//
// # Parameter Groups
//
// Different parameter subsets can use different hyperparameters, the usual
// split being weights with decay and biases/norms without:
//
//	decay := optim.DefaultAdamWConfig()
//	decay.WeightDecay = 0.01
//
//	noDecay := optim.DefaultAdamWConfig()
//
//	optimizer, err := optim.NewAdamWGroups([]optim.ParamGroup[*cpu.Backend]{
//	    {Name: "decay", Params: weights, Config: decay},
//	    {Name: "no_decay", Params: biases, Config: noDecay},
//	}, backend)
//
// # Training Loop Pattern
//
//	for epoch := range numEpochs {
//	    for batch := range dataLoader {
//	        // 1. Forward pass and loss
//	        // 2. Backward pass: attach gradients to parameters
//	        // 3. Update parameters
//	        loss, err := optimizer.Step(nil)
//	        if err != nil {
//	            return err
//	        }
//	        // 4. Clear gradients
//	        optimizer.ZeroGrad()
//	        _ = loss
//	    }
//	}
//
// # Concurrency
//
// Step performs a deterministic, synchronous pass over all parameters. The
// optimizer is not goroutine-safe: callers must serialize Step calls for a
// given instance and keep gradients stable for the duration of the call.
package optim
