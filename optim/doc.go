// Copyright 2025 The Rash Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training.
//
// # Overview
//
// This package contains:
//   - SGD: stochastic gradient descent with momentum
//   - Optimizer interface for custom optimizers
//
// # Training Loop Pattern
//
//	g := tensor.NewGraph()
//	model := buildModel(g)
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	for range numEpochs {
//	    // 1. Forward pass
//	    loss := criterion.Forward(model.Forward(x), y)
//
//	    // 2. Backward pass
//	    loss.Backward()
//
//	    // 3. Update parameters and reset state
//	    opt.Step()
//	    opt.ZeroGrad()
//	    g.Clear()
//	}
package optim
