// Copyright 2025 The Rash Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on top of the
// autograd engine.
//
// # Overview
//
// This package contains:
//   - Linear: fully connected layer
//   - ReLU, Sigmoid, Tanh: activation functions
//   - MSELoss: mean squared error
//   - Sequential: container for stacking layers
//
// # Basic Usage
//
//	g := tensor.NewGraph()
//	model := nn.NewSequential(
//	    nn.NewLinear(g, 1, 15),
//	    nn.NewReLU(),
//	    nn.NewLinear(g, 15, 1),
//	)
//	criterion := nn.NewMSELoss()
//
//	pred := model.Forward(x)
//	loss := criterion.Forward(pred, y)
//	loss.Backward()
//
// Every building block is a pure composition of differentiable tensor
// operations, so gradients flow through a model with no extra
// machinery.
package nn
