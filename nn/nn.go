// Copyright 2025 The Rash Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/rash-ml/rash/internal/nn"
	"github.com/rash-ml/rash/internal/tensor"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// Linear is a fully connected layer computing x @ Wᵀ + b.
type Linear = nn.Linear

// NewLinear creates a fully connected layer with inFeatures inputs and
// outFeatures outputs, parameters initialized uniformly in [-k, k] with
// k = 1/sqrt(inFeatures).
func NewLinear(g *tensor.Graph, inFeatures, outFeatures int) *Linear {
	return nn.NewLinear(g, inFeatures, outFeatures)
}

// ReLU is the rectified linear unit activation.
type ReLU = nn.ReLU

// NewReLU creates a ReLU activation.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Sigmoid is the logistic activation 1 / (1 + e^-x).
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// Tanh is the hyperbolic tangent activation.
type Tanh = nn.Tanh

// NewTanh creates a Tanh activation.
func NewTanh() *Tanh {
	return nn.NewTanh()
}

// MSELoss is the mean squared error loss.
type MSELoss = nn.MSELoss

// NewMSELoss creates an MSE loss.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// SequentialModule chains modules, feeding each output into the next.
type SequentialModule = nn.SequentialModule

// NewSequential creates a container running the given modules in order.
func NewSequential(modules ...Module) *SequentialModule {
	return nn.NewSequential(modules...)
}
