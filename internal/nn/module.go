// Package nn implements neural network building blocks on top of the
// autograd engine:
//   - Module interface: base interface for all NN components
//   - Linear: fully connected layer
//   - Activations: ReLU, Sigmoid, Tanh
//   - MSELoss: mean squared error
//   - Sequential: container for stacking layers
//
// Every building block is a pure composition of differentiable tensor
// operations, so gradients flow through a model with no extra machinery.
package nn

import (
	"github.com/rash-ml/rash/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules compose into larger architectures:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(g, 1, 15),
//	    nn.NewReLU(),
//	    nn.NewLinear(g, 15, 1),
//	)
type Module interface {
	// Forward computes the module's output for the given input.
	Forward(input *tensor.Tensor) *tensor.Tensor

	// Parameters returns the module's trainable tensors, nested module
	// parameters included. Modules without trainable state (activation
	// functions) return nil.
	Parameters() []*tensor.Tensor
}
