package nn

import (
	"github.com/rash-ml/rash/internal/tensor"
)

// ReLU applies the rectified linear unit max(0, x), expressed as a
// comparison mask times the input so the gradient is the mask itself.
type ReLU struct{}

// NewReLU creates a ReLU activation.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward computes max(0, input) elementwise.
func (r *ReLU) Forward(input *tensor.Tensor) *tensor.Tensor {
	mask := input.Greater(input.Graph().Const(0))
	return input.Mul(mask)
}

// Parameters returns nil; ReLU has no trainable state.
func (r *ReLU) Parameters() []*tensor.Tensor {
	return nil
}

// Sigmoid applies the logistic function 1 / (1 + e^-x).
type Sigmoid struct{}

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward computes 1 / (1 + e^-input) elementwise.
func (s *Sigmoid) Forward(input *tensor.Tensor) *tensor.Tensor {
	return input.Neg().Exp().AddScalar(1).PowN(-1)
}

// Parameters returns nil; Sigmoid has no trainable state.
func (s *Sigmoid) Parameters() []*tensor.Tensor {
	return nil
}

// Tanh applies the hyperbolic tangent, expressed through the logistic
// function as 2*sigmoid(2x) - 1.
type Tanh struct{}

// NewTanh creates a Tanh activation.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward computes tanh(input) elementwise.
func (t *Tanh) Forward(input *tensor.Tensor) *tensor.Tensor {
	sig := input.MulScalar(2).Neg().Exp().AddScalar(1).PowN(-1)
	return sig.MulScalar(2).SubScalar(1)
}

// Parameters returns nil; Tanh has no trainable state.
func (t *Tanh) Parameters() []*tensor.Tensor {
	return nil
}
