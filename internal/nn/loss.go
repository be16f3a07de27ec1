package nn

import (
	"github.com/rash-ml/rash/internal/tensor"
)

// MSELoss computes the mean squared error between predictions and
// targets: mean((pred - target)²) over every element.
type MSELoss struct{}

// NewMSELoss creates an MSE loss.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward returns the single-element loss tensor.
func (m *MSELoss) Forward(pred, target *tensor.Tensor) *tensor.Tensor {
	return pred.Sub(target).PowN(2).Mean(nil, false).SetLabel("mse")
}
