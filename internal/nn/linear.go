package nn

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/rash-ml/rash/internal/ndarray"
	"github.com/rash-ml/rash/internal/tensor"
)

var linearCount atomic.Int64

// Linear is a fully connected layer computing x @ Wᵀ + b for an input
// of shape [batch, in]. The weight has shape [out, in] and the bias
// shape [out].
type Linear struct {
	weight *tensor.Tensor
	bias   *tensor.Tensor
}

// NewLinear creates a fully connected layer with inFeatures inputs and
// outFeatures outputs. Weights and bias are initialized uniformly in
// [-k, k] with k = 1/sqrt(inFeatures), and both are registered for
// gradients with labels "linearN.weight" / "linearN.bias".
func NewLinear(g *tensor.Graph, inFeatures, outFeatures int) *Linear {
	idx := linearCount.Add(1)
	k := 1.0 / math.Sqrt(float64(inFeatures))

	return &Linear{
		weight: g.FromArray(uniform(ndarray.Shape{outFeatures, inFeatures}, k)).
			RequireGrad().
			SetLabel(fmt.Sprintf("linear%d.weight", idx)),
		bias: g.FromArray(uniform(ndarray.Shape{outFeatures}, k)).
			RequireGrad().
			SetLabel(fmt.Sprintf("linear%d.bias", idx)),
	}
}

// Forward computes input @ Wᵀ + b.
func (l *Linear) Forward(input *tensor.Tensor) *tensor.Tensor {
	return input.MatMul(l.weight.Transpose()).Add(l.bias)
}

// Parameters returns the weight and bias.
func (l *Linear) Parameters() []*tensor.Tensor {
	return []*tensor.Tensor{l.weight, l.bias}
}

// Weight returns the weight tensor of shape [out, in].
func (l *Linear) Weight() *tensor.Tensor {
	return l.weight
}

// Bias returns the bias tensor of shape [out].
func (l *Linear) Bias() *tensor.Tensor {
	return l.bias
}

// uniform samples every element from [-k, k).
func uniform(shape ndarray.Shape, k float64) *ndarray.NDArray {
	return ndarray.Rand(shape).MulScalar(2 * k).SubScalar(k)
}
