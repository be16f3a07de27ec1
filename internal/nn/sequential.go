package nn

import (
	"github.com/rash-ml/rash/internal/tensor"
)

// SequentialModule chains modules, feeding each output into the next.
type SequentialModule struct {
	modules []Module
}

// NewSequential creates a container running the given modules in order.
func NewSequential(modules ...Module) *SequentialModule {
	return &SequentialModule{modules: modules}
}

// Forward runs the input through every module in order.
func (s *SequentialModule) Forward(input *tensor.Tensor) *tensor.Tensor {
	out := input
	for _, m := range s.modules {
		out = m.Forward(out)
	}
	return out
}

// Parameters returns the concatenated parameters of every module.
func (s *SequentialModule) Parameters() []*tensor.Tensor {
	var params []*tensor.Tensor
	for _, m := range s.modules {
		params = append(params, m.Parameters()...)
	}
	return params
}
