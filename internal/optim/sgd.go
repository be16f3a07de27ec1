package optim

import (
	"github.com/rash-ml/rash/internal/ndarray"
	"github.com/rash-ml/rash/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * grad
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + grad
//	param = param - lr * velocity
type SGD struct {
	params     []*tensor.Tensor
	lr         float64
	momentum   float64
	velocities map[tensor.NodeID]*ndarray.NDArray
}

// SGDConfig holds the SGD hyperparameters.
type SGDConfig struct {
	LR       float64 // learning rate (default 0.01)
	Momentum float64 // momentum factor in [0, 1) (default 0)
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []*tensor.Tensor, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[tensor.NodeID]*ndarray.NDArray),
	}
}

// Step applies one gradient update to every parameter that tracks
// gradients.
func (s *SGD) Step() error {
	for _, p := range s.params {
		if !p.RequiresGrad() {
			continue
		}

		update := p.Grad()
		if s.momentum != 0 {
			v, ok := s.velocities[p.ID()]
			if !ok {
				v = ndarray.Zeros(p.Shape())
			}
			v = v.MulScalar(s.momentum).Add(update)
			s.velocities[p.ID()] = v
			update = v
		}

		if err := p.SetData(p.Data().Sub(update.MulScalar(s.lr))); err != nil {
			return err
		}
	}
	return nil
}

// ZeroGrad resets every parameter's gradient.
func (s *SGD) ZeroGrad() {
	zeroGrads(s.params)
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate. Useful for scheduling.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
