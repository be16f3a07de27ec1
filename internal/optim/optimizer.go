// Package optim implements gradient-descent optimizers over trainable
// tensors.
//
// Optimizers hold handles to parameter tensors and update their values
// in place from the gradients accumulated by a backward pass:
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//	for range epochs {
//	    loss := lossFn.Forward(model.Forward(x), y)
//	    loss.Backward()
//	    opt.Step()
//	    opt.ZeroGrad()
//	    g.Clear()
//	}
package optim

import (
	"github.com/rash-ml/rash/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one gradient update to every parameter. Parameters
	// not marked for gradients are skipped.
	Step() error

	// ZeroGrad resets every parameter's gradient buffer. Call it before
	// the next backward pass to stop accumulation across iterations.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64
}

// zeroGrads resets the gradients of the given parameters.
func zeroGrads(params []*tensor.Tensor) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
