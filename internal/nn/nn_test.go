package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rash-ml/rash/internal/ndarray"
	"github.com/rash-ml/rash/internal/tensor"
)

func fromSlice(t *testing.T, g *tensor.Graph, data []float64, shape ndarray.Shape) *tensor.Tensor {
	t.Helper()
	x, err := g.FromSlice(data, shape)
	require.NoError(t, err)
	return x
}

func TestReLUForward(t *testing.T) {
	g := tensor.NewGraph()
	x := fromSlice(t, g, []float64{-2, 0, 3}, ndarray.Shape{3})

	out := NewReLU().Forward(x)
	assert.Equal(t, []float64{0, 0, 3}, out.Data().Data())
	assert.Nil(t, NewReLU().Parameters())
}

func TestReLUGradient(t *testing.T) {
	g := tensor.NewGraph()
	x := fromSlice(t, g, []float64{-2, 0, 3}, ndarray.Shape{3}).RequireGrad()

	NewReLU().Forward(x).Sum(nil, false).Backward()
	assert.Equal(t, []float64{0, 0, 1}, x.Grad().Data())
}

func TestSigmoidForward(t *testing.T) {
	g := tensor.NewGraph()
	x := fromSlice(t, g, []float64{-1, 0, 2}, ndarray.Shape{3})

	out := NewSigmoid().Forward(x).Data()
	for i, v := range []float64{-1, 0, 2} {
		want := 1 / (1 + math.Exp(-v))
		assert.InDelta(t, want, out.At(i), 1e-12)
	}
}

func TestSigmoidGradient(t *testing.T) {
	g := tensor.NewGraph()
	x := g.FromScalar(0).RequireGrad()

	NewSigmoid().Forward(x).Backward()

	// d sigmoid / dx at 0 is 0.25.
	v, err := x.Grad().Item()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, v, 1e-12)
}

func TestTanhForward(t *testing.T) {
	g := tensor.NewGraph()
	x := fromSlice(t, g, []float64{-1, 0, 0.5}, ndarray.Shape{3})

	out := NewTanh().Forward(x).Data()
	for i, v := range []float64{-1, 0, 0.5} {
		assert.InDelta(t, math.Tanh(v), out.At(i), 1e-12)
	}
}

func TestLinearForwardShape(t *testing.T) {
	g := tensor.NewGraph()
	layer := NewLinear(g, 3, 4)

	x := fromSlice(t, g, make([]float64, 2*3), ndarray.Shape{2, 3})
	out := layer.Forward(x)
	assert.Equal(t, ndarray.Shape{2, 4}, out.Shape())

	assert.Equal(t, ndarray.Shape{4, 3}, layer.Weight().Shape())
	assert.Equal(t, ndarray.Shape{4}, layer.Bias().Shape())
	assert.Len(t, layer.Parameters(), 2)
	assert.True(t, layer.Weight().RequiresGrad())
}

func TestLinearKnownValues(t *testing.T) {
	g := tensor.NewGraph()
	layer := NewLinear(g, 2, 1)
	require.NoError(t, layer.Weight().SetData(ndarray.Full(ndarray.Shape{1, 2}, 2)))
	require.NoError(t, layer.Bias().SetData(ndarray.Full(ndarray.Shape{1}, 1)))

	x := fromSlice(t, g, []float64{3, 4}, ndarray.Shape{1, 2})
	out := layer.Forward(x)

	// 2*3 + 2*4 + 1 = 15.
	assert.Equal(t, []float64{15}, out.Data().Data())
}

func TestMSELoss(t *testing.T) {
	g := tensor.NewGraph()
	pred := fromSlice(t, g, []float64{1, 2, 3}, ndarray.Shape{3}).RequireGrad()
	target := fromSlice(t, g, []float64{1, 0, 3}, ndarray.Shape{3})

	loss := NewMSELoss().Forward(pred, target)
	v, err := loss.Item()
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3, v, 1e-12)

	loss.Backward()
	// d mean((p-t)²) / dp = 2(p-t)/n.
	assert.InDelta(t, 0, pred.Grad().At(0), 1e-12)
	assert.InDelta(t, 4.0/3, pred.Grad().At(1), 1e-12)
	assert.InDelta(t, 0, pred.Grad().At(2), 1e-12)
}

func TestSequential(t *testing.T) {
	g := tensor.NewGraph()
	model := NewSequential(
		NewLinear(g, 2, 4),
		NewReLU(),
		NewLinear(g, 4, 1),
	)

	assert.Len(t, model.Parameters(), 4)

	x := fromSlice(t, g, []float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{3, 2})
	out := model.Forward(x)
	assert.Equal(t, ndarray.Shape{3, 1}, out.Shape())
}

func TestGradientFlowsThroughModel(t *testing.T) {
	g := tensor.NewGraph()
	model := NewSequential(
		NewLinear(g, 1, 4),
		NewTanh(),
		NewLinear(g, 4, 1),
	)

	x := fromSlice(t, g, []float64{0.5}, ndarray.Shape{1, 1})
	y := fromSlice(t, g, []float64{1}, ndarray.Shape{1, 1})

	loss := NewMSELoss().Forward(model.Forward(x), y)
	loss.Backward()

	// Every parameter receives some gradient signal.
	for _, p := range model.Parameters() {
		nonzero := false
		for _, v := range p.Grad().Data() {
			if v != 0 {
				nonzero = true
			}
		}
		assert.True(t, nonzero, "parameter %s has zero gradient", p.Label())
	}
}
