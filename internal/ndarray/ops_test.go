package ndarray

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, data []float64, shape Shape) *NDArray {
	t.Helper()
	a, err := New(data, shape)
	require.NoError(t, err)
	return a
}

func TestAddBroadcastRow(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	b := mustNew(t, []float64{10, 20, 30}, Shape{3})

	c := a.Add(b)
	assert.Equal(t, Shape{2, 3}, c.Shape())
	assert.Equal(t, []float64{11, 22, 33, 14, 25, 36}, c.Data())
}

func TestAddBroadcastBothStretch(t *testing.T) {
	a := mustNew(t, []float64{1, 2}, Shape{2, 1})
	b := mustNew(t, []float64{10, 20, 30}, Shape{1, 3})

	c := a.Add(b)
	assert.Equal(t, Shape{2, 3}, c.Shape())
	assert.Equal(t, []float64{11, 21, 31, 12, 22, 32}, c.Data())
}

func TestAddIncompatiblePanics(t *testing.T) {
	a := Zeros(Shape{2, 3})
	b := Zeros(Shape{4})
	assert.Panics(t, func() { a.Add(b) })
}

func TestElementwiseArithmetic(t *testing.T) {
	a := mustNew(t, []float64{4, 9, -2}, Shape{3})
	b := mustNew(t, []float64{2, 3, 2}, Shape{3})

	assert.Equal(t, []float64{2, 6, -4}, a.Sub(b).Data())
	assert.Equal(t, []float64{8, 27, -4}, a.Mul(b).Data())
	assert.Equal(t, []float64{2, 3, -1}, a.Div(b).Data())
	assert.Equal(t, []float64{-4, -9, 2}, a.Neg().Data())
}

func TestDivByZeroIEEE(t *testing.T) {
	a := mustNew(t, []float64{1, 0}, Shape{2})
	b := Zeros(Shape{2})

	c := a.Div(b)
	assert.True(t, math.IsInf(c.At(0), 1))
	assert.True(t, math.IsNaN(c.At(1)))
}

func TestScalarVariants(t *testing.T) {
	a := mustNew(t, []float64{1, 2}, Shape{2})

	assert.Equal(t, []float64{3, 4}, a.AddScalar(2).Data())
	assert.Equal(t, []float64{-1, 0}, a.SubScalar(2).Data())
	assert.Equal(t, []float64{2, 4}, a.MulScalar(2).Data())
	assert.Equal(t, []float64{0.5, 1}, a.DivScalar(2).Data())
}

func TestComparisons(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3}, Shape{3})
	b := mustNew(t, []float64{2, 2, 2}, Shape{3})

	assert.Equal(t, []float64{0, 0, 1}, a.Greater(b).Data())
	assert.Equal(t, []float64{0, 1, 1}, a.GreaterEqual(b).Data())
	assert.Equal(t, []float64{1, 0, 0}, a.Less(b).Data())
	assert.Equal(t, []float64{1, 1, 0}, a.LessEqual(b).Data())
	assert.Equal(t, []float64{0, 1, 0}, a.Equal(b).Data())
}

func TestComparisonBroadcast(t *testing.T) {
	a := mustNew(t, []float64{1, 5, 1, 5}, Shape{2, 2})
	c := a.Greater(FromScalar(3))
	assert.Equal(t, []float64{0, 1, 0, 1}, c.Data())
}

func TestExpAbsSign(t *testing.T) {
	a := mustNew(t, []float64{-1, 0, 2}, Shape{3})

	e := a.Exp()
	assert.InDelta(t, math.Exp(-1), e.At(0), 1e-12)
	assert.InDelta(t, 1, e.At(1), 1e-12)
	assert.InDelta(t, math.Exp(2), e.At(2), 1e-12)

	assert.Equal(t, []float64{1, 0, 2}, a.Abs().Data())
	assert.Equal(t, []float64{-1, 0, 1}, a.Sign().Data())
}

func TestPowN(t *testing.T) {
	a := mustNew(t, []float64{2, 3, -2}, Shape{3})

	assert.Equal(t, []float64{4, 9, 4}, a.PowN(2).Data())
	assert.Equal(t, []float64{8, 27, -8}, a.PowN(3).Data())
	assert.Equal(t, []float64{0.5, 1.0 / 3, -0.5}, a.PowN(-1).Data())
}
