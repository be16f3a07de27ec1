package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermute(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	p := a.Permute([]int{1, 0})
	assert.Equal(t, Shape{3, 2}, p.Shape())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, p.Data())
}

func TestPermute3D(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, Shape{2, 2, 2})

	p := a.Permute([]int{2, 0, 1})
	assert.Equal(t, Shape{2, 2, 2}, p.Shape())
	assert.Equal(t, 2.0, p.At(1, 0, 0))
	assert.Equal(t, 3.0, p.At(0, 0, 1))
}

func TestPermuteRoundTrip(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	back := a.Permute([]int{1, 0}).Permute([]int{1, 0})
	assert.Equal(t, a.Data(), back.Data())
}

func TestPermuteInvalidPanics(t *testing.T) {
	a := Zeros(Shape{2, 3})
	assert.Panics(t, func() { a.Permute([]int{0}) })
	assert.Panics(t, func() { a.Permute([]int{0, 0}) })
	assert.Panics(t, func() { a.Permute([]int{0, 2}) })
}

func TestTranspose(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	// Default swaps the last two axes.
	assert.Equal(t, Shape{3, 2}, a.Transpose().Shape())

	b := Zeros(Shape{2, 3, 4})
	assert.Equal(t, Shape{4, 3, 2}, b.Transpose(0, 2).Shape())
	assert.Equal(t, Shape{2, 4, 3}, b.Transpose(-1, -2).Shape())
}

func TestT(t *testing.T) {
	a := Zeros(Shape{2, 3, 4})
	assert.Equal(t, Shape{4, 3, 2}, a.T().Shape())
}

func TestReshape(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	r := a.Reshape(Shape{3, 2})
	assert.Equal(t, Shape{3, 2}, r.Shape())
	assert.Equal(t, a.Data(), r.Data())

	assert.Panics(t, func() { a.Reshape(Shape{4}) })
}

func TestBroadcastTo(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3}, Shape{3})

	b := a.BroadcastTo(Shape{2, 3})
	assert.Equal(t, Shape{2, 3}, b.Shape())
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, b.Data())

	assert.Panics(t, func() { a.BroadcastTo(Shape{4}) })
}

func TestUnsqueezeSqueeze(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3}, Shape{3})

	u := a.Unsqueeze(0)
	assert.Equal(t, Shape{1, 3}, u.Shape())

	u = a.Unsqueeze(1)
	assert.Equal(t, Shape{3, 1}, u.Shape())

	s := u.Squeeze(1)
	assert.Equal(t, Shape{3}, s.Shape())

	// Non-singleton axes are left untouched.
	s = a.Squeeze(0)
	assert.Equal(t, Shape{3}, s.Shape())

	// Rank never drops below one.
	one := FromScalar(5)
	assert.Equal(t, Shape{1}, one.Squeeze(0).Shape())
}
