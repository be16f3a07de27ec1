package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a, err := New([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, a.Shape())
	assert.Equal(t, 6, a.NumElements())
	assert.Equal(t, 5.0, a.At(1, 1))
}

func TestNewDataSizeMismatch(t *testing.T) {
	_, err := New([]float64{1, 2, 3}, Shape{2, 2})
	assert.ErrorIs(t, err, ErrDataSize)
}

func TestNewCopiesData(t *testing.T) {
	data := []float64{1, 2}
	a, err := New(data, Shape{2})
	require.NoError(t, err)

	data[0] = 99
	assert.Equal(t, 1.0, a.At(0))
}

func TestFromScalar(t *testing.T) {
	a := FromScalar(3.5)
	assert.Equal(t, Shape{1}, a.Shape())

	v, err := a.Item()
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
}

func TestItemNotScalar(t *testing.T) {
	a := Zeros(Shape{2, 2})
	_, err := a.Item()
	assert.ErrorIs(t, err, ErrNotScalar)
}

func TestFull(t *testing.T) {
	a := Full(Shape{2, 2}, 7)
	for _, v := range a.Data() {
		assert.Equal(t, 7.0, v)
	}
}

func TestRandRange(t *testing.T) {
	a := Rand(Shape{100})
	for _, v := range a.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestCloneIndependent(t *testing.T) {
	a := Full(Shape{3}, 1)
	b := a.Clone()
	b.SetAt(42, 0)

	assert.Equal(t, 1.0, a.At(0))
	assert.Equal(t, 42.0, b.At(0))
}

func TestAtBounds(t *testing.T) {
	a := Zeros(Shape{2, 3})
	assert.Panics(t, func() { a.At(2, 0) })
	assert.Panics(t, func() { a.At(0) })
}

func TestAddInPlace(t *testing.T) {
	a := Full(Shape{2, 2}, 1)
	b := Full(Shape{2, 2}, 2)
	require.NoError(t, a.AddInPlace(b))
	assert.Equal(t, 3.0, a.At(0, 0))

	// No broadcasting in accumulation.
	c := Full(Shape{2}, 1)
	assert.ErrorIs(t, a.AddInPlace(c), ErrShapeMismatch)
}
