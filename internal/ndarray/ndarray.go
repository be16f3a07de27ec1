// Package ndarray implements the dense n-dimensional array engine:
// shape and stride bookkeeping, broadcasting elementwise arithmetic,
// axis reductions, permutation, and batched matrix multiplication over
// flat float64 buffers.
//
// Arrays behave as values: every producing operation allocates and
// returns a new array, and no operation mutates an operand. The only
// mutating entry points are the explicit Fill, SetAt, and AddInPlace
// accessors used by gradient buffers one layer up.
//
// The package knows nothing about gradients or graphs.
package ndarray

import (
	"fmt"
	"math/rand"
)

// NDArray is a dense row-major array of float64 values.
type NDArray struct {
	shape Shape
	data  []float64
}

// New creates an array from flat data and a shape. The data slice is
// copied. Fails when the data length disagrees with the shape's element
// count.
func New(data []float64, shape Shape) (*NDArray, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("%w: shape %v needs %d elements, got %d",
			ErrDataSize, shape, shape.NumElements(), len(data))
	}
	a := &NDArray{
		shape: shape.Clone(),
		data:  make([]float64, len(data)),
	}
	copy(a.data, data)
	return a, nil
}

// FromScalar creates a single-element array of shape [1].
func FromScalar(v float64) *NDArray {
	return &NDArray{shape: Shape{1}, data: []float64{v}}
}

// Zeros creates a zero-filled array. Panics on an invalid shape; use
// New for fallible construction from caller-supplied data.
func Zeros(shape Shape) *NDArray {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("ndarray: %v", err))
	}
	return &NDArray{
		shape: shape.Clone(),
		data:  make([]float64, shape.NumElements()),
	}
}

// Full creates an array filled with the given value.
func Full(shape Shape, v float64) *NDArray {
	a := Zeros(shape)
	a.Fill(v)
	return a
}

// Rand creates an array filled with independent uniform [0, 1) samples
// from the process-level source.
func Rand(shape Shape) *NDArray {
	a := Zeros(shape)
	for i := range a.data {
		a.data[i] = rand.Float64() //nolint:gosec // statistical use, not security
	}
	return a
}

// Shape returns the array's shape. The returned slice must not be
// modified.
func (a *NDArray) Shape() Shape {
	return a.shape
}

// NDim returns the number of dimensions.
func (a *NDArray) NDim() int {
	return len(a.shape)
}

// NumElements returns the total number of elements.
func (a *NDArray) NumElements() int {
	return len(a.data)
}

// Data returns the flat backing slice.
// WARNING: writes through the returned slice modify the array.
func (a *NDArray) Data() []float64 {
	return a.data
}

// Clone returns a deep copy.
func (a *NDArray) Clone() *NDArray {
	c := &NDArray{
		shape: a.shape.Clone(),
		data:  make([]float64, len(a.data)),
	}
	copy(c.data, a.data)
	return c
}

// Fill sets every element to v.
func (a *NDArray) Fill(v float64) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Item returns the value of a single-element array. Fails for anything
// larger; this engine has no implicit reduction to scalar.
func (a *NDArray) Item() (float64, error) {
	if len(a.data) != 1 {
		return 0, fmt.Errorf("%w: shape %v", ErrNotScalar, a.shape)
	}
	return a.data[0], nil
}

// At returns the element at the given multi-index. Panics on a rank or
// bounds violation.
func (a *NDArray) At(indices ...int) float64 {
	return a.data[a.offsetOf(indices)]
}

// SetAt sets the element at the given multi-index.
func (a *NDArray) SetAt(v float64, indices ...int) {
	a.data[a.offsetOf(indices)] = v
}

func (a *NDArray) offsetOf(indices []int) int {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("ndarray: expected %d indices, got %d", len(a.shape), len(indices)))
	}
	offset := 0
	strides := a.shape.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("ndarray: index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// AddInPlace accumulates other into a elementwise. Shapes must match
// exactly; this is the accumulation contract used by gradient buffers
// and deliberately performs no broadcasting.
func (a *NDArray) AddInPlace(other *NDArray) error {
	if !a.shape.Equal(other.shape) {
		return fmt.Errorf("%w: accumulate %v into %v", ErrShapeMismatch, other.shape, a.shape)
	}
	for i, v := range other.data {
		a.data[i] += v
	}
	return nil
}
