// Copyright 2025 The Rash Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/rash-ml/rash/internal/ndarray"
)

// Type aliases for the public API.

// NDArray is a dense row-major array of float64 values.
type NDArray = ndarray.NDArray

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} is a 3-D array with dimensions 2×3×4.
type Shape = ndarray.Shape

// Sentinel errors returned by fallible operations.
var (
	ErrShapeMismatch = ndarray.ErrShapeMismatch
	ErrDataSize      = ndarray.ErrDataSize
	ErrNotScalar     = ndarray.ErrNotScalar
)

// New creates an array from flat data and a shape. The data is copied.
func New(data []float64, shape Shape) (*NDArray, error) {
	return ndarray.New(data, shape)
}

// FromScalar creates a single-element array of shape [1].
func FromScalar(v float64) *NDArray {
	return ndarray.FromScalar(v)
}

// Zeros creates a zero-filled array.
func Zeros(shape Shape) *NDArray {
	return ndarray.Zeros(shape)
}

// Full creates an array filled with the given value.
func Full(shape Shape, v float64) *NDArray {
	return ndarray.Full(shape, v)
}

// Rand creates an array filled with uniform [0, 1) samples.
func Rand(shape Shape) *NDArray {
	return ndarray.Rand(shape)
}

// BroadcastShapes returns the broadcast of two shapes, or an error when
// they are incompatible.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return ndarray.BroadcastShapes(a, b)
}

// MatMulShape validates two shapes for matrix multiplication and
// returns the result shape.
func MatMulShape(a, b Shape) (Shape, error) {
	return ndarray.MatMulShape(a, b)
}

// ReducedShape returns the shape produced by reducing the given axes.
// Nil axes selects every axis.
func ReducedShape(shape Shape, axes []int, keepdims bool) Shape {
	return ndarray.ReducedShape(shape, axes, keepdims)
}
