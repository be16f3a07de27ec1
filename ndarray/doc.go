// Copyright 2025 The Rash Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides the public API for the dense array engine.
//
// # Overview
//
// NDArray is a dense row-major float64 array supporting:
//   - Elementwise arithmetic with NumPy-style broadcasting
//   - Axis reductions (Sum, Mean, Min, Max) with keepdims
//   - Permutation, transposition, reshaping
//   - Batched matrix multiplication
//
// Arrays behave as values: every producing operation returns a fresh
// array and never mutates an operand.
//
// # Basic Usage
//
//	a, err := ndarray.New([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b := ndarray.Full(ndarray.Shape{3}, 10)
//
//	c := a.Add(b)            // broadcast [2,3] + [3]
//	s := c.Sum([]int{1}, false) // shape [2]
//
// # Broadcasting
//
// Shapes align from the trailing dimension. A dimension of size 1, or a
// missing leading dimension, stretches to match the other operand:
//
//	[2, 3] + [3]    -> [2, 3]
//	[2, 1] + [1, 3] -> [2, 3]
//	[2, 3] + [4]    -> error
package ndarray
