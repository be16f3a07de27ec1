package ndarray

import (
	"fmt"
	"math"
	"sort"
)

// reducedShape computes the output shape of reducing the given axes.
// With keepdims the reduced axes stay as size 1; otherwise they are
// removed. A result with no dimensions left collapses to [1] — this
// engine has no rank-0 type.
func reducedShape(shape Shape, axes []int, keepdims bool) Shape {
	reduced := make(map[int]bool, len(axes))
	for _, ax := range axes {
		reduced[ax] = true
	}

	out := make(Shape, 0, len(shape))
	for i, dim := range shape {
		switch {
		case !reduced[i]:
			out = append(out, dim)
		case keepdims:
			out = append(out, 1)
		}
	}
	if len(out) == 0 {
		out = Shape{1}
	}
	return out
}

// normalizeAxes validates and deduplicates reduction axes. Nil or empty
// axes selects every axis.
func normalizeAxes(opName string, ndim int, axes []int) []int {
	if len(axes) == 0 {
		all := make([]int, ndim)
		for i := range all {
			all[i] = i
		}
		return all
	}

	seen := make(map[int]bool, len(axes))
	norm := make([]int, 0, len(axes))
	for _, ax := range axes {
		if ax < 0 {
			ax += ndim
		}
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("%s: axis %d out of range for %d-dimensional array", opName, ax, ndim))
		}
		if !seen[ax] {
			seen[ax] = true
			norm = append(norm, ax)
		}
	}
	sort.Ints(norm)
	return norm
}

// reduce accumulates over the given axes with an operation-specific
// identity seed. The walk is a single iterative pass: every input index
// maps to the output index obtained by zeroing its reduced coordinates.
func (a *NDArray) reduce(opName string, axes []int, keepdims bool, identity float64, op func(acc, v float64) float64) *NDArray {
	axes = normalizeAxes(opName, a.NDim(), axes)

	// Accumulate against the keepdims shape; dropping the axes
	// afterwards is a pure metadata change.
	keptShape := reducedShape(a.shape, axes, true)
	out := Full(keptShape, identity)

	inStrides := a.shape.Strides()
	outStrides := keptShape.Strides()

	for i := range a.data {
		rem := i
		outIdx := 0
		for d := 0; d < len(a.shape); d++ {
			coord := rem / inStrides[d]
			rem %= inStrides[d]
			if d < len(keptShape) && keptShape[d] != 1 {
				outIdx += coord * outStrides[d]
			}
		}
		out.data[outIdx] = op(out.data[outIdx], a.data[i])
	}

	if !keepdims {
		out.shape = reducedShape(a.shape, axes, false)
	}
	return out
}

// Sum reduces by addition over the given axes. Nil axes reduces every
// axis to a single-element result.
func (a *NDArray) Sum(axes []int, keepdims bool) *NDArray {
	return a.reduce("sum", axes, keepdims, 0, func(acc, v float64) float64 { return acc + v })
}

// Min reduces by minimum over the given axes.
func (a *NDArray) Min(axes []int, keepdims bool) *NDArray {
	return a.reduce("min", axes, keepdims, math.Inf(1), math.Min)
}

// Max reduces by maximum over the given axes.
func (a *NDArray) Max(axes []int, keepdims bool) *NDArray {
	return a.reduce("max", axes, keepdims, math.Inf(-1), math.Max)
}

// Mean reduces by arithmetic mean over the given axes: the sum divided
// by the product of the reduced axis sizes.
func (a *NDArray) Mean(axes []int, keepdims bool) *NDArray {
	norm := normalizeAxes("mean", a.NDim(), axes)
	count := 1
	for _, ax := range norm {
		count *= a.shape[ax]
	}
	return a.Sum(norm, keepdims).DivScalar(float64(count))
}

// ReducedShape returns the shape produced by reducing the given axes
// of shape. Nil axes selects every axis.
func ReducedShape(shape Shape, axes []int, keepdims bool) Shape {
	return reducedShape(shape, normalizeAxes("reduce", len(shape), axes), keepdims)
}

// ReduceTo inverts a forward broadcast: it reduces a to the target
// shape by summing every leading axis the target lacks and every axis
// where the target size is 1 but a's is larger. Used to keep gradient
// shapes consistent with their operands.
func (a *NDArray) ReduceTo(target Shape) *NDArray {
	if a.shape.Equal(target) {
		return a
	}

	out := a
	for out.NDim() > len(target) {
		out = out.Sum([]int{0}, false)
	}
	for i := 0; i < len(target); i++ {
		if target[i] == 1 && out.shape[i] > 1 {
			out = out.Sum([]int{i}, true)
		}
	}

	if !out.shape.Equal(target) {
		panic(fmt.Sprintf("reduceto: %v: cannot reduce %v to %v", ErrShapeMismatch, a.shape, target))
	}
	return out
}
