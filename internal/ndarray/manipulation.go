package ndarray

import "fmt"

// Permute rearranges the dimensions according to perm, which must be a
// permutation of 0..ndim-1. The result is a materialized copy, not a
// view: every element is moved to its permuted physical location.
func (a *NDArray) Permute(perm []int) *NDArray {
	n := a.NDim()
	if len(perm) != n {
		panic(fmt.Sprintf("permute: %v: permutation %v does not match %d dimensions", ErrShapeMismatch, perm, n))
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			panic(fmt.Sprintf("permute: %v: %v is not a permutation of 0..%d", ErrShapeMismatch, perm, n-1))
		}
		seen[p] = true
	}

	outShape := make(Shape, n)
	for d := range perm {
		outShape[d] = a.shape[perm[d]]
	}

	out := Zeros(outShape)
	inStrides := a.shape.Strides()
	outStrides := outShape.Strides()

	for i := range out.data {
		rem := i
		src := 0
		for d := 0; d < n; d++ {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			src += coord * inStrides[perm[d]]
		}
		out.data[i] = a.data[src]
	}

	return out
}

// Transpose swaps two axes via Permute. With no arguments the last two
// axes are swapped; otherwise exactly two axes must be given, negative
// values counting from the end.
func (a *NDArray) Transpose(dims ...int) *NDArray {
	d1, d2 := -1, -2
	switch len(dims) {
	case 0:
	case 2:
		d1, d2 = dims[0], dims[1]
	default:
		panic(fmt.Sprintf("transpose: expected 0 or 2 axes, got %d", len(dims)))
	}

	n := a.NDim()
	if d1 < 0 {
		d1 += n
	}
	if d2 < 0 {
		d2 += n
	}
	if d1 < 0 || d1 >= n || d2 < 0 || d2 >= n {
		panic(fmt.Sprintf("transpose: axes (%v) out of range for %d dimensions", dims, n))
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	perm[d1], perm[d2] = perm[d2], perm[d1]
	return a.Permute(perm)
}

// T reverses all axes.
func (a *NDArray) T() *NDArray {
	n := a.NDim()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = n - 1 - i
	}
	return a.Permute(perm)
}

// withShape returns a copy of a reinterpreted under a shape with the
// same element count. Internal reshape used by squeeze/unsqueeze and
// the matmul dimension normalization.
func (a *NDArray) withShape(shape Shape) *NDArray {
	if shape.NumElements() != len(a.data) {
		panic(fmt.Sprintf("reshape: %v: %v has %d elements, %v needs %d",
			ErrShapeMismatch, a.shape, len(a.data), shape, shape.NumElements()))
	}
	out := a.Clone()
	out.shape = shape.Clone()
	return out
}

// Reshape returns a copy of a under a new shape with the same element
// count. Data order is unchanged (row-major).
func (a *NDArray) Reshape(shape Shape) *NDArray {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return a.withShape(shape)
}

// BroadcastTo expands a to the given shape following the broadcasting
// rule. Panics if a does not broadcast to exactly that shape.
func (a *NDArray) BroadcastTo(shape Shape) *NDArray {
	out := Zeros(shape).Add(a)
	if !out.shape.Equal(shape) {
		panic(fmt.Sprintf("broadcastto: %v: %v does not broadcast to %v", ErrShapeMismatch, a.shape, shape))
	}
	return out
}

// Unsqueeze inserts a size-1 dimension at position dim.
func (a *NDArray) Unsqueeze(dim int) *NDArray {
	n := a.NDim()
	if dim < 0 {
		dim += n + 1
	}
	if dim < 0 || dim > n {
		panic(fmt.Sprintf("unsqueeze: dimension %d out of range for %d dimensions", dim, n))
	}
	shape := make(Shape, 0, n+1)
	shape = append(shape, a.shape[:dim]...)
	shape = append(shape, 1)
	shape = append(shape, a.shape[dim:]...)
	return a.withShape(shape)
}

// Squeeze removes the dimension at position dim if it has size 1; a
// non-singleton dimension is left untouched. The result keeps at least
// one dimension.
func (a *NDArray) Squeeze(dim int) *NDArray {
	n := a.NDim()
	if dim < 0 {
		dim += n
	}
	if dim < 0 || dim >= n || a.shape[dim] != 1 || n == 1 {
		return a.Clone()
	}
	shape := make(Shape, 0, n-1)
	shape = append(shape, a.shape[:dim]...)
	shape = append(shape, a.shape[dim+1:]...)
	return a.withShape(shape)
}
