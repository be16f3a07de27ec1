package tensor

import (
	"fmt"

	"github.com/rash-ml/rash/internal/ndarray"
)

// derive appends a derived node holding value, tagged with rec and
// linked to preds. The node requires gradients when any predecessor
// does. All operands must live in the same graph.
func derive(value *ndarray.NDArray, label string, rec *opRecord, preds ...*Tensor) *Tensor {
	g := preds[0].graph
	ids := make([]NodeID, len(preds))
	requiresGrad := false
	for i, p := range preds {
		if p.graph != g {
			panic("tensor: operands belong to different graphs")
		}
		ids[i] = p.id
		if p.RequiresGrad() {
			requiresGrad = true
		}
	}
	id := g.newNode(value, requiresGrad, false, label, rec, ids)
	return &Tensor{graph: g, id: id}
}

// compare appends a comparison result: a derived node carrying a 0/1
// mask that never participates in gradients.
func compare(value *ndarray.NDArray, label string, preds ...*Tensor) *Tensor {
	g := preds[0].graph
	ids := make([]NodeID, len(preds))
	for i, p := range preds {
		if p.graph != g {
			panic("tensor: operands belong to different graphs")
		}
		ids[i] = p.id
	}
	id := g.newNode(value, false, false, label, nil, ids)
	return &Tensor{graph: g, id: id}
}

func (t *Tensor) value() *ndarray.NDArray {
	return t.graph.node(t.id).value
}

// Add returns t + other with broadcasting.
func (t *Tensor) Add(other *Tensor) *Tensor {
	return derive(t.value().Add(other.value()),
		fmt.Sprintf("(%s+%s)", t.Label(), other.Label()),
		&opRecord{kind: opAdd}, t, other)
}

// Sub returns t - other with broadcasting.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	return derive(t.value().Sub(other.value()),
		fmt.Sprintf("(%s-%s)", t.Label(), other.Label()),
		&opRecord{kind: opSub}, t, other)
}

// Mul returns t * other elementwise with broadcasting.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	return derive(t.value().Mul(other.value()),
		fmt.Sprintf("(%s*%s)", t.Label(), other.Label()),
		&opRecord{kind: opMul}, t, other)
}

// Div returns t / other elementwise with broadcasting.
func (t *Tensor) Div(other *Tensor) *Tensor {
	return derive(t.value().Div(other.value()),
		fmt.Sprintf("(%s/%s)", t.Label(), other.Label()),
		&opRecord{kind: opDiv}, t, other)
}

// Neg returns -t.
func (t *Tensor) Neg() *Tensor {
	return derive(t.value().Neg(),
		fmt.Sprintf("(-%s)", t.Label()),
		&opRecord{kind: opNeg}, t)
}

// AddScalar returns t + v.
func (t *Tensor) AddScalar(v float64) *Tensor {
	return t.Add(t.graph.scalarConst(v))
}

// SubScalar returns t - v.
func (t *Tensor) SubScalar(v float64) *Tensor {
	return t.Sub(t.graph.scalarConst(v))
}

// MulScalar returns t * v.
func (t *Tensor) MulScalar(v float64) *Tensor {
	return t.Mul(t.graph.scalarConst(v))
}

// DivScalar returns t / v.
func (t *Tensor) DivScalar(v float64) *Tensor {
	return t.Div(t.graph.scalarConst(v))
}

// Exp returns e^t elementwise.
func (t *Tensor) Exp() *Tensor {
	return derive(t.value().Exp(),
		fmt.Sprintf("exp(%s)", t.Label()),
		&opRecord{kind: opExp}, t)
}

// Abs returns |t| elementwise. The gradient at zero is zero.
func (t *Tensor) Abs() *Tensor {
	return derive(t.value().Abs(),
		fmt.Sprintf("abs(%s)", t.Label()),
		&opRecord{kind: opAbs}, t)
}

// PowN raises every element to the integer power n.
func (t *Tensor) PowN(n int) *Tensor {
	return derive(t.value().PowN(n),
		fmt.Sprintf("(%s^%d)", t.Label(), n),
		&opRecord{kind: opPow, intArg: n}, t)
}

// MatMul multiplies t by other with batching and broadcasting over the
// leading dimensions.
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	return derive(t.value().MatMul(other.value()),
		fmt.Sprintf("(%s@%s)", t.Label(), other.Label()),
		&opRecord{kind: opMatMul}, t, other)
}

// Sum reduces by addition over the given axes. Nil axes reduces every
// axis to a single-element result.
func (t *Tensor) Sum(axes []int, keepdims bool) *Tensor {
	return derive(t.value().Sum(axes, keepdims),
		fmt.Sprintf("sum(%s)", t.Label()),
		&opRecord{kind: opSum, axes: cloneInts(axes), keepdims: keepdims}, t)
}

// Mean reduces by arithmetic mean over the given axes.
func (t *Tensor) Mean(axes []int, keepdims bool) *Tensor {
	return derive(t.value().Mean(axes, keepdims),
		fmt.Sprintf("mean(%s)", t.Label()),
		&opRecord{kind: opMean, axes: cloneInts(axes), keepdims: keepdims}, t)
}

// Min reduces by minimum over the given axes. The gradient flows to
// every element equal to the minimum.
func (t *Tensor) Min(axes []int, keepdims bool) *Tensor {
	return derive(t.value().Min(axes, keepdims),
		fmt.Sprintf("min(%s)", t.Label()),
		&opRecord{kind: opMin, axes: cloneInts(axes), keepdims: keepdims}, t)
}

// Max reduces by maximum over the given axes. The gradient flows to
// every element equal to the maximum.
func (t *Tensor) Max(axes []int, keepdims bool) *Tensor {
	return derive(t.value().Max(axes, keepdims),
		fmt.Sprintf("max(%s)", t.Label()),
		&opRecord{kind: opMax, axes: cloneInts(axes), keepdims: keepdims}, t)
}

// cloneInts copies a caller-supplied axis list so later mutation cannot
// corrupt the recorded operation.
func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	c := make([]int, len(s))
	copy(c, s)
	return c
}

// Permute rearranges the dimensions according to perm.
func (t *Tensor) Permute(perm []int) *Tensor {
	p := make([]int, len(perm))
	copy(p, perm)
	return derive(t.value().Permute(p),
		fmt.Sprintf("permute(%s)", t.Label()),
		&opRecord{kind: opPermute, perm: p}, t)
}

// Transpose swaps two axes. With no arguments the last two axes are
// swapped; otherwise exactly two axes must be given, negative values
// counting from the end.
func (t *Tensor) Transpose(dims ...int) *Tensor {
	d1, d2 := -1, -2
	switch len(dims) {
	case 0:
	case 2:
		d1, d2 = dims[0], dims[1]
	default:
		panic(fmt.Sprintf("transpose: expected 0 or 2 axes, got %d", len(dims)))
	}

	n := len(t.Shape())
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
	return t.Permute(perm)
}

// T reverses all axes.
func (t *Tensor) T() *Tensor {
	n := len(t.Shape())
	perm := make([]int, n)
	for i := range perm {
		perm[i] = n - 1 - i
	}
	return t.Permute(perm)
}

// Greater returns the 0/1 mask of t > other. The result does not carry
// gradients.
func (t *Tensor) Greater(other *Tensor) *Tensor {
	return compare(t.value().Greater(other.value()),
		fmt.Sprintf("(%s>%s)", t.Label(), other.Label()), t, other)
}

// GreaterEqual returns the 0/1 mask of t >= other.
func (t *Tensor) GreaterEqual(other *Tensor) *Tensor {
	return compare(t.value().GreaterEqual(other.value()),
		fmt.Sprintf("(%s>=%s)", t.Label(), other.Label()), t, other)
}

// Less returns the 0/1 mask of t < other.
func (t *Tensor) Less(other *Tensor) *Tensor {
	return compare(t.value().Less(other.value()),
		fmt.Sprintf("(%s<%s)", t.Label(), other.Label()), t, other)
}

// LessEqual returns the 0/1 mask of t <= other.
func (t *Tensor) LessEqual(other *Tensor) *Tensor {
	return compare(t.value().LessEqual(other.value()),
		fmt.Sprintf("(%s<=%s)", t.Label(), other.Label()), t, other)
}

// Equal returns the 0/1 mask of exact elementwise equality.
func (t *Tensor) Equal(other *Tensor) *Tensor {
	return compare(t.value().Equal(other.value()),
		fmt.Sprintf("(%s==%s)", t.Label(), other.Label()), t, other)
}
