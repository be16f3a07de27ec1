package ndarray

import (
	"fmt"
	"math"
)

// broadcastApply runs op over every output index of the broadcast of a
// and b. The walk is iterative: each flat output index is decomposed
// into coordinates via the output strides and mapped to each operand's
// physical offset through stride-0 broadcast strides.
func broadcastApply(opName string, a, b *NDArray, op func(x, y float64) float64) *NDArray {
	outShape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", opName, err))
	}

	out := Zeros(outShape)
	outStrides := outShape.Strides()
	aStrides := broadcastStrides(a.shape, outShape)
	bStrides := broadcastStrides(b.shape, outShape)

	for i := range out.data {
		ai := flatIndex(i, outStrides, aStrides)
		bi := flatIndex(i, outStrides, bStrides)
		out.data[i] = op(a.data[ai], b.data[bi])
	}

	return out
}

// unaryApply maps op over every element.
func unaryApply(a *NDArray, op func(x float64) float64) *NDArray {
	out := Zeros(a.shape)
	for i, v := range a.data {
		out.data[i] = op(v)
	}
	return out
}

// Add returns a + other with broadcasting.
func (a *NDArray) Add(other *NDArray) *NDArray {
	return broadcastApply("add", a, other, func(x, y float64) float64 { return x + y })
}

// Sub returns a - other with broadcasting.
func (a *NDArray) Sub(other *NDArray) *NDArray {
	return broadcastApply("sub", a, other, func(x, y float64) float64 { return x - y })
}

// Mul returns a * other elementwise with broadcasting.
func (a *NDArray) Mul(other *NDArray) *NDArray {
	return broadcastApply("mul", a, other, func(x, y float64) float64 { return x * y })
}

// Div returns a / other elementwise with broadcasting. Division by zero
// follows IEEE semantics and produces Inf or NaN.
func (a *NDArray) Div(other *NDArray) *NDArray {
	return broadcastApply("div", a, other, func(x, y float64) float64 { return x / y })
}

// Neg returns -a.
func (a *NDArray) Neg() *NDArray {
	return unaryApply(a, func(x float64) float64 { return -x })
}

// AddScalar returns a + v.
func (a *NDArray) AddScalar(v float64) *NDArray {
	return a.Add(FromScalar(v))
}

// SubScalar returns a - v.
func (a *NDArray) SubScalar(v float64) *NDArray {
	return a.Sub(FromScalar(v))
}

// MulScalar returns a * v.
func (a *NDArray) MulScalar(v float64) *NDArray {
	return a.Mul(FromScalar(v))
}

// DivScalar returns a / v.
func (a *NDArray) DivScalar(v float64) *NDArray {
	return a.Div(FromScalar(v))
}

// Greater returns the 0/1 mask of a > other with broadcasting.
func (a *NDArray) Greater(other *NDArray) *NDArray {
	return broadcastApply("greater", a, other, cmpMask(func(x, y float64) bool { return x > y }))
}

// GreaterEqual returns the 0/1 mask of a >= other with broadcasting.
func (a *NDArray) GreaterEqual(other *NDArray) *NDArray {
	return broadcastApply("greaterequal", a, other, cmpMask(func(x, y float64) bool { return x >= y }))
}

// Less returns the 0/1 mask of a < other with broadcasting.
func (a *NDArray) Less(other *NDArray) *NDArray {
	return broadcastApply("less", a, other, cmpMask(func(x, y float64) bool { return x < y }))
}

// LessEqual returns the 0/1 mask of a <= other with broadcasting.
func (a *NDArray) LessEqual(other *NDArray) *NDArray {
	return broadcastApply("lessequal", a, other, cmpMask(func(x, y float64) bool { return x <= y }))
}

// Equal returns the 0/1 mask of exact elementwise equality with
// broadcasting.
func (a *NDArray) Equal(other *NDArray) *NDArray {
	return broadcastApply("equal", a, other, cmpMask(func(x, y float64) bool { return x == y }))
}

func cmpMask(pred func(x, y float64) bool) func(x, y float64) float64 {
	return func(x, y float64) float64 {
		if pred(x, y) {
			return 1
		}
		return 0
	}
}

// Exp returns e^a elementwise.
func (a *NDArray) Exp() *NDArray {
	return unaryApply(a, math.Exp)
}

// Abs returns |a| elementwise.
func (a *NDArray) Abs() *NDArray {
	return unaryApply(a, math.Abs)
}

// Sign returns -1, 0, or 1 per element.
func (a *NDArray) Sign() *NDArray {
	return unaryApply(a, func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	})
}

// PowN raises every element to the integer power n. Negative exponents
// follow IEEE semantics (0^-1 = +Inf).
func (a *NDArray) PowN(n int) *NDArray {
	return unaryApply(a, func(x float64) float64 {
		return math.Pow(x, float64(n))
	})
}
