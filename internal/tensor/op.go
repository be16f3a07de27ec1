package tensor

import (
	"fmt"

	"github.com/rash-ml/rash/internal/ndarray"
)

// opKind tags how a derived node was produced. The reverse pass
// dispatches on the kind to compute local gradient contributions; no
// per-node closures are captured.
type opKind int

const (
	opAdd opKind = iota
	opSub
	opNeg
	opMul
	opDiv
	opExp
	opAbs
	opPow
	opMatMul
	opSum
	opMean
	opMin
	opMax
	opPermute
)

var opNames = [...]string{
	opAdd:     "add",
	opSub:     "sub",
	opNeg:     "neg",
	opMul:     "mul",
	opDiv:     "div",
	opExp:     "exp",
	opAbs:     "abs",
	opPow:     "pow",
	opMatMul:  "matmul",
	opSum:     "sum",
	opMean:    "mean",
	opMin:     "min",
	opMax:     "max",
	opPermute: "permute",
}

func (k opKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("opKind(%d)", int(k))
}

// localGrads computes the gradient contribution flowing from n to each
// of its predecessors, in predecessor order. Every contribution is
// already reduced to the predecessor's shape, so the caller can
// accumulate it directly.
//
// Broadcasting elementwise ops invert the forward expansion with
// ReduceTo; reductions invert it by reshaping the incoming gradient to
// the keepdims shape and broadcasting it back over the input.
func (g *Graph) localGrads(n *node) []*ndarray.NDArray {
	gr := n.grad

	switch n.op.kind {
	case opAdd:
		a := g.node(n.preds[0]).value
		b := g.node(n.preds[1]).value
		return []*ndarray.NDArray{
			gr.ReduceTo(a.Shape()),
			gr.ReduceTo(b.Shape()),
		}

	case opSub:
		a := g.node(n.preds[0]).value
		b := g.node(n.preds[1]).value
		return []*ndarray.NDArray{
			gr.ReduceTo(a.Shape()),
			gr.Neg().ReduceTo(b.Shape()),
		}

	case opNeg:
		return []*ndarray.NDArray{gr.Neg()}

	case opMul:
		a := g.node(n.preds[0]).value
		b := g.node(n.preds[1]).value
		return []*ndarray.NDArray{
			gr.Mul(b).ReduceTo(a.Shape()),
			gr.Mul(a).ReduceTo(b.Shape()),
		}

	case opDiv:
		a := g.node(n.preds[0]).value
		b := g.node(n.preds[1]).value
		return []*ndarray.NDArray{
			gr.Div(b).ReduceTo(a.Shape()),
			gr.Mul(a.Div(b.Mul(b))).Neg().ReduceTo(b.Shape()),
		}

	case opExp:
		// d/dx e^x = e^x, which is the node's own value.
		return []*ndarray.NDArray{gr.Mul(n.value)}

	case opAbs:
		a := g.node(n.preds[0]).value
		return []*ndarray.NDArray{gr.Mul(a.Sign())}

	case opPow:
		a := g.node(n.preds[0]).value
		p := n.op.intArg
		return []*ndarray.NDArray{
			gr.Mul(a.PowN(p - 1).MulScalar(float64(p))),
		}

	case opMatMul:
		return g.matmulGrads(n)

	case opSum:
		a := g.node(n.preds[0]).value
		kept := ndarray.ReducedShape(a.Shape(), n.op.axes, true)
		return []*ndarray.NDArray{
			gr.Reshape(kept).BroadcastTo(a.Shape()),
		}

	case opMean:
		a := g.node(n.preds[0]).value
		kept := ndarray.ReducedShape(a.Shape(), n.op.axes, true)
		count := a.NumElements() / kept.NumElements()
		return []*ndarray.NDArray{
			gr.Reshape(kept).BroadcastTo(a.Shape()).DivScalar(float64(count)),
		}

	case opMin, opMax:
		// Gradient flows only where the input equals the reduced
		// extremum; ties all receive the full contribution.
		a := g.node(n.preds[0]).value
		kept := ndarray.ReducedShape(a.Shape(), n.op.axes, true)
		mask := a.Equal(n.value.Reshape(kept).BroadcastTo(a.Shape()))
		return []*ndarray.NDArray{
			mask.Mul(gr.Reshape(kept).BroadcastTo(a.Shape())),
		}

	case opPermute:
		inv := make([]int, len(n.op.perm))
		for i, p := range n.op.perm {
			inv[p] = i
		}
		return []*ndarray.NDArray{gr.Permute(inv)}
	}

	panic(fmt.Sprintf("tensor: no gradient rule for %v", n.op.kind))
}

// matmulGrads handles the matmul rule: dA = G @ Bᵀ and dB = Aᵀ @ G over
// the last two dimensions, after normalizing 1-D operands to their
// promoted row/column forms and reinserting the dimension the forward
// result dropped. Broadcast batch dimensions are summed away by
// ReduceTo.
func (g *Graph) matmulGrads(n *node) []*ndarray.NDArray {
	a := g.node(n.preds[0]).value
	b := g.node(n.preds[1]).value

	aN, bN := a, b
	if a.NDim() == 1 {
		aN = a.Reshape(ndarray.Shape{1, a.Shape()[0]})
	}
	if b.NDim() == 1 {
		bN = b.Reshape(ndarray.Shape{b.Shape()[0], 1})
	}

	gr := n.grad
	switch {
	case a.NDim() == 1 && b.NDim() == 1:
		gr = gr.Reshape(ndarray.Shape{1, 1})
	case a.NDim() == 1:
		gr = gr.Unsqueeze(gr.NDim() - 1)
	case b.NDim() == 1:
		gr = gr.Unsqueeze(gr.NDim())
	}

	ga := gr.MatMul(bN.Transpose()).ReduceTo(aN.Shape()).Reshape(a.Shape())
	gb := aN.Transpose().MatMul(gr).ReduceTo(bN.Shape()).Reshape(b.Shape())
	return []*ndarray.NDArray{ga, gb}
}
