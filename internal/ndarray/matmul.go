package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// MatMulShape validates two shapes for matrix multiplication and
// returns the result shape, following the NumPy dimension rules:
//
//   - 1-D x 1-D is a dot product with result shape [1].
//   - A 1-D left operand is treated as a [1, K] row, a 1-D right
//     operand as a [K, 1] column; the promoted dimension is dropped
//     from the result.
//   - All dimensions except the last two are batch dimensions and
//     broadcast against each other.
//   - The trailing dimensions must satisfy (..., M, K) x (..., K, N).
func MatMulShape(a, b Shape) (Shape, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	aN, bN := a, b
	if len(aN) == 1 {
		aN = Shape{1, aN[0]}
	}
	if len(bN) == 1 {
		bN = Shape{bN[0], 1}
	}

	if aN[len(aN)-1] != bN[len(bN)-2] {
		return nil, fmt.Errorf("%w: matmul inner dimensions disagree: %v x %v", ErrShapeMismatch, a, b)
	}

	batchA, batchB := Shape{1}, Shape{1}
	if len(aN) > 2 {
		batchA = aN[:len(aN)-2]
	}
	if len(bN) > 2 {
		batchB = bN[:len(bN)-2]
	}
	batch, err := BroadcastShapes(batchA, batchB)
	if err != nil {
		return nil, fmt.Errorf("%w: matmul batch dimensions: %v x %v", ErrShapeMismatch, a, b)
	}

	m, n := aN[len(aN)-2], bN[len(bN)-1]

	out := make(Shape, 0, len(batch)+2)
	if len(aN) > 2 || len(bN) > 2 {
		out = append(out, batch...)
	}
	if len(a) > 1 {
		out = append(out, m)
	}
	if len(b) > 1 {
		out = append(out, n)
	}
	if len(out) == 0 {
		out = Shape{1}
	}
	return out, nil
}

// MatMul multiplies a by b with full batching and broadcasting support
// (see MatMulShape for the accepted dimension combinations). The
// validation happens before any computation; the per-slice dense 2-D
// multiply is delegated to gonum's blas64.Gemm on row-major,
// un-transposed operands.
func (a *NDArray) MatMul(b *NDArray) *NDArray {
	finalShape, err := MatMulShape(a.shape, b.shape)
	if err != nil {
		panic(fmt.Sprintf("matmul: %v", err))
	}

	// Promote 1-D operands to row/column matrices.
	aN, bN := a, b
	if a.NDim() == 1 {
		aN = a.withShape(Shape{1, a.shape[0]})
	}
	if b.NDim() == 1 {
		bN = b.withShape(Shape{b.shape[0], 1})
	}

	m := aN.shape[aN.NDim()-2]
	k := aN.shape[aN.NDim()-1]
	n := bN.shape[bN.NDim()-1]

	batchA, batchB := Shape{1}, Shape{1}
	if aN.NDim() > 2 {
		batchA = aN.shape[:aN.NDim()-2]
	}
	if bN.NDim() > 2 {
		batchB = bN.shape[:bN.NDim()-2]
	}
	batch, _ := BroadcastShapes(batchA, batchB)

	out := Zeros(append(batch.Clone(), m, n))

	// Batch offsets follow the same stride-0 broadcast mapping as the
	// elementwise walk, scaled by each operand's matrix block size.
	batchStrides := batch.Strides()
	aStrides := broadcastStrides(batchA, batch)
	bStrides := broadcastStrides(batchB, batch)
	for i := range aStrides {
		aStrides[i] *= m * k
	}
	for i := range bStrides {
		bStrides[i] *= k * n
	}

	for batchIdx := 0; batchIdx < batch.NumElements(); batchIdx++ {
		offA := flatIndex(batchIdx, batchStrides, aStrides)
		offB := flatIndex(batchIdx, batchStrides, bStrides)
		offOut := batchIdx * m * n
		gemm(aN.data[offA:offA+m*k], bN.data[offB:offB+k*n], out.data[offOut:offOut+m*n], m, k, n)
	}

	return out.withShape(finalShape)
}

// gemm computes out = a @ b for row-major dense slices.
func gemm(a, b, out []float64, m, k, n int) {
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
		blas64.General{Rows: m, Cols: k, Stride: k, Data: a},
		blas64.General{Rows: k, Cols: n, Stride: n, Data: b},
		0,
		blas64.General{Rows: m, Cols: n, Stride: n, Data: out})
}
