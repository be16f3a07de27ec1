package ndarray

import "errors"

// Sentinel errors for the precondition violations the engine detects.
// All of them are raised eagerly, before any caller-visible state is
// touched; numeric issues (NaN, Inf) are never errors and propagate as
// ordinary IEEE values.
var (
	// ErrShapeMismatch reports shapes that cannot broadcast, matmul
	// operands with disagreeing inner or batch dimensions, permutations
	// of the wrong length, and mismatched in-place updates.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrDataSize reports flat data whose length disagrees with the
	// declared shape's element count.
	ErrDataSize = errors.New("data size mismatch")

	// ErrNotScalar reports an attempt to read a multi-element array as
	// a scalar.
	ErrNotScalar = errors.New("not a single-element array")
)
