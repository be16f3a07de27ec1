package tensor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rash-ml/rash/internal/ndarray"
)

// Tensor is a shared handle to one graph node. Handles are cheap to
// copy and several may alias the same node (a parameter reused across
// expressions). All public arithmetic and the gradient lifecycle run
// through this type.
type Tensor struct {
	graph *Graph
	id    NodeID
}

// defaultLabel generates a unique per-instance label for unnamed
// tensors.
func defaultLabel() string {
	return "t-" + uuid.NewString()[:8]
}

// FromSlice creates a leaf tensor from flat data and a shape. The data
// is copied. Fails when the data length disagrees with the shape's
// element count.
func (g *Graph) FromSlice(data []float64, shape ndarray.Shape) (*Tensor, error) {
	value, err := ndarray.New(data, shape)
	if err != nil {
		return nil, err
	}
	id := g.newNode(value, false, true, defaultLabel(), nil, nil)
	return &Tensor{graph: g, id: id}, nil
}

// FromScalar creates a leaf tensor of shape [1] holding v.
func (g *Graph) FromScalar(v float64) *Tensor {
	id := g.newNode(ndarray.FromScalar(v), false, true, defaultLabel(), nil, nil)
	return &Tensor{graph: g, id: id}
}

// FromArray creates a leaf tensor holding a copy of a.
func (g *Graph) FromArray(a *ndarray.NDArray) *Tensor {
	id := g.newNode(a.Clone(), false, true, defaultLabel(), nil, nil)
	return &Tensor{graph: g, id: id}
}

// Zeros creates a zero-filled leaf tensor.
func (g *Graph) Zeros(shape ndarray.Shape) *Tensor {
	id := g.newNode(ndarray.Zeros(shape), false, true, defaultLabel(), nil, nil)
	return &Tensor{graph: g, id: id}
}

// Rand creates a leaf tensor filled with uniform [0, 1) samples.
func (g *Graph) Rand(shape ndarray.Shape) *Tensor {
	id := g.newNode(ndarray.Rand(shape), false, true, defaultLabel(), nil, nil)
	return &Tensor{graph: g, id: id}
}

// scalarConst creates an internal shape-[1] constant for the scalar
// operator variants. Unlike the public constructors it is not a
// caller-owned leaf, so Graph.Clear releases it.
func (g *Graph) scalarConst(v float64) *Tensor {
	id := g.newNode(ndarray.FromScalar(v), false, false, fmt.Sprintf("%g", v), nil, nil)
	return &Tensor{graph: g, id: id}
}

// Const creates an unnamed shape-[1] constant. Unlike FromScalar the
// result is not a leaf, so Graph.Clear releases it together with the
// expressions built from it.
func (g *Graph) Const(v float64) *Tensor {
	return g.scalarConst(v)
}

// RequireGrad marks the tensor for gradient computation. Returns the
// tensor itself for chaining.
func (t *Tensor) RequireGrad() *Tensor {
	t.graph.node(t.id).requiresGrad = true
	return t
}

// RequiresGrad reports whether gradients are tracked for this tensor.
func (t *Tensor) RequiresGrad() bool {
	return t.graph.node(t.id).requiresGrad
}

// SetLabel replaces the tensor's debugging label. Returns the tensor
// itself for chaining.
func (t *Tensor) SetLabel(label string) *Tensor {
	t.graph.node(t.id).label = label
	return t
}

// Label returns the tensor's debugging label.
func (t *Tensor) Label() string {
	return t.graph.node(t.id).label
}

// Graph returns the arena this tensor lives in.
func (t *Tensor) Graph() *Graph {
	return t.graph
}

// ID returns the tensor's node ID.
func (t *Tensor) ID() NodeID {
	return t.id
}

// Shape returns the value's shape.
func (t *Tensor) Shape() ndarray.Shape {
	return t.graph.node(t.id).value.Shape()
}

// Data returns a copy of the tensor's value.
func (t *Tensor) Data() *ndarray.NDArray {
	return t.graph.node(t.id).value.Clone()
}

// Grad returns a copy of the accumulated gradient.
func (t *Tensor) Grad() *ndarray.NDArray {
	return t.graph.node(t.id).grad.Clone()
}

// Item returns the value of a single-element tensor.
func (t *Tensor) Item() (float64, error) {
	return t.graph.node(t.id).value.Item()
}

// SetData replaces the tensor's value in place, as optimizer steps do.
// The new value must have the identical shape.
func (t *Tensor) SetData(v *ndarray.NDArray) error {
	n := t.graph.node(t.id)
	if !n.value.Shape().Equal(v.Shape()) {
		return fmt.Errorf("%w: cannot update %v with %v", ndarray.ErrShapeMismatch, n.value.Shape(), v.Shape())
	}
	n.value = v.Clone()
	return nil
}

// SetGrad overwrites the accumulated gradient. The new gradient must
// have the identical shape.
func (t *Tensor) SetGrad(v *ndarray.NDArray) error {
	n := t.graph.node(t.id)
	if !n.grad.Shape().Equal(v.Shape()) {
		return fmt.Errorf("%w: cannot update gradient %v with %v", ndarray.ErrShapeMismatch, n.grad.Shape(), v.Shape())
	}
	n.grad = v.Clone()
	return nil
}

// ZeroGrad resets the gradient buffer to zero without touching the
// graph structure. Used between optimization steps.
func (t *Tensor) ZeroGrad() {
	t.graph.node(t.id).grad.Fill(0)
}

// String renders the tensor with its value, gradient state, and label.
func (t *Tensor) String() string {
	n := t.graph.node(t.id)
	if n.requiresGrad {
		return fmt.Sprintf("Tensor(%v, requires_grad=true, grad=%v, label=%s)", n.value, n.grad, n.label)
	}
	return fmt.Sprintf("Tensor(%v, requires_grad=false, label=%s)", n.value, n.label)
}
