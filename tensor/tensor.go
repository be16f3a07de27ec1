// Copyright 2025 The Rash Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/rash-ml/rash/internal/tensor"
)

// Type aliases for the public API.

// Tensor is a shared handle to one node of a computation graph.
type Tensor = tensor.Tensor

// Graph is the arena that owns every node of a computation DAG.
type Graph = tensor.Graph

// NodeID addresses a node inside its Graph.
type NodeID = tensor.NodeID

// Registry is a caller-owned index of tensors by label.
type Registry = tensor.Registry

// NewGraph creates an empty graph.
//
// Example:
//
//	g := tensor.NewGraph()
//	a := g.FromScalar(5).RequireGrad().SetLabel("a")
//	b := g.FromScalar(1).RequireGrad().SetLabel("b")
//	f := a.Mul(a).Add(b.Mul(b))
//	f.Backward()
//	// a.Grad() == [10], b.Grad() == [2]
func NewGraph() *Graph {
	return tensor.NewGraph()
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return tensor.NewRegistry()
}
