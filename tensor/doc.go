// Copyright 2025 The Rash Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the autograd engine.
//
// # Overview
//
// A Graph is an arena holding the nodes of a computation DAG; Tensor
// values are cheap handles into it. Arithmetic on tensors records the
// operations as the values are computed, and Backward walks the graph
// in reverse to accumulate gradients:
//
//	g := tensor.NewGraph()
//	a := g.FromScalar(5).RequireGrad().SetLabel("a")
//	b := g.FromScalar(1).RequireGrad().SetLabel("b")
//
//	f := a.Mul(a).Add(b.Mul(b)) // f = a² + b²
//	f.Backward()
//
//	fmt.Println(a.Grad()) // [10]  (df/da = 2a)
//	fmt.Println(b.Grad()) // [2]   (df/db = 2b)
//
// # Gradient Lifecycle
//
// Gradients accumulate across Backward calls: a parameter used in
// several expressions, or a Backward run twice, adds contributions
// instead of overwriting. Reset explicitly between optimization steps:
//
//	t.ZeroGrad()        // one tensor
//	registry.ZeroGrad() // every registered tensor
//
// Graph.Clear releases every derived node while keeping constructor
// leaves alive. Call it between steps to stop the arena growing with
// each forward pass; handles to derived tensors become invalid.
//
// # Registries
//
// A Registry is an ordinary value indexing tensors by label, typically
// a model's parameters. It is caller-owned state; there are no
// process-wide registries.
package tensor
