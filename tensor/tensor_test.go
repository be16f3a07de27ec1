// Copyright 2025 The Rash Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/rash-ml/rash/ndarray"
	"github.com/rash-ml/rash/tensor"
)

// TestPublicAPIQuadratic runs the README example end-to-end through the
// public surface.
func TestPublicAPIQuadratic(t *testing.T) {
	g := tensor.NewGraph()

	a := g.FromScalar(5).RequireGrad().SetLabel("a")
	b := g.FromScalar(1).RequireGrad().SetLabel("b")

	f := a.Mul(a).Add(b.Mul(b))

	v, err := f.Item()
	if err != nil {
		t.Fatalf("Item failed: %v", err)
	}
	if v != 26 {
		t.Errorf("f = %v, want 26", v)
	}

	f.Backward()

	ga, err := a.Grad().Item()
	if err != nil {
		t.Fatalf("Grad Item failed: %v", err)
	}
	if ga != 10 {
		t.Errorf("grad(a) = %v, want 10", ga)
	}

	gb, err := b.Grad().Item()
	if err != nil {
		t.Fatalf("Grad Item failed: %v", err)
	}
	if gb != 2 {
		t.Errorf("grad(b) = %v, want 2", gb)
	}
}

// TestPublicAPIRegistry verifies the registry sweep pattern.
func TestPublicAPIRegistry(t *testing.T) {
	g := tensor.NewGraph()
	params := tensor.NewRegistry()

	w := g.FromScalar(2).RequireGrad().SetLabel("w")
	if err := params.Add(w); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	w.Mul(w).Backward()
	params.ZeroGrad()
	g.Clear()

	gv, err := w.Grad().Item()
	if err != nil {
		t.Fatalf("Grad Item failed: %v", err)
	}
	if gv != 0 {
		t.Errorf("grad(w) after sweep = %v, want 0", gv)
	}
	if g.NumNodes() != 1 {
		t.Errorf("live nodes after Clear = %d, want 1", g.NumNodes())
	}
}

// TestPublicAPIArrayRoundTrip verifies tensors interoperate with the
// ndarray package.
func TestPublicAPIArrayRoundTrip(t *testing.T) {
	g := tensor.NewGraph()

	arr, err := ndarray.New([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	x := g.FromArray(arr)
	if !x.Shape().Equal(ndarray.Shape{2, 2}) {
		t.Errorf("shape = %v, want [2 2]", x.Shape())
	}

	sum := x.Sum(nil, false)
	v, err := sum.Item()
	if err != nil {
		t.Fatalf("Item failed: %v", err)
	}
	if v != 10 {
		t.Errorf("sum = %v, want 10", v)
	}
}
