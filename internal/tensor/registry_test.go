package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAddLookup(t *testing.T) {
	g := NewGraph()
	r := NewRegistry()

	a := g.FromScalar(1).SetLabel("a")
	require.NoError(t, r.Add(a))

	got, ok := r.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, a.ID(), got.ID())

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistryDuplicateLabel(t *testing.T) {
	g := NewGraph()
	r := NewRegistry()

	a := g.FromScalar(1).SetLabel("w")
	b := g.FromScalar(2).SetLabel("w")

	require.NoError(t, r.Add(a))
	assert.Error(t, r.Add(b))

	// Re-adding the same tensor is fine.
	assert.NoError(t, r.Add(a))
}

func TestRegistryLabelsSorted(t *testing.T) {
	g := NewGraph()
	r := NewRegistry()

	require.NoError(t, r.Add(g.FromScalar(1).SetLabel("c")))
	require.NoError(t, r.Add(g.FromScalar(2).SetLabel("a")))
	require.NoError(t, r.Add(g.FromScalar(3).SetLabel("b")))

	assert.Equal(t, []string{"a", "b", "c"}, r.Labels())
	assert.Equal(t, 3, r.Len())
}

func TestRegistryRemove(t *testing.T) {
	g := NewGraph()
	r := NewRegistry()

	require.NoError(t, r.Add(g.FromScalar(1).SetLabel("a")))
	r.Remove("a")
	assert.Equal(t, 0, r.Len())
}

func TestRegistriesAreIndependent(t *testing.T) {
	g := NewGraph()
	r1 := NewRegistry()
	r2 := NewRegistry()

	require.NoError(t, r1.Add(g.FromScalar(1).SetLabel("a")))
	assert.Equal(t, 1, r1.Len())
	assert.Equal(t, 0, r2.Len())
}

func TestRegistryZeroGrad(t *testing.T) {
	g := NewGraph()
	r := NewRegistry()

	a := g.FromScalar(2).RequireGrad().SetLabel("a")
	require.NoError(t, r.Add(a))

	a.Mul(a).Backward()
	assert.InDelta(t, 4, scalarGrad(t, a), 1e-12)

	r.ZeroGrad()
	assert.InDelta(t, 0, scalarGrad(t, a), 1e-12)
}
