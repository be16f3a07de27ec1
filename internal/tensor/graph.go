// Package tensor implements the autograd engine: a computation graph
// over ndarray values and the shared tensor handles through which it is
// built and differentiated.
//
// The graph is an arena: nodes live in a caller-owned Graph and are
// addressed by stable integer IDs, predecessor edges included. Handles
// never hold node pointers, so a released expression cannot dangle.
// Each operation appends a node carrying a tagged operation record; a
// single dispatch computes local gradient contributions from the record
// during the reverse pass.
package tensor

import (
	"fmt"

	"github.com/rash-ml/rash/internal/ndarray"
)

// NodeID addresses a node inside its Graph.
type NodeID int

// opRecord describes how a derived node was produced: the operation
// kind plus the minimal intermediates its local derivative needs.
// Operand values are not captured here; the dispatch reads them from
// the predecessor nodes through the arena.
type opRecord struct {
	kind     opKind
	intArg   int   // integer exponent for opPow
	axes     []int // reduction axes as given (nil means all)
	keepdims bool
	perm     []int // permutation for opPermute
}

// node is one vertex of the computation graph.
//
// Invariant: grad always has the same shape as value; accumulation
// reduces broadcast-expanded contributions before adding.
type node struct {
	id           NodeID
	value        *ndarray.NDArray
	grad         *ndarray.NDArray
	requiresGrad bool
	leaf         bool // constructor-created; survives Graph.Clear
	label        string
	op           *opRecord // nil for leaves and comparison results
	preds        []NodeID
}

// Graph is the arena that owns every node of a computation DAG. It is
// caller-owned state: there are no process-wide registries. A Graph is
// not safe for concurrent use; all operations are synchronous
// call-and-return.
type Graph struct {
	nodes []*node
	free  []NodeID
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// newNode allocates a node in the arena, reusing slots released by
// Clear when available.
func (g *Graph) newNode(value *ndarray.NDArray, requiresGrad, leaf bool, label string, op *opRecord, preds []NodeID) NodeID {
	n := &node{
		value:        value,
		grad:         ndarray.Zeros(value.Shape()),
		requiresGrad: requiresGrad,
		leaf:         leaf,
		label:        label,
		op:           op,
		preds:        preds,
	}

	if len(g.free) > 0 {
		id := g.free[len(g.free)-1]
		g.free = g.free[:len(g.free)-1]
		n.id = id
		g.nodes[id] = n
		return id
	}

	n.id = NodeID(len(g.nodes))
	g.nodes = append(g.nodes, n)
	return n.id
}

// node resolves an ID, panicking on a stale handle (a derived tensor
// used after Graph.Clear released its node).
func (g *Graph) node(id NodeID) *node {
	if int(id) >= len(g.nodes) || g.nodes[id] == nil {
		panic(fmt.Sprintf("tensor: node %d is not alive (handle used after Graph.Clear?)", id))
	}
	return g.nodes[id]
}

// NumNodes returns the number of live nodes.
func (g *Graph) NumNodes() int {
	return len(g.nodes) - len(g.free)
}

// Clear releases every derived node while keeping constructor-created
// leaves (parameters, inputs) alive. Call it between optimization steps
// once gradients have been read; handles to derived tensors become
// invalid afterwards.
func (g *Graph) Clear() {
	for id, n := range g.nodes {
		if n != nil && !n.leaf {
			g.nodes[id] = nil
			g.free = append(g.free, NodeID(id))
		}
	}
}
