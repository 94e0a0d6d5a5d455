package netgraph

import (
	"errors"
	"sort"
)

// Sentinel errors for network operations.
var (
	// ErrEmptyVertexID indicates that an empty string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("netgraph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("netgraph: vertex not found")

	// ErrNegativeCapacity indicates an edge with capacity below zero.
	ErrNegativeCapacity = errors.New("netgraph: negative edge capacity")

	// ErrLoopNotAllowed indicates a self-loop edge, which a flow network never needs.
	ErrLoopNotAllowed = errors.New("netgraph: self-loop not allowed")
)

// Network is a directed graph whose edges carry non-negative int64
// capacities. Parallel edges are folded into a single arc by summing
// their capacities at insertion time.
//
// Network is not safe for concurrent mutation; the solvers in this module
// build and consume each instance within a single goroutine.
type Network struct {
	vertices map[string]struct{}
	// caps[u][v] = aggregated capacity of arc u→v.
	caps map[string]map[string]int64
}

// NewNetwork creates an empty Network.
// Complexity: O(1).
func NewNetwork() *Network {
	return &Network{
		vertices: make(map[string]struct{}),
		caps:     make(map[string]map[string]int64),
	}
}

// AddVertex registers a vertex by ID. Adding an existing vertex is a no-op.
// Complexity: O(1).
func (n *Network) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	n.vertices[id] = struct{}{}

	return nil
}

// AddEdge adds (or tops up) the directed arc from→to with the given capacity.
// Both endpoints are created implicitly. Capacities of parallel insertions
// accumulate.
// Complexity: O(1).
func (n *Network) AddEdge(from, to string, capacity int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	if capacity < 0 {
		return ErrNegativeCapacity
	}
	n.vertices[from] = struct{}{}
	n.vertices[to] = struct{}{}
	inner, ok := n.caps[from]
	if !ok {
		inner = make(map[string]int64)
		n.caps[from] = inner
	}
	inner[to] += capacity

	return nil
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (n *Network) HasVertex(id string) bool {
	_, ok := n.vertices[id]

	return ok
}

// HasEdge reports whether the arc from→to exists with positive capacity.
// Complexity: O(1).
func (n *Network) HasEdge(from, to string) bool {
	return n.caps[from][to] > 0
}

// Capacity returns the aggregated capacity of arc from→to, or 0 when absent.
// Complexity: O(1).
func (n *Network) Capacity(from, to string) int64 {
	return n.caps[from][to]
}

// VertexCount returns the number of registered vertices.
func (n *Network) VertexCount() int {
	return len(n.vertices)
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (n *Network) Vertices() []string {
	out := make([]string, 0, len(n.vertices))
	for id := range n.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Neighbors returns the IDs reachable from `from` over positive-capacity
// arcs, in ascending order. Returns ErrVertexNotFound for unknown vertices.
// Complexity: O(deg log deg).
func (n *Network) Neighbors(from string) ([]string, error) {
	if !n.HasVertex(from) {
		return nil, ErrVertexNotFound
	}
	inner := n.caps[from]
	out := make([]string, 0, len(inner))
	for to, c := range inner {
		if c > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out, nil
}

// CloneEmpty returns a new Network with the same vertex set and no edges.
// Complexity: O(V).
func (n *Network) CloneEmpty() *Network {
	clone := NewNetwork()
	for id := range n.vertices {
		clone.vertices[id] = struct{}{}
	}

	return clone
}

// Clone returns a deep copy of the Network.
// Complexity: O(V + E).
func (n *Network) Clone() *Network {
	clone := n.CloneEmpty()
	for u, inner := range n.caps {
		dst := make(map[string]int64, len(inner))
		for v, c := range inner {
			dst[v] = c
		}
		clone.caps[u] = dst
	}

	return clone
}
