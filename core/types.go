// Package core: Graph, Link, sentinel errors, and the NewGraph constructor.
//
// This file declares the generic Graph and Link types, the CostFunc contract
// consumed by the paths package, GraphOption, and all sentinel errors.
//
// Errors:
//
//	ErrNodeNotFound   - operation referenced a node absent from the graph.
//	ErrNodeExists     - explicit creation of a node already present.
//	ErrLinkExists     - adding a link would duplicate an existing direction.
//	ErrLinkNotFound   - requested link does not exist.
//	ErrLoopback       - dual link requested from a node to itself.
//	ErrCorruptedState - mirroring invariant violated; engine bug, not misuse.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates a lookup referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNodeExists indicates AddNode was called for a node already present.
	ErrNodeExists = errors.New("core: node already exists")

	// ErrLinkExists indicates an add would duplicate an existing directed link.
	ErrLinkExists = errors.New("core: link already exists")

	// ErrLinkNotFound indicates an operation referenced a non-existent link.
	ErrLinkNotFound = errors.New("core: link not found")

	// ErrLoopback indicates a dual link was requested with equal endpoints.
	ErrLoopback = errors.New("core: loopback dual link not allowed")

	// ErrCorruptedState indicates a link was present in one adjacency sequence
	// but missing from its mirror. This is an internal consistency fault
	// (engine bug or unsynchronized concurrent mutation), never user error;
	// callers should treat it as fatal rather than retry.
	ErrCorruptedState = errors.New("core: adjacency mirror corrupted")
)

// Link is a directed edge from Start to End carrying an opaque payload.
//
// Identity is the (Start, End) pair alone; Data never participates in
// equality. The same *Link is stored in Start's outlinks and End's inlinks,
// which is what keeps the payload identical on both sides.
type Link[N comparable, D any] struct {
	// Start is the origin node of the link.
	Start N

	// End is the destination node of the link.
	End N

	// Data is the user payload. Mutate it only through SetLinkData.
	Data D
}

// CostFunc maps a link payload to a non-negative traversal cost.
// It is supplied at construction and consumed exclusively by paths.
type CostFunc[D any] func(data D) int64

// GraphOption configures a Graph before creation.
type GraphOption[N comparable, D any] func(g *Graph[N, D])

// WithCost installs the cost function used by shortest-path computation.
// A graph built without it is valid as long as paths is never invoked on it.
func WithCost[N comparable, D any](fn CostFunc[D]) GraphOption[N, D] {
	return func(g *Graph[N, D]) { g.cost = fn }
}

// record is the adjacency record of one node: its two mirrored sequences.
// A record never exists with only one side initialized; nil slices are the
// empty state for both.
type record[N comparable, D any] struct {
	out []*Link[N, D] // links with Start == owner, in insertion order
	in  []*Link[N, D] // links with End == owner, in insertion order
}

// Graph is the core in-memory directed graph.
//
// N is the node type (compared by ==, hashed by the runtime map); nodes are
// stored once and never copied or mutated by the engine. D is the link
// payload type, fully opaque to the container.
//
// Graph is not safe for concurrent use; see the package documentation.
type Graph[N comparable, D any] struct {
	nodes map[N]*record[N, D] // node → adjacency record
	cost  CostFunc[D]         // optional, read by paths
	links int                 // total number of directed links
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1).
func NewGraph[N comparable, D any](opts ...GraphOption[N, D]) *Graph[N, D] {
	g := &Graph[N, D]{nodes: make(map[N]*record[N, D])}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Cost returns the construction-time cost function, or nil if none was set.
func (g *Graph[N, D]) Cost() CostFunc[D] {
	return g.cost
}

// ensure returns n's adjacency record, creating an empty one if absent.
// Idempotent; both sequences start empty together.
func (g *Graph[N, D]) ensure(n N) *record[N, D] {
	rec, ok := g.nodes[n]
	if !ok {
		rec = &record[N, D]{}
		g.nodes[n] = rec
	}

	return rec
}

// lookup returns the start→end link if both the start record and the link
// exist. It never creates records.
func (g *Graph[N, D]) lookup(start, end N) (*Link[N, D], bool) {
	rec, ok := g.nodes[start]
	if !ok {
		return nil, false
	}
	for _, l := range rec.out {
		if l.End == end {
			return l, true
		}
	}

	return nil, false
}
