// Package core: node lifecycle and node-level queries.
//
// AddNode/HasNode/Remove/RemoveAll/Nodes/NodeCount operate on the node
// universe; a node is "in the graph" iff it has an adjacency record, even
// when both of its sequences are empty.
package core

// AddNode inserts a new isolated node.
// Returns ErrNodeExists if n already has a record.
// Complexity: O(1) amortized.
func (g *Graph[N, D]) AddNode(n N) error {
	if _, exists := g.nodes[n]; exists {
		return ErrNodeExists
	}
	g.nodes[n] = &record[N, D]{}

	return nil
}

// HasNode reports whether n is present in the graph.
// Complexity: O(1).
func (g *Graph[N, D]) HasNode(n N) bool {
	_, exists := g.nodes[n]

	return exists
}

// Remove disconnects n and deletes its record entirely.
// Returns ErrNodeNotFound if n is absent.
// Complexity: O(deg(n)·deg(peer)) for the mirror removals.
func (g *Graph[N, D]) Remove(n N) error {
	if _, exists := g.nodes[n]; !exists {
		return ErrNodeNotFound
	}
	g.Disconnect(n)
	delete(g.nodes, n)

	return nil
}

// RemoveAll clears every node and link, leaving a fresh empty graph.
// The cost function is retained.
// Complexity: O(1) plus garbage collection of the old storage.
func (g *Graph[N, D]) RemoveAll() {
	g.nodes = make(map[N]*record[N, D])
	g.links = 0
}

// Nodes returns all nodes currently in the graph. Order is unspecified.
// Complexity: O(V).
func (g *Graph[N, D]) Nodes() []N {
	out := make([]N, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}

	return out
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph[N, D]) NodeCount() int {
	return len(g.nodes)
}

// LinkCount returns the number of directed links. Complexity: O(1).
func (g *Graph[N, D]) LinkCount() int {
	return g.links
}
