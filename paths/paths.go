// Package paths: array-based Dijkstra and exhaustive diameter.
package paths

import (
	"fmt"
	"math"

	"github.com/katalvlaran/meshnet/core"
)

// infinite marks a tentative distance not yet improved by any relaxation.
const infinite = int64(math.MaxInt64)

// ShortestPath computes the minimum-cost path from start to end, with link
// costs taken from the graph's construction-time cost function.
//
// Algorithm: array-based Dijkstra. Tentative distances start infinite except
// for start (0); each round scans all unvisited nodes for the minimum
// (first-found wins ties), relaxes its outlinks, and marks it visited. The
// loop exits the moment end is selected, or reports Found=false once no
// reachable unvisited node remains — which cleanly distinguishes
// "unreachable" from "zero-cost path".
//
// Returns ErrGraphNil, ErrNoCostFunc, ErrNodeNotFound for misuse, or
// ErrNegativeCost when the cost function yields a negative value for a
// traversed link. Unreachability is not an error.
//
// Complexity: O(V² + E) time, O(V) space.
func ShortestPath[N comparable, D any](g *core.Graph[N, D], start, end N) (Result[N], error) {
	var none Result[N]
	if g == nil {
		return none, ErrGraphNil
	}
	cost := g.Cost()
	if cost == nil {
		return none, ErrNoCostFunc
	}
	if !g.HasNode(start) || !g.HasNode(end) {
		return none, ErrNodeNotFound
	}

	// Snapshot the node universe and give every node a dense index.
	nodes := g.Nodes()
	idx := make(map[N]int, len(nodes))
	for i, n := range nodes {
		idx[n] = i
	}

	dist := make([]int64, len(nodes))
	prev := make([]int, len(nodes))
	visited := make([]bool, len(nodes))
	for i := range dist {
		dist[i] = infinite
		prev[i] = -1
	}
	s, e := idx[start], idx[end]
	dist[s] = 0

	for {
		// Select the unvisited node with minimum tentative distance.
		// Strict < keeps the first-found node on ties and never selects an
		// infinite-distance node.
		u := -1
		best := infinite
		for i := range nodes {
			if !visited[i] && dist[i] < best {
				best = dist[i]
				u = i
			}
		}
		if u == -1 {
			// Everything still unvisited is unreachable; end among them.
			return none, nil
		}
		if u == e {
			return Result[N]{
				Found: true,
				Cost:  dist[e],
				Path:  reconstruct(nodes, prev, s, e),
			}, nil
		}
		visited[u] = true

		out, err := g.Outlinks(nodes[u])
		if err != nil {
			return none, fmt.Errorf("paths: outlinks of %v: %w", nodes[u], err)
		}
		for _, l := range out {
			c := cost(l.Data)
			if c < 0 {
				return none, fmt.Errorf("%w: link %v→%v cost=%d", ErrNegativeCost, l.Start, l.End, c)
			}
			v := idx[l.End]
			if visited[v] {
				continue
			}
			if next := dist[u] + c; next < dist[v] {
				dist[v] = next
				prev[v] = u
			}
		}
	}
}

// reconstruct walks the predecessor chain from e back to s and reverses it
// into a start→end node sequence, both endpoints inclusive.
func reconstruct[N comparable](nodes []N, prev []int, s, e int) []N {
	var rev []N
	for cur := e; cur != -1; cur = prev[cur] {
		rev = append(rev, nodes[cur])
		if cur == s {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// Diameter returns the maximum, over all pairs of distinct nodes with an
// existing path, of the number of nodes on their shortest path. Node count,
// not edge count and not total cost; a graph with fewer than two connected
// nodes has diameter 0.
//
// Computed by exhaustive repeated ShortestPath calls — O(V²) pairs at O(V²)
// each. Acceptable for the graph sizes this engine targets; no all-pairs
// optimization is attempted.
//
// Returns ErrGraphNil or ErrNoCostFunc, and propagates ShortestPath errors.
func Diameter[N comparable, D any](g *core.Graph[N, D]) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if g.Cost() == nil {
		return 0, ErrNoCostFunc
	}

	longest := 0
	nodes := g.Nodes()
	for _, a := range nodes {
		for _, b := range nodes {
			if a == b {
				continue
			}
			r, err := ShortestPath(g, a, b)
			if err != nil {
				return 0, err
			}
			if r.Found && len(r.Path) > longest {
				longest = len(r.Path)
			}
		}
	}

	return longest, nil
}
