// Package core: mutual-adjacency queries.
package core

// Neighbors returns the nodes n has a mutual link with: peer p is included
// iff both n→p and p→n exist. A node is never its own neighbor, even when it
// carries a loopback link. Order follows n's outlink insertion order.
// Returns ErrNodeNotFound if n is absent.
// Complexity: O(Σ outdeg(p)) over n's outlink targets.
func (g *Graph[N, D]) Neighbors(n N) ([]N, error) {
	rec, ok := g.nodes[n]
	if !ok {
		return nil, ErrNodeNotFound
	}

	var peers []N
	for _, l := range rec.out {
		if l.End == n {
			continue // loopback: self-exclusion is part of the contract
		}
		if g.HasLink(l.End, n) {
			peers = append(peers, l.End)
		}
	}

	return peers, nil
}
