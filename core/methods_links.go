// Package core: link lifecycle and link-level queries.
//
// This file implements the mutation engine (AddLink, AddDual, RemoveLink,
// SetLinkData, Disconnect, DisconnectAll) and the link-side query layer
// (Outlinks, Inlinks, HasLink, LinkData, TryLinkData).
//
// Determinism:
//   - Outlinks/Inlinks preserve insertion order.
//   - No operation performs partial mutation on failure; AddDual validates
//     both directions before installing either.
package core

// unlink removes l from seq by pointer identity, preserving order.
// Reports whether l was found.
func unlink[N comparable, D any](seq []*Link[N, D], l *Link[N, D]) ([]*Link[N, D], bool) {
	for i, cur := range seq {
		if cur == l {
			return append(seq[:i], seq[i+1:]...), true
		}
	}

	return seq, false
}

// AddLink creates the directed link start→end carrying data.
// Both endpoints are created implicitly when absent.
// Returns ErrLinkExists if a start→end link is already present; in that case
// the graph is left unchanged (no implicit node creation either).
// Complexity: O(outdeg(start)) for the duplicate check.
func (g *Graph[N, D]) AddLink(start, end N, data D) error {
	// Duplicate check precedes endpoint creation so a failed add is a no-op.
	if _, exists := g.lookup(start, end); exists {
		return ErrLinkExists
	}
	startRec := g.ensure(start)
	endRec := g.ensure(end)

	// One shared object, registered on both sides: the mirroring invariant.
	l := &Link[N, D]{Start: start, End: end, Data: data}
	startRec.out = append(startRec.out, l)
	endRec.in = append(endRec.in, l)
	g.links++

	return nil
}

// AddDual installs the bidirectional pair left→right and right→left, both
// carrying data.
// Returns ErrLoopback if left == right, or ErrLinkExists if either direction
// is already present. Validation of both directions happens before any
// insertion, so a failed call leaves the graph byte-for-byte unchanged.
// Complexity: O(outdeg(left) + outdeg(right)).
func (g *Graph[N, D]) AddDual(left, right N, data D) error {
	if left == right {
		return ErrLoopback
	}
	// Check-before-commit: both directions must be free.
	if _, exists := g.lookup(left, right); exists {
		return ErrLinkExists
	}
	if _, exists := g.lookup(right, left); exists {
		return ErrLinkExists
	}

	leftRec := g.ensure(left)
	rightRec := g.ensure(right)

	fwd := &Link[N, D]{Start: left, End: right, Data: data}
	rev := &Link[N, D]{Start: right, End: left, Data: data}
	leftRec.out = append(leftRec.out, fwd)
	rightRec.in = append(rightRec.in, fwd)
	rightRec.out = append(rightRec.out, rev)
	leftRec.in = append(leftRec.in, rev)
	g.links += 2

	return nil
}

// RemoveLink deletes the start→end link from both mirrored sequences.
// Returns ErrNodeNotFound if either endpoint is absent, ErrLinkNotFound if
// no such link exists, or ErrCorruptedState when the link is registered on
// the start side but missing from the end side's mirror.
// Complexity: O(outdeg(start) + indeg(end)).
func (g *Graph[N, D]) RemoveLink(start, end N) error {
	startRec, ok := g.nodes[start]
	if !ok {
		return ErrNodeNotFound
	}
	endRec, ok := g.nodes[end]
	if !ok {
		return ErrNodeNotFound
	}

	var l *Link[N, D]
	for _, cur := range startRec.out {
		if cur.End == end {
			l = cur
			break
		}
	}
	if l == nil {
		return ErrLinkNotFound
	}

	startRec.out, _ = unlink(startRec.out, l)
	var mirrored bool
	if endRec.in, mirrored = unlink(endRec.in, l); !mirrored {
		// Found in outlinks but absent from the inlink mirror: the engine's
		// own invariant is broken. Not recoverable by the caller.
		return ErrCorruptedState
	}
	g.links--

	return nil
}

// SetLinkData replaces the payload of the start→end link in place.
// Both mirrored views observe the new payload, since they share one object.
// Returns ErrLinkNotFound if the link (or either endpoint) does not exist.
// Complexity: O(outdeg(start)).
func (g *Graph[N, D]) SetLinkData(start, end N, data D) error {
	l, ok := g.lookup(start, end)
	if !ok {
		return ErrLinkNotFound
	}
	l.Data = data

	return nil
}

// Disconnect removes every link touching n, leaving n present with two empty
// sequences. A loopback link is handled exactly once. When n is absent an
// empty record is created, so the call is also a way to admit a node;
// repeated calls are no-ops.
// Complexity: O(Σ deg(peer)) over n's peers.
func (g *Graph[N, D]) Disconnect(n N) {
	rec := g.ensure(n)
	for _, l := range rec.out {
		g.links--
		if l.End == n {
			continue // loopback: its inlink slot lives on rec itself
		}
		peer := g.nodes[l.End]
		peer.in, _ = unlink(peer.in, l)
	}
	for _, l := range rec.in {
		if l.Start == n {
			continue // loopback already counted in the outlink pass
		}
		g.links--
		peer := g.nodes[l.Start]
		peer.out, _ = unlink(peer.out, l)
	}
	rec.out, rec.in = nil, nil
}

// DisconnectAll clears every node's outlink and inlink sequences.
// The node set is unchanged.
// Complexity: O(V).
func (g *Graph[N, D]) DisconnectAll() {
	for _, rec := range g.nodes {
		rec.out, rec.in = nil, nil
	}
	g.links = 0
}

// Outlinks returns n's live outlink sequence in insertion order.
// The slice is a view into internal storage: it may change under a caller
// that retains it across a mutation.
// Returns ErrNodeNotFound if n is absent.
// Complexity: O(1).
func (g *Graph[N, D]) Outlinks(n N) ([]*Link[N, D], error) {
	rec, ok := g.nodes[n]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return rec.out, nil
}

// Inlinks returns n's live inlink sequence in insertion order.
// Same view semantics and error contract as Outlinks.
// Complexity: O(1).
func (g *Graph[N, D]) Inlinks(n N) ([]*Link[N, D], error) {
	rec, ok := g.nodes[n]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return rec.in, nil
}

// HasLink reports whether the directed link start→end exists.
// Complexity: O(outdeg(start)).
func (g *Graph[N, D]) HasLink(start, end N) bool {
	_, exists := g.lookup(start, end)

	return exists
}

// LinkData returns the payload of the start→end link.
// Returns ErrNodeNotFound when either endpoint record is missing (distinct
// from ErrLinkNotFound, which means both endpoints exist but the link does
// not).
// Complexity: O(outdeg(start)).
func (g *Graph[N, D]) LinkData(start, end N) (D, error) {
	var zero D
	if _, ok := g.nodes[start]; !ok {
		return zero, ErrNodeNotFound
	}
	if _, ok := g.nodes[end]; !ok {
		return zero, ErrNodeNotFound
	}
	l, ok := g.lookup(start, end)
	if !ok {
		return zero, ErrLinkNotFound
	}

	return l.Data, nil
}

// TryLinkData is the comma-ok variant of LinkData for callers that expect
// absence: it reports false instead of failing, for missing nodes and
// missing links alike.
// Complexity: O(outdeg(start)).
func (g *Graph[N, D]) TryLinkData(start, end N) (D, bool) {
	l, ok := g.lookup(start, end)
	if !ok {
		var zero D
		return zero, false
	}

	return l.Data, true
}
