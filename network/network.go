// Package network: breadth-first expansion shared by Open and Closed.
package network

import (
	"fmt"

	"github.com/katalvlaran/meshnet/core"
)

// item pairs a node with its BFS depth from the start.
type item[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable traversal state for one run.
type walker[N comparable, D any] struct {
	graph  *core.Graph[N, D]
	opts   options[N]
	mutual bool // Closed admits a hop only when the reverse link exists
	queue  []item[N]
	seen   map[N]bool
	order  []N
}

// Open returns the set of nodes reachable from start via any directed path,
// following outlinks only, in BFS visit order.
// Returns ErrGraphNil or ErrStartNotFound for invalid input, or any error
// produced by an OnVisit hook.
// Complexity: O(V + E) over the reachable subgraph.
func Open[N comparable, D any](g *core.Graph[N, D], start N, opts ...Option[N]) ([]N, error) {
	return run(g, start, false, opts)
}

// Closed returns the maximal set of nodes reachable from start by repeatedly
// following only mutual (bidirectional) links, in BFS visit order. The set
// is closed under mutual adjacency and the relation is symmetric: for any
// member m, Closed(g, m) holds exactly the same nodes.
// Returns ErrGraphNil or ErrStartNotFound for invalid input, or any error
// produced by an OnVisit hook.
// Complexity: O(V + E·outdeg) over the reachable subgraph (each admitted hop
// pays one reverse-link probe).
func Closed[N comparable, D any](g *core.Graph[N, D], start N, opts ...Option[N]) ([]N, error) {
	return run(g, start, true, opts)
}

// run validates input, seeds the walker, and drains the queue.
func run[N comparable, D any](g *core.Graph[N, D], start N, mutual bool, opts []Option[N]) ([]N, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	w := &walker[N, D]{
		graph:  g,
		opts:   o,
		mutual: mutual,
		seen:   make(map[N]bool),
	}
	w.enqueue(start, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.order, nil
}

// enqueue marks n seen at depth d and adds it to the work queue.
func (w *walker[N, D]) enqueue(n N, d int) {
	w.seen[n] = true
	w.queue = append(w.queue, item[N]{node: n, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker[N, D]) loop() error {
	for len(w.queue) > 0 {
		it := w.queue[0]
		w.queue = w.queue[1:]

		w.order = append(w.order, it.node)
		if err := w.opts.onVisit(it.node, it.depth); err != nil {
			return fmt.Errorf("network: OnVisit error at %v: %w", it.node, err)
		}
		if err := w.expand(it); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues every unseen outlink target of it.node, applying the
// mutuality check in Closed mode.
func (w *walker[N, D]) expand(it item[N]) error {
	out, err := w.graph.Outlinks(it.node)
	if err != nil {
		return fmt.Errorf("%w: outlinks of %v: %v", ErrNeighbors, it.node, err)
	}
	for _, l := range out {
		if w.seen[l.End] {
			continue
		}
		// Closed mode: the hop counts only when the target links back.
		if w.mutual && !w.graph.HasLink(l.End, it.node) {
			continue
		}
		w.enqueue(l.End, it.depth+1)
	}

	return nil
}
