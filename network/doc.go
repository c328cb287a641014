// Package network computes reachability sets over a core.Graph.
//
// Two flavors of breadth-first expansion are provided:
//
//   - Open: the set of nodes reachable from a start node by following
//     outlinks only. Directed reachability; membership is not symmetric.
//   - Closed: the set of nodes reachable from a start node by repeatedly
//     hopping only across mutual (bidirectional) links. The relation is
//     symmetric: every member of the result has an identical closed network.
//
// Both run single-shot on the caller's goroutine and are restartable but not
// cancelable. They are built entirely on the core query surface (Outlinks,
// HasLink, HasNode) and never touch graph internals, so the store can evolve
// independently of this package.
package network
