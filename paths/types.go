// Package paths: result type and error definitions.
package paths

import "errors"

// Sentinel errors for path computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrNodeNotFound is returned when an endpoint is absent from the graph.
	ErrNodeNotFound = errors.New("paths: node not found")

	// ErrNoCostFunc is returned when the graph was constructed without
	// core.WithCost; shortest-path computation has no cost model to use.
	ErrNoCostFunc = errors.New("paths: graph has no cost function")

	// ErrNegativeCost is returned when the cost function yields a negative
	// value for a traversed link; Dijkstra requires non-negative costs.
	ErrNegativeCost = errors.New("paths: negative link cost")
)

// Result is the outcome of a shortest-path computation.
//
// Found distinguishes "unreachable" from "zero-cost path": a reachable
// destination always sets Found even when Cost is 0. Path runs from start to
// end inclusive and is nil when Found is false.
type Result[N comparable] struct {
	Found bool
	Cost  int64
	Path  []N
}
