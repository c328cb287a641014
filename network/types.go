// Package network: options and error definitions for reachability
// traversals over a core.Graph.
package network

import "errors"

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("network: graph is nil")

	// ErrStartNotFound is returned when the start node is absent.
	ErrStartNotFound = errors.New("network: start node not found")

	// ErrNeighbors is returned when fetching outlinks from the graph fails.
	ErrNeighbors = errors.New("network: outlink iteration error")
)

// Option configures a traversal via functional arguments.
type Option[N comparable] func(*options[N])

// options holds the resolved traversal configuration.
type options[N comparable] struct {
	// onVisit runs for each admitted node in visit order. A returned error
	// aborts the traversal and is propagated to the caller.
	onVisit func(node N, depth int) error
}

// defaultOptions returns the traversal configuration with no-op hooks.
func defaultOptions[N comparable]() options[N] {
	return options[N]{
		onVisit: func(N, int) error { return nil },
	}
}

// WithOnVisit registers a callback invoked for every visited node with its
// BFS depth from the start. Returning an error stops the traversal.
func WithOnVisit[N comparable](fn func(node N, depth int) error) Option[N] {
	return func(o *options[N]) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}
