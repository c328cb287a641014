// Package meshnet is an in-memory directed-graph toolkit with typed nodes
// and typed link payloads.
//
// What is meshnet?
//
//	A small, generic, zero-dependency library built around one container:
//		• core/    — the dual-adjacency graph: typed nodes, typed link payloads,
//		             mirrored outlink/inlink views, atomic dual links
//		• network/ — reachability traversals: open (directed) and closed
//		             (mutually-linked) networks
//		• paths/   — shortest paths over a payload cost function, plus the
//		             graph diameter
//		• builder/ — deterministic topology constructors (lines, rings, stars,
//		             complete and random graphs) driving the public API
//
// Why meshnet?
//
//   - Typed end to end — Graph[N, D] keeps your node and payload types intact
//   - Mirrored by construction — every link is visible from both endpoints,
//     with a single source of truth for its payload
//   - Predictable failures — sentinel errors per package, no partial mutation
//
// The engine is single-threaded by contract: wrap a Graph in your own mutex
// if you share it across goroutines.
//
//	go get github.com/katalvlaran/meshnet
package meshnet
