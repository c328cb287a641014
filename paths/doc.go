// Package paths computes shortest paths and the diameter of a core.Graph,
// using the cost function supplied at graph construction (core.WithCost).
//
// ShortestPath runs an array-based Dijkstra: per-node tentative distances,
// an O(V) scan to select the unvisited minimum (ties broken by first-found),
// relaxation over outlinks, and early termination the moment the destination
// is selected. No priority queue is used; the engine targets graph sizes
// where the O(V²) selection is perfectly adequate and keeps the selection
// order fully deterministic.
//
// An unreachable destination is a value-level outcome (Result.Found ==
// false), never an error: only misuse (absent endpoints, missing or
// negative-yielding cost function) fails hard.
//
// Diameter is the maximum, over all node pairs with an existing path, of the
// number of nodes on their shortest path — node count, not edge count and
// not total cost. It is computed by exhaustive repeated ShortestPath calls
// with no all-pairs optimization.
package paths
