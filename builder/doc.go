// Package builder assembles deterministic test and demo topologies on a
// core.Graph by sequencing the public mutation API — it has no graph logic
// of its own beyond ordering AddNode/AddLink/AddDual calls.
//
// One orchestrator, Build, creates the graph, resolves the builder
// configuration from functional options, and applies Constructor closures in
// order. Constructors validate their parameters early, return sentinel
// errors, and never panic; for a fixed seed, option set, and constructor
// order the produced graph is identical run to run.
//
// Shapes: Line (directed chain), Ring (directed cycle), Star (dual links
// from a center), Complete (dual links between every pair), and
// RandomSparse (seeded Bernoulli trial per ordered pair).
package builder
