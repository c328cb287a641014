// Package core provides the central generic Graph type of meshnet: a
// directed, in-memory container with typed nodes and typed link payloads.
//
// Representation
//
// Every node present in a Graph owns exactly one adjacency record holding two
// ordered sequences: its outlinks (links starting at the node) and its
// inlinks (links ending at the node). A link is a single shared object
// registered once in its start node's outlinks and once in its end node's
// inlinks, so a payload update performed through any operation is observed
// from both sides. At most one link may exist per ordered (start, end) pair;
// a loopback link (start == end) is legal and occupies one slot on each side
// of the same record.
//
// Mutation and queries
//
// Link-adding operations create missing endpoint records implicitly;
// lookup-only operations report ErrNodeNotFound instead. AddDual validates
// both directions before installing either, so a failed call leaves the
// graph untouched. Disconnect empties a node's two sequences without
// removing the node; Remove deletes the record as well.
//
// Concurrency
//
// The engine is single-threaded by contract: it holds no locks and gives no
// thread-safety guarantee. Serialize access externally (one mutex around the
// whole Graph) when sharing across goroutines. Slices returned by Outlinks
// and Inlinks are live views into internal storage and may change under a
// caller that retains them across a mutation.
package core
