// Package core defines the graph shapes consumed by the shortest-path solver:
// the read-only Adjacency mapping and the Graph builder that produces it.
//
// Adjacency is a plain nested map, node → neighbour → weight. It is what the
// solver reads; it may come from anywhere (a file, the network, a literal in a
// test). Undirected graphs are expected to carry both directions of every edge.
//
// Graph is a thread-safe builder around an Adjacency:
//
//   - WithDirected(true) stores only from→to; the default undirected mode
//     mirrors every AddEdge as to→from.
//   - WithLoops() permits self-loops; otherwise AddEdge(v, v, …) → ErrLoopNotAllowed.
//   - Re-adding an existing edge overwrites its weight (no multi-edges).
//   - Vertices() and NeighborIDs() return ascending IDs for reproducible output.
//   - Adjacency() returns a deep snapshot, so later mutation of the Graph never
//     affects a solver that already holds the snapshot.
//
// Weights are int64 and expected to be non-negative; the package does not
// validate them.
//
// Concurrency:
//
//	All Graph methods take an internal sync.RWMutex. Adjacency values are not
//	synchronized; treat them as read-only once shared.
package core
