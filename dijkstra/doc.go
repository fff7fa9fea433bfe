// Package dijkstra computes single-source shortest paths over a core.Adjacency
// with non-negative integer weights.
//
// Overview:
//
//   - NewSolver runs the whole algorithm before it returns; every query on the
//     resulting Solver is a read of finished, immutable tables.
//   - The frontier is a pqueue.Queue keyed by node ID. All nodes enter it up
//     front (the source at 0, the rest at Infinity) and improved distances are
//     applied in place with ChangePriority, so the queue never holds stale
//     duplicates.
//   - Directed graphs relax every outgoing edge of a settled node. Undirected
//     graphs skip neighbours that are already settled, which saves work and
//     yields the same distances.
//   - Neighbours are visited in ascending ID order, so ties between equally
//     short paths resolve the same way on every run.
//
// Complexity:
//
//   - Time:  O((V + E) log V): V pops and at most E decrease-key operations.
//   - Space: O(V) for the distance, predecessor and queue tables.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:      NewSolver got a nil Adjacency.
//   - ErrInvalidSource: the source is neither a key nor an edge target of the graph.
//   - ErrUnknownNode:   ShortestPathTo got a node that is not part of the graph.
//   - ErrUnreachable:   ShortestPathTo got a node with no path from the source.
//
// Negative weights are not detected; results for such graphs are undefined.
//
// Example:
//
//	s, err := dijkstra.NewSolver(adj, 5950, dijkstra.WithDirected(true))
//	if err != nil {
//	    return err
//	}
//	path, err := s.ShortestPathTo(9583)
//	if errors.Is(err, dijkstra.ErrUnreachable) {
//	    // no route
//	}
//
// A Solver is safe for concurrent reads once NewSolver has returned.
package dijkstra
