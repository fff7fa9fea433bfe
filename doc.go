// Package shortpath computes single-source shortest paths over weighted
// graphs with Dijkstra's algorithm, driven by an indexed priority queue.
//
// Under the hood, everything is organized in small packages:
//
//	pqueue/   — indexed binary min-heap with O(log n) ChangePriority
//	core/     — Adjacency (node → neighbour → weight) and a thread-safe Graph builder
//	dijkstra/ — Solver: eager run, distances, predecessors, path reconstruction
//	csvgraph/ — loads origin;destination;weight edge lists
//	report/   — text, YAML and JSON rendering of a finished run
//	cmd/shortpath — command line front end
//
// Quick example:
//
//	adj := core.Adjacency{1: {2: 4}, 2: {3: 1}, 3: {}}
//	s, err := dijkstra.NewSolver(adj, 1, dijkstra.WithDirected(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := s.ShortestPathTo(3) // 1 → 2 → 3, total 5
//
//	go install github.com/katalvlaran/shortpath/cmd/shortpath@latest
package shortpath
