package dijkstra

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/pqueue"
)

// Solver holds the finished result of one Dijkstra run from a single source.
// All tables are filled by NewSolver and never modified afterwards.
type Solver struct {
	graph    core.Adjacency // read-only; referenced, not copied
	source   int
	directed bool
	logger   *slog.Logger

	nodes     []int                     // every node, ascending
	distances map[int]int64             // node → distance from source, Infinity if unreached
	previous  map[int]Predecessor       // node → predecessor on the best path
	queue     *pqueue.Queue[int, int64] // unsettled frontier

	elapsed     time.Duration // main loop only
	settled     int
	relaxations int
}

// NewSolver validates its inputs and runs Dijkstra's algorithm from source
// over adj before returning.
//
// Every key of adj and every edge target is a node. The source must be one of
// them.
//
// Errors:
//   - ErrNilGraph if adj is nil.
//   - ErrInvalidSource (wrapped with the ID) if source is not a node.
//
// Complexity: O((V + E) log V)
func NewSolver(adj core.Adjacency, source int, opts ...Option) (*Solver, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and source.
	if adj == nil {
		return nil, ErrNilGraph
	}
	nodes := adj.Nodes()
	if i := sort.SearchInts(nodes, source); i == len(nodes) || nodes[i] != source {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSource, source)
	}

	s := &Solver{
		graph:     adj,
		source:    source,
		directed:  cfg.Directed,
		logger:    cfg.Logger,
		nodes:     nodes,
		distances: make(map[int]int64, len(nodes)),
		previous:  make(map[int]Predecessor, len(nodes)),
		queue:     pqueue.New[int, int64](pqueue.WithCapacity(len(nodes))),
	}

	// 3) Initialize tables and frontier, then run.
	s.init()
	s.run()

	return s, nil
}

// FromGraph runs NewSolver on a snapshot of g, directed the way g is unless
// opts say otherwise.
func FromGraph(g *core.Graph, source int, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return NewSolver(g.Adjacency(), source, append([]Option{WithDirected(g.Directed())}, opts...)...)
}

// ShortestPaths is a one-shot helper returning only the distance and
// predecessor tables of a run.
func ShortestPaths(adj core.Adjacency, source int, opts ...Option) (map[int]int64, map[int]Predecessor, error) {
	s, err := NewSolver(adj, source, opts...)
	if err != nil {
		return nil, nil, err
	}

	return s.distances, s.previous, nil
}

// init sets every distance to Infinity (the source to 0), clears every
// predecessor and loads all nodes into the queue.
func (s *Solver) init() {
	for _, v := range s.nodes {
		s.distances[v] = Infinity
		s.previous[v] = Predecessor{}
	}
	s.distances[s.source] = 0

	mustQueue(s.queue.Push(s.source, 0))
	for _, v := range s.nodes {
		if v != s.source {
			mustQueue(s.queue.Push(v, Infinity))
		}
	}
}

// run is the main loop: settle the closest unsettled node, then relax its
// edges. Only this loop is timed.
func (s *Solver) run() {
	start := time.Now()

	for !s.queue.IsEmpty() {
		current, d, err := s.queue.PopEntry()
		mustQueue(err)

		// Everything left is unreachable; relaxing from Infinity would overflow.
		if d == Infinity {
			break
		}
		s.settled++

		for _, n := range s.neighbors(current) {
			w := s.graph[current][n]
			if w >= Infinity-d {
				continue
			}
			alt := d + w
			if alt >= s.distances[n] {
				continue
			}

			s.distances[n] = alt
			s.previous[n] = Predecessor{Node: current, Valid: true}
			s.relaxations++
			// A settled target is no longer queued; with non-negative weights
			// this branch is never reached for one, so the error is ignored.
			_ = s.queue.ChangePriority(n, alt)
		}
	}

	s.elapsed = time.Since(start)

	s.logger.Debug("dijkstra run complete",
		"source", s.source,
		"directed", s.directed,
		"nodes", len(s.nodes),
		"settled", s.settled,
		"relaxations", s.relaxations,
		"elapsed", s.elapsed,
	)
}

// neighbors returns the relaxation targets of u in ascending order. Directed
// graphs get every outgoing edge; undirected graphs only the targets still in
// the queue, since a settled node's distance is already final.
func (s *Solver) neighbors(u int) []int {
	all := s.graph.Neighbors(u)
	if s.directed {
		return all
	}

	open := all[:0]
	for _, v := range all {
		if s.queue.Contains(v) {
			open = append(open, v)
		}
	}

	return open
}

// mustQueue panics on a queue error the solver's own bookkeeping rules out.
func mustQueue(err error) {
	if err != nil {
		panic(fmt.Sprintf("dijkstra: queue invariant violated: %v", err))
	}
}
