package dijkstra

import (
	"fmt"
	"time"
)

// Source returns the node the solver ran from.
func (s *Solver) Source() int { return s.source }

// Directed reports whether the run treated the graph as directed.
func (s *Solver) Directed() bool { return s.directed }

// Nodes returns every node of the graph in ascending order.
func (s *Solver) Nodes() []int {
	out := make([]int, len(s.nodes))
	copy(out, s.nodes)

	return out
}

// Distances returns a copy of the distance table. Unreached nodes map to Infinity.
func (s *Solver) Distances() map[int]int64 {
	out := make(map[int]int64, len(s.distances))
	for v, d := range s.distances {
		out[v] = d
	}

	return out
}

// Previous returns a copy of the predecessor table.
func (s *Solver) Previous() map[int]Predecessor {
	out := make(map[int]Predecessor, len(s.previous))
	for v, p := range s.previous {
		out[v] = p
	}

	return out
}

// Distance returns the distance to v, and false if v is not a node.
func (s *Solver) Distance(v int) (int64, bool) {
	d, ok := s.distances[v]
	return d, ok
}

// Reachable reports whether v is a node with a path from the source.
func (s *Solver) Reachable(v int) bool {
	d, ok := s.distances[v]
	return ok && d != Infinity
}

// AlgorithmTime returns the wall-clock time of the main loop, excluding setup.
func (s *Solver) AlgorithmTime() time.Duration { return s.elapsed }

// Settled returns how many nodes were settled with a finite distance.
func (s *Solver) Settled() int { return s.settled }

// ShortestPathTo rebuilds the path from the source to dst by walking the
// predecessor table backwards.
//
// The first step is the source with Weight 0 and Accumulated 0; the last is dst
// with Accumulated equal to its distance. A path to the source itself has one step.
//
// Errors:
//   - ErrUnknownNode if dst is not a node.
//   - ErrUnreachable if dst has no path from the source.
//
// Complexity: O(path length)
func (s *Solver) ShortestPathTo(dst int) ([]Step, error) {
	d, ok := s.distances[dst]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, dst)
	}
	if d == Infinity {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dst)
	}

	// 1) Collect nodes from dst back to the source.
	back := []int{dst}
	for v := dst; v != s.source; {
		p := s.previous[v]
		if !p.Valid || len(back) > len(s.nodes) {
			return nil, fmt.Errorf("%w: %d (broken predecessor chain at %d)", ErrUnreachable, dst, v)
		}
		v = p.Node
		back = append(back, v)
	}

	// 2) Reverse into source→dst order, deriving each edge weight from the
	//    difference of accumulated distances.
	steps := make([]Step, len(back))
	for i := range steps {
		node := back[len(back)-1-i]
		steps[i] = Step{Node: node, Accumulated: s.distances[node]}
		if i > 0 {
			steps[i].Weight = steps[i].Accumulated - steps[i-1].Accumulated
		}
	}

	return steps, nil
}
