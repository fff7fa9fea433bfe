package core

import (
	"fmt"
	"sort"
)

// Directed reports whether the graph stores one-way edges.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// AddVertex inserts an isolated vertex if missing. Adding an existing vertex is a no-op.
// Complexity: O(1)
func (g *Graph) AddVertex(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensure(id)
}

// AddEdge inserts (or re-weights) the edge from→to. Both endpoints are created
// on demand. In an undirected graph the mirror edge to→from is written too.
// Returns ErrLoopNotAllowed for from == to unless WithLoops was given.
// Complexity: O(1)
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: vertex %d", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensure(from)
	g.ensure(to)
	if _, exists := g.adj[from][to]; !exists {
		g.edgeCount++
	}
	g.adj[from][to] = weight
	if !g.directed {
		g.adj[to][from] = weight
	}

	return nil
}

// RemoveEdge deletes the edge from→to (and its mirror in an undirected graph).
// Returns ErrEdgeNotFound if the edge does not exist.
func (g *Graph) RemoveEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[from][to]; !ok {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}
	delete(g.adj[from], to)
	if !g.directed {
		delete(g.adj[to], from)
	}
	g.edgeCount--

	return nil
}

// HasVertex reports whether id is a vertex of the graph.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]
	return ok
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[from][to]
	return ok
}

// Weight returns the weight of from→to, or ErrEdgeNotFound.
func (g *Graph) Weight(from, to int) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adj[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// NeighborIDs returns the targets of id's outgoing edges in ascending order.
// Returns ErrVertexNotFound for an unknown vertex.
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return sortedKeys(nbrs), nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of logical edges; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Adjacency returns a deep copy of the graph's adjacency mapping.
// Complexity: O(V + E)
func (g *Graph) Adjacency() Adjacency {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj.Clone()
}

// ensure registers an empty neighbour bucket for id. Caller holds mu.
func (g *Graph) ensure(id int) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[int]int64)
	}
}
