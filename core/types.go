package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Adjacency maps a node to its neighbours and the weight of the edge towards each.
//
// adj[u][v] == w means an edge u→v of weight w. A key with an empty (or nil)
// inner map is an isolated node.
type Adjacency map[int]map[int]int64

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a thread-safe builder for an Adjacency.
//
// mu guards adj and edgeCount.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // one-way edges
	allowLoops bool // allow self-loops

	// Storage
	adj       Adjacency
	edgeCount int // logical edges: an undirected edge counts once
}

// NewGraph creates an empty Graph. By default it is undirected without loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adj: make(Adjacency)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
