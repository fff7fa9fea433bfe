package dijkstra

import (
	"errors"
	"io"
	"log/slog"
	"math"
)

// Infinity is the distance of a node the source cannot reach.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil adjacency mapping was passed to NewSolver.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidSource indicates that the source node does not exist in the graph.
	ErrInvalidSource = errors.New("dijkstra: source node not found in graph")

	// ErrUnknownNode indicates a query for a node that does not exist in the graph.
	ErrUnknownNode = errors.New("dijkstra: node not found in graph")

	// ErrUnreachable indicates that no path leads from the source to the requested node.
	ErrUnreachable = errors.New("dijkstra: destination unreachable from source")
)

// Predecessor is the node preceding another on its best known path.
// Valid is false for the source and for unreachable nodes.
type Predecessor struct {
	Node  int
	Valid bool
}

// Step is one node of a reconstructed path.
//
// Weight is the weight of the edge that led here from the previous step
// (0 for the source); Accumulated is the distance from the source.
type Step struct {
	Node        int   `json:"node" yaml:"node"`
	Weight      int64 `json:"weight" yaml:"weight"`
	Accumulated int64 `json:"accumulated" yaml:"accumulated"`
}

// Options configures a Solver.
//
// Directed – true relaxes every outgoing edge; false (the default) treats the
// graph as undirected and skips neighbours that are already settled.
// Logger   – receives one debug record per run. Defaults to a discarding logger.
type Options struct {
	Directed bool
	Logger   *slog.Logger
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// WithDirected sets whether the graph is directed.
func WithDirected(directed bool) Option {
	return func(o *Options) {
		o.Directed = directed
	}
}

// WithLogger routes run diagnostics to l. A nil l keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an undirected configuration with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Directed: false,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
