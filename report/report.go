// Package report turns a finished dijkstra.Solver into plain data and encodes
// it for people (text) or programs (YAML, JSON).
package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/shortpath/dijkstra"
)

// Format selects an encoding for Write.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat converts a format name (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Input describes where the graph came from.
type Input struct {
	File     string `yaml:"file"`
	Rows     int    `yaml:"rows"`
	Vertices int    `yaml:"vertices"`
	Edges    int    `yaml:"edges"`
	Digest   string `yaml:"digest"`
}

// Node is one row of the distance table. Distance and Previous are nil for
// an unreachable node; Previous is also nil for the source.
type Node struct {
	Node     int    `yaml:"node"`
	Distance *int64 `yaml:"distance"`
	Previous *int   `yaml:"previous"`
}

// Path is the route to one requested destination, or the reason there is none.
type Path struct {
	Destination int             `yaml:"destination"`
	Distance    int64           `yaml:"distance,omitempty"`
	Steps       []dijkstra.Step `yaml:"steps,omitempty"`
	Error       string          `yaml:"error,omitempty"`
}

// Result is everything one run produced.
type Result struct {
	Source        int    `yaml:"source"`
	Directed      bool   `yaml:"directed"`
	AlgorithmTime string `yaml:"algorithm_time"`
	Input         *Input `yaml:"input,omitempty"`
	Nodes         []Node `yaml:"nodes"`
	Paths         []Path `yaml:"paths,omitempty"`
}

// Build collects the tables of s, in ascending node order, and the path to
// every destination, in the order given.
func Build(s *dijkstra.Solver, destinations []int) Result {
	res := Result{
		Source:        s.Source(),
		Directed:      s.Directed(),
		AlgorithmTime: s.AlgorithmTime().String(),
	}

	dist := s.Distances()
	prev := s.Previous()
	nodes := make([]int, 0, len(dist))
	for v := range dist {
		nodes = append(nodes, v)
	}
	sort.Ints(nodes)

	res.Nodes = make([]Node, 0, len(nodes))
	for _, v := range nodes {
		row := Node{Node: v}
		if d := dist[v]; d != dijkstra.Infinity {
			row.Distance = &d
		}
		if p := prev[v]; p.Valid {
			n := p.Node
			row.Previous = &n
		}
		res.Nodes = append(res.Nodes, row)
	}

	for _, dst := range destinations {
		p := Path{Destination: dst}
		steps, err := s.ShortestPathTo(dst)
		if err != nil {
			p.Error = err.Error()
		} else {
			p.Steps = steps
			p.Distance = steps[len(steps)-1].Accumulated
		}
		res.Paths = append(res.Paths, p)
	}

	return res
}
