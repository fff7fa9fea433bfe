package csvgraph

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/shortpath/core"
)

// Read parses an edge list from r into a new graph.
//
// Errors:
//   - ErrMalformedRow (wrapped with the line number) for short records or
//     unparsable fields.
//   - ErrEmptyInput if no edge record was found.
//   - underlying read or CSV syntax errors, wrapped.
func Read(r io.Reader, opts ...Option) (*core.Graph, Stats, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	digest := xxhash.New()
	cr := csv.NewReader(io.TeeReader(r, digest))
	cr.Comma = cfg.Comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	g := core.NewGraph(core.WithDirected(cfg.Directed), core.WithLoops())
	var stats Stats
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, Stats{}, fmt.Errorf("csvgraph: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if cfg.Header {
				continue
			}
		}

		from, to, w, err := parseEdge(rec)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}
		if err = g.AddEdge(from, to, w); err != nil {
			return nil, Stats{}, fmt.Errorf("csvgraph: line %d: %w", line, err)
		}
		stats.Rows++
	}
	if stats.Rows == 0 {
		return nil, Stats{}, ErrEmptyInput
	}

	stats.Vertices = g.VertexCount()
	stats.Edges = g.EdgeCount()
	stats.Digest = digest.Sum64()

	return g, stats, nil
}

// ReadFile opens path and calls Read on it.
func ReadFile(path string, opts ...Option) (*core.Graph, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("csvgraph: %w", err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// parseEdge converts the first three fields of rec into an edge.
func parseEdge(rec []string) (from, to int, w int64, err error) {
	if len(rec) < 3 {
		return 0, 0, 0, fmt.Errorf("want 3 fields, got %d", len(rec))
	}
	if from, err = strconv.Atoi(strings.TrimSpace(rec[0])); err != nil {
		return 0, 0, 0, fmt.Errorf("origin %q: %w", rec[0], err)
	}
	if to, err = strconv.Atoi(strings.TrimSpace(rec[1])); err != nil {
		return 0, 0, 0, fmt.Errorf("destination %q: %w", rec[1], err)
	}
	if w, err = parseWeight(strings.TrimSpace(rec[2])); err != nil {
		return 0, 0, 0, fmt.Errorf("weight %q: %w", rec[2], err)
	}

	return from, to, w, nil
}

// parseWeight accepts an integer, or a float with no fractional part.
func parseWeight(s string) (int64, error) {
	if w, err := strconv.ParseInt(s, 10, 64); err == nil {
		return w, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, errors.New("not an integer")
	}

	return int64(f), nil
}
