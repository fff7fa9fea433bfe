package csvgraph

import "errors"

// Sentinel errors returned by the loader.
var (
	// ErrEmptyInput indicates the input had no edge records.
	ErrEmptyInput = errors.New("csvgraph: no edge records in input")

	// ErrMalformedRow indicates a record that could not be parsed as an edge.
	ErrMalformedRow = errors.New("csvgraph: malformed row")
)

// Stats describes one loaded input.
type Stats struct {
	Rows     int    // edge records read, header excluded
	Vertices int    // distinct node IDs
	Edges    int    // logical edges after de-duplication
	Digest   uint64 // xxhash64 of the raw input
}

// Options configures parsing.
type Options struct {
	Comma    rune // field separator
	Header   bool // skip the first record
	Directed bool // rows are one-way edges
}

// Option represents a functional option for configuring Read.
type Option func(*Options)

// WithComma sets the field separator.
func WithComma(r rune) Option {
	return func(o *Options) { o.Comma = r }
}

// WithHeader sets whether the first record is a header.
func WithHeader(header bool) Option {
	return func(o *Options) { o.Header = header }
}

// WithDirected sets whether each row is a one-way edge (true) or a two-way edge.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// DefaultOptions returns ';'-separated, header-first, directed parsing.
func DefaultOptions() Options {
	return Options{
		Comma:    ';',
		Header:   true,
		Directed: true,
	}
}
