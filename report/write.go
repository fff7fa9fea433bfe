package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
)

// Write encodes r to w in format f.
func Write(w io.Writer, r Result, f Format) error {
	switch f {
	case FormatText:
		return writeText(w, r)
	case FormatYAML:
		return writeEncoded(w, r)
	case FormatJSON:
		return writeEncoded(w, r, yaml.JSON())
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

func writeEncoded(w io.Writer, r Result, opts ...yaml.EncodeOption) error {
	b, err := yaml.MarshalWithOptions(r, opts...)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}

// writeText prints the tables the way an operator reads them at a terminal.
func writeText(w io.Writer, r Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	mode := "undirected"
	if r.Directed {
		mode = "directed"
	}
	fmt.Fprintf(tw, "Source:\t%d (%s)\n", r.Source, mode)
	if r.Input != nil {
		fmt.Fprintf(tw, "Input:\t%s (%d rows, %d vertices, %d edges, xxh64 %s)\n",
			r.Input.File, r.Input.Rows, r.Input.Vertices, r.Input.Edges, r.Input.Digest)
	}
	fmt.Fprintf(tw, "Time of calculation:\t%s\n\n", r.AlgorithmTime)

	fmt.Fprintln(tw, "NODE\tDISTANCE\tPREVIOUS")
	for _, n := range r.Nodes {
		dist, prev := "unreachable", "-"
		if n.Distance != nil {
			dist = fmt.Sprint(*n.Distance)
		}
		if n.Previous != nil {
			prev = fmt.Sprint(*n.Previous)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", n.Node, dist, prev)
	}

	for _, p := range r.Paths {
		fmt.Fprintf(tw, "\nShortest path to %d:\n", p.Destination)
		if p.Error != "" {
			fmt.Fprintf(tw, "  %s\n", p.Error)
			continue
		}
		fmt.Fprintln(tw, "NODE\tWEIGHT\tACCUMULATED")
		for _, st := range p.Steps {
			fmt.Fprintf(tw, "%d\t%d\t%d\n", st.Node, st.Weight, st.Accumulated)
		}
	}

	return tw.Flush()
}
