// Package cli wires the shortpath command: configuration, graph loading,
// the solver run and the report.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/csvgraph"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/internal/config"
	"github.com/katalvlaran/shortpath/internal/logging"
	"github.com/katalvlaran/shortpath/report"
)

// Version is reported by --version.
var Version = "dev"

type flags struct {
	config   string
	source   int
	directed bool
	to       []int
	format   string
	logLevel string
	logJSON  bool
	comma    string
	noHeader bool
}

// NewCommand returns the root shortpath command.
func NewCommand() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "shortpath [flags] [GRAPH.csv]",
		Short: "Single-source shortest paths over a weighted edge list",
		Long: `Reads a weighted edge list (origin;destination;weight, one edge per row),
runs Dijkstra's algorithm from the source node and prints the distance table,
the predecessor of every node and the shortest path to each requested node.`,
		Version:      Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}
	cmd.CompletionOptions.HiddenDefaultCmd = true

	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "YAML configuration file")
	fl.IntVarP(&f.source, "source", "s", 0, "source node ID")
	fl.BoolVar(&f.directed, "directed", true, "treat rows as one-way edges")
	fl.IntSliceVarP(&f.to, "to", "t", nil, "destination node(s) to print a path for")
	fl.StringVarP(&f.format, "format", "f", string(report.FormatText), "output format: text, yaml or json")
	fl.StringVar(&f.logLevel, "log-level", "INFO", "log level: TRACE, DEBUG, INFO, WARN or ERROR")
	fl.BoolVar(&f.logJSON, "log-json", false, "write logs as JSON")
	fl.StringVar(&f.comma, "comma", ";", "CSV field separator")
	fl.BoolVar(&f.noHeader, "no-header", false, "the CSV has no header row")

	return cmd
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	cfg, err := resolve(cmd, args, f)
	if err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	var logger *slog.Logger
	if f.logJSON {
		logger = logging.NewJSON(cmd.ErrOrStderr(), level)
	} else {
		logger = logging.NewText(cmd.ErrOrStderr(), level)
	}

	g, stats, err := csvgraph.ReadFile(cfg.Graph,
		csvgraph.WithComma(cfg.Comma()),
		csvgraph.WithHeader(cfg.CSV.Header),
		csvgraph.WithDirected(cfg.Directed),
	)
	if err != nil {
		return err
	}
	logger.Info("Graph loaded", "file", cfg.Graph, "rows", stats.Rows,
		"vertices", stats.Vertices, "edges", stats.Edges, "digest", fmt.Sprintf("%016x", stats.Digest))

	s, err := dijkstra.FromGraph(g, *cfg.Source, dijkstra.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("Shortest paths computed", "source", s.Source(), "settled", s.Settled(), "elapsed", s.AlgorithmTime())

	res := report.Build(s, cfg.Destinations)
	res.Input = &report.Input{
		File:     cfg.Graph,
		Rows:     stats.Rows,
		Vertices: stats.Vertices,
		Edges:    stats.Edges,
		Digest:   fmt.Sprintf("%016x", stats.Digest),
	}
	format, _ := report.ParseFormat(cfg.Format)

	return report.Write(cmd.OutOrStdout(), res, format)
}

// resolve layers defaults, the config file, explicit flags and the positional
// graph argument, in that order, and validates the result.
func resolve(cmd *cobra.Command, args []string, f *flags) (*config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		if err := cfg.Load(f.config); err != nil {
			return nil, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("source") {
		src := f.source
		cfg.Source = &src
	}
	if fl.Changed("directed") {
		cfg.Directed = f.directed
	}
	if fl.Changed("to") {
		cfg.Destinations = f.to
	}
	if fl.Changed("format") {
		cfg.Format = f.format
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fl.Changed("comma") {
		cfg.CSV.Comma = f.comma
	}
	if fl.Changed("no-header") {
		cfg.CSV.Header = !f.noHeader
	}
	if len(args) == 1 {
		cfg.Graph = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
