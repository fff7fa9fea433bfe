// Package config holds the run configuration of the shortpath command and
// reads it from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/shortpath/internal/logging"
	"github.com/katalvlaran/shortpath/report"
)

// Sentinel errors for configuration problems.
var (
	ErrNoGraph      = errors.New("config: no graph file given")
	ErrNoSource     = errors.New("config: no source node given")
	ErrInvalidComma = errors.New("config: csv comma must be a single character")
)

// CSV controls how the graph file is parsed.
type CSV struct {
	Comma  string `yaml:"comma"`
	Header bool   `yaml:"header"`
}

// Config is one shortpath run.
type Config struct {
	Graph        string `yaml:"graph"`
	Source       *int   `yaml:"source"`
	Directed     bool   `yaml:"directed"`
	Destinations []int  `yaml:"destinations"`
	Format       string `yaml:"format"`
	LogLevel     string `yaml:"log-level"`
	CSV          CSV    `yaml:"csv"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Directed: true,
		Format:   string(report.FormatText),
		LogLevel: "INFO",
		CSV: CSV{
			Comma:  ";",
			Header: true,
		},
	}
}

// Load decodes the YAML file at path over c. Unknown keys are rejected.
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: unable to open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f, yaml.Strict())
	if err = dec.Decode(c); err != nil {
		return fmt.Errorf("config: unable to parse %s: %w", path, err)
	}

	return nil
}

// Validate checks that c describes a runnable job.
func (c *Config) Validate() error {
	if c.Graph == "" {
		return ErrNoGraph
	}
	if c.Source == nil {
		return ErrNoSource
	}
	if utf8.RuneCountInString(c.CSV.Comma) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidComma, c.CSV.Comma)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", err, c.LogLevel)
	}

	return nil
}

// Comma returns the CSV separator as a rune. Call after Validate.
func (c *Config) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Comma)
	return r
}
