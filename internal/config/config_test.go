package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/internal/config"
	"github.com/katalvlaran/shortpath/internal/logging"
	"github.com/katalvlaran/shortpath/report"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
graph: data.csv
source: 5950
directed: false
destinations: [9583, 4907]
format: yaml
log-level: DEBUG
csv:
  comma: ","
  header: false
`)
	c := config.Default()
	require.NoError(t, c.Load(path))
	require.NoError(t, c.Validate())

	assert.Equal(t, "data.csv", c.Graph)
	require.NotNil(t, c.Source)
	assert.Equal(t, 5950, *c.Source)
	assert.False(t, c.Directed)
	assert.Equal(t, []int{9583, 4907}, c.Destinations)
	assert.Equal(t, "yaml", c.Format)
	assert.Equal(t, ',', c.Comma())
	assert.False(t, c.CSV.Header)
}

func TestLoadKeepsDefaults(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Load(writeFile(t, "graph: g.csv\nsource: 0\n")))
	require.NoError(t, c.Validate())

	assert.Equal(t, 0, *c.Source)
	assert.True(t, c.Directed)
	assert.Equal(t, ';', c.Comma())
	assert.True(t, c.CSV.Header)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	c := config.Default()
	err := c.Load(writeFile(t, "graph: g.csv\nsorce: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse")
}

func TestLoadMissingFile(t *testing.T) {
	err := config.Default().Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	src := 1
	base := func() *config.Config {
		c := config.Default()
		c.Graph = "g.csv"
		c.Source = &src
		return c
	}

	require.NoError(t, base().Validate())

	c := base()
	c.Graph = ""
	require.ErrorIs(t, c.Validate(), config.ErrNoGraph)

	c = base()
	c.Source = nil
	require.ErrorIs(t, c.Validate(), config.ErrNoSource)

	c = base()
	c.CSV.Comma = ";;"
	require.ErrorIs(t, c.Validate(), config.ErrInvalidComma)

	c = base()
	c.Format = "xml"
	require.ErrorIs(t, c.Validate(), report.ErrUnknownFormat)

	c = base()
	c.LogLevel = "LOUD"
	require.ErrorIs(t, c.Validate(), logging.ErrInvalidLevel)
}
