package csvgraph_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/csvgraph"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// referenceCSV is the six-node road fixture in the loader's default format.
const referenceCSV = `origin;destination;weight
2944;3948;945
2944;4907;980
2944;5950;850
3948;5950;1328
3948;9583;510
3948;6068;772
3948;2944;945
4907;2944;980
4907;9583;1152
5950;6068;1272
5950;2944;850
6068;3948;772
9583;3948;510
9583;6068;885
9583;2944;1445
`

func TestRead_ReferenceFixture(t *testing.T) {
	g, stats, err := csvgraph.Read(strings.NewReader(referenceCSV))
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.Equal(t, 15, stats.Rows)
	assert.Equal(t, 6, stats.Vertices)
	assert.Equal(t, 15, stats.Edges)
	assert.Equal(t, xxhash.Sum64String(referenceCSV), stats.Digest)

	s, err := dijkstra.FromGraph(g, 5950)
	require.NoError(t, err)
	d, _ := s.Distance(9583)
	assert.Equal(t, int64(2305), d)
}

func TestRead_UndirectedMirrorsRows(t *testing.T) {
	in := "a;b;w\n1;2;5\n"
	g, stats, err := csvgraph.Read(strings.NewReader(in), csvgraph.WithDirected(false))
	require.NoError(t, err)
	assert.True(t, g.HasEdge(2, 1))
	assert.Equal(t, 1, stats.Edges)
}

func TestRead_CommaNoHeaderFloatWeights(t *testing.T) {
	in := "1, 2, 3.0\n2,3,4,extra column\n\n"
	g, stats, err := csvgraph.Read(strings.NewReader(in),
		csvgraph.WithComma(','),
		csvgraph.WithHeader(false),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Rows)

	w, err := g.Weight(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), w)
}

func TestRead_SelfLoopAccepted(t *testing.T) {
	g, _, err := csvgraph.Read(strings.NewReader("h\n4;4;1\n"))
	require.NoError(t, err)
	assert.True(t, g.HasEdge(4, 4))
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
		line string
	}{
		{"header only", "origin;destination;weight\n", csvgraph.ErrEmptyInput, ""},
		{"empty", "", csvgraph.ErrEmptyInput, ""},
		{"short row", "h\n1;2;3\n1;2\n", csvgraph.ErrMalformedRow, "line 3"},
		{"bad origin", "h\nx;2;3\n", csvgraph.ErrMalformedRow, "line 2"},
		{"bad destination", "h\n1;y;3\n", csvgraph.ErrMalformedRow, "line 2"},
		{"fractional weight", "h\n1;2;3.5\n", csvgraph.ErrMalformedRow, "line 2"},
		{"text weight", "h\n1;2;far\n", csvgraph.ErrMalformedRow, "line 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := csvgraph.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
			if tc.line != "" {
				assert.Contains(t, err.Error(), tc.line)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(referenceCSV), 0o600))

	g, stats, err := csvgraph.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 15, stats.Rows)

	_, _, err = csvgraph.ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
