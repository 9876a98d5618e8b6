package config_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplan/config"
	"github.com/katalvlaran/tourplan/core"
	"github.com/katalvlaran/tourplan/mission"
)

func TestLoadGrid(t *testing.T) {
	f, err := config.Load(filepath.Join("testdata", "mission.yaml"))
	require.NoError(t, err)
	require.Equal(t, "1", f.Start)
	require.Equal(t, []string{"3", "9", "7"}, f.Checkpoints)
	require.NotNil(t, f.BiasWeight)
	require.Equal(t, 5.0, *f.BiasWeight)
	require.Empty(t, f.Warnings())

	g, coords, m, err := f.Build()
	require.NoError(t, err)
	require.Equal(t, 9, g.VertexCount())
	require.Equal(t, 24, g.EdgeCount())
	require.Len(t, coords, 9)
	require.Equal(t, 2, m.RequiredResources)
	require.True(t, m.GuidePaths["9"].Contains("8"))

	nb, err := g.Neighbors("5")
	require.NoError(t, err)
	require.Len(t, nb, 4)
	require.Equal(t, "2", nb[0].ID)
}

// TestGridPlan runs the loaded mission end to end.
func TestGridPlan(t *testing.T) {
	f, err := config.Load(filepath.Join("testdata", "mission.yaml"))
	require.NoError(t, err)
	g, coords, m, err := f.Build()
	require.NoError(t, err)

	opts := append(f.MissionOptions(), mission.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	plan, err := mission.Run(context.Background(), g, coords, m, opts...)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3", "6", "9", "8", "7"}, plan.Route)
	require.Equal(t, []string{"3", "9"}, plan.Collected)
	require.Equal(t, mission.StatusComplete, plan.Status)
	require.Empty(t, plan.Warnings)
	require.InDelta(t, 600.0, plan.Length(coords), 1e-9)
	require.Equal(t, [][]string{{"1", "2", "3"}, {"3", "6", "9"}, {"9", "8", "7"}}, plan.Legs())
}

func TestParseDefaults(t *testing.T) {
	f, err := config.Parse([]byte(`
start: a
checkpoints: [b]
nodes:
  a: [0, 0]
  b: [3, 4]
edges:
  a: [[b]]
`))
	require.NoError(t, err)
	require.Nil(t, f.BiasWeight)
	require.Empty(t, f.MissionOptions())
	require.Empty(t, f.SearchOptions())

	g, _, m, err := f.Build()
	require.NoError(t, err)
	require.True(t, g.HasEdge("a", "b"))
	require.False(t, g.HasEdge("b", "a"), "adjacency lists are directed")
	require.Nil(t, m.GuidePaths)

	nb, err := g.Neighbors("a")
	require.NoError(t, err)
	require.Equal(t, 1.0, nb[0].Weight)
}

func TestParseTuning(t *testing.T) {
	f, err := config.Parse([]byte(`
start: a
bias_weight: 0
penalty: 10
max_expansions: 7
nodes:
  a: [0, 0]
`))
	require.NoError(t, err)
	require.Len(t, f.MissionOptions(), 3)
	require.Len(t, f.SearchOptions(), 3)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"empty", "", config.ErrEmpty},
		{"unknown key", "start: a\nbogus: 1\nnodes: {a: [0, 0]}\n", config.ErrInvalid},
		{"no start", "nodes: {a: [0, 0]}\n", config.ErrInvalid},
		{"no nodes", "start: a\n", config.ErrInvalid},
		{"short point", "start: a\nnodes: {a: [0]}\n", config.ErrInvalid},
		{"bad edge", "start: a\nnodes: {a: [0, 0]}\nedges: {a: [[b, 1, 2]]}\n", config.ErrInvalid},
		{"negative penalty", "start: a\npenalty: -1\nnodes: {a: [0, 0]}\n", config.ErrInvalid},
		{"empty checkpoint", "start: a\ncheckpoints: ['']\nnodes: {a: [0, 0]}\n", config.ErrInvalid},
		{"unknown start", "start: z\nnodes: {a: [0, 0]}\n", config.ErrUnknownNode},
		{"unknown checkpoint", "start: a\ncheckpoints: [z]\nnodes: {a: [0, 0]}\n", config.ErrUnknownNode},
		{"unknown resource", "start: a\nresources: [z]\nnodes: {a: [0, 0]}\n", config.ErrUnknownNode},
		{"unknown finish", "start: a\nfinish: z\nnodes: {a: [0, 0]}\n", config.ErrUnknownNode},
		{"unknown guide node", "start: a\nnodes: {a: [0, 0]}\nguide_paths: {a: [a, z]}\n", config.ErrUnknownNode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadBroken(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "broken.yaml"))
	require.ErrorIs(t, err, config.ErrInvalid)
	require.Contains(t, err.Error(), "broken.yaml")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.yaml")
	require.NoError(t, os.WriteFile(path, make([]byte, config.MaxFileSize+1), 0o600))
	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrTooLarge)
}

func TestWarnings(t *testing.T) {
	f, err := config.Parse([]byte(`
start: a
checkpoints: [c]
nodes:
  a: [0, 0]
  b: [0, 0]
edges:
  a: [[b], [c]]
`))
	require.NoError(t, err, "an edge endpoint without coordinates is still a known node")
	require.Equal(t, []string{
		"nodes without coordinates: c",
		"nodes share a point: a, b",
	}, f.Warnings())
}

func TestWarningsUnreachable(t *testing.T) {
	f, err := config.Parse([]byte(`
start: a
checkpoints: [b, z, a, z]
nodes:
  a: [0, 0]
  b: [1, 0]
  z: [9, 9]
edges:
  a: [[b]]
  z: [[a]]
`))
	require.NoError(t, err)
	require.Equal(t, []string{"checkpoints unreachable from start: z"}, f.Warnings())
}

// TestBuildRejectsDuplicateEdge: a repeated adjacency entry is a multi-edge.
func TestBuildRejectsDuplicateEdge(t *testing.T) {
	f, err := config.Parse([]byte("start: a\nnodes: {a: [0, 0], b: [1, 0]}\nedges: {a: [[b], [b]]}\n"))
	require.NoError(t, err)
	_, _, _, err = f.Build()
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}
