package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplan/astar"
)

var (
	gridFile     = filepath.Join("testdata", "grid.yaml")
	degradedFile = filepath.Join("testdata", "degraded.yaml")
)

// tourplan runs the command line and returns stdout and stderr.
func tourplan(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestPlanText(t *testing.T) {
	out, _, err := tourplan(t, "plan", "-f", gridFile)
	require.NoError(t, err)
	require.Contains(t, out, ": complete\n")
	require.Contains(t, out, "route: 1 2 3 6 9 8 7\n")
	require.Contains(t, out, "length: 600.00\n")
	require.Contains(t, out, "collected: [3 9] (2/2)\n")
	require.Contains(t, out, "#2 9 -> 7 planned: 9 8 7 (guide 9 8 7)\n")
	require.NotContains(t, out, "warning:")
}

func TestPlanJSON(t *testing.T) {
	out, _, err := tourplan(t, "plan", "-f", gridFile, "--json")
	require.NoError(t, err)

	var report struct {
		ID        string     `json:"id"`
		Route     []string   `json:"route"`
		Status    string     `json:"status"`
		Collected []string   `json:"collected"`
		Length    float64    `json:"length"`
		Legs      [][]string `json:"legs"`
		Segments  []struct {
			Outcome string   `json:"outcome"`
			Path    []string `json:"path"`
		} `json:"segments"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.NotEmpty(t, report.ID)
	require.Equal(t, []string{"1", "2", "3", "6", "9", "8", "7"}, report.Route)
	require.Equal(t, "complete", report.Status)
	require.InDelta(t, 600.0, report.Length, 1e-9)
	require.Equal(t, [][]string{{"1", "2", "3"}, {"3", "6", "9"}, {"9", "8", "7"}}, report.Legs)
	require.Len(t, report.Segments, 3)
	require.Equal(t, "planned", report.Segments[0].Outcome)
}

func TestPlanDegraded(t *testing.T) {
	out, logs, err := tourplan(t, "plan", "-f", degradedFile)
	require.NoError(t, err, "a degraded plan is not an error without --strict")
	require.Contains(t, out, ": degraded\n")
	require.Contains(t, out, "route: 1 2 3 10\n")
	require.Contains(t, out, "#1 3 -> 10 fallback: 3 10\n")
	require.Contains(t, logs, "substituting direct jump")

	_, _, err = tourplan(t, "plan", "-f", degradedFile, "--strict")
	require.ErrorIs(t, err, errDegraded)
	require.ErrorIs(t, err, astar.ErrNoPath)
}

func TestSearch(t *testing.T) {
	out, _, err := tourplan(t, "search", "-f", gridFile, "--from", "1", "--to", "9")
	require.NoError(t, err)
	require.Contains(t, out, "path: 1 2 5 6 9\n")
	require.Contains(t, out, "cost: 400.00\n")

	out, _, err = tourplan(t, "search", "-f", gridFile, "--from", "1", "--to", "9", "--guide", "1,4,7,8,9")
	require.NoError(t, err)
	require.Contains(t, out, "path: 1 4 7 8 9\n")

	out, _, err = tourplan(t, "search", "-f", gridFile, "--from", "1", "--to", "3", "--forbid", "2")
	require.NoError(t, err)
	require.Contains(t, out, "path: 1 4 5 6 3\n")
}

func TestSearchNoPath(t *testing.T) {
	out, _, err := tourplan(t, "search", "-f", degradedFile, "--from", "1", "--to", "10")
	require.ErrorIs(t, err, astar.ErrNoPath)
	require.Contains(t, out, "no path 1 -> 10")
}

func TestSearchRequiresEndpoints(t *testing.T) {
	_, _, err := tourplan(t, "search", "-f", gridFile, "--from", "1")
	require.Error(t, err)
}

func TestNearest(t *testing.T) {
	out, _, err := tourplan(t, "nearest", "-f", gridFile, "--x", "190", "--y", "10", "-k", "2")
	require.NoError(t, err)
	require.Equal(t, "3\t14.14\n2\t90.55\n", out)
}

func TestValidate(t *testing.T) {
	out, _, err := tourplan(t, "validate", "-f", gridFile)
	require.NoError(t, err)
	require.Equal(t, "ok: 9 nodes (9 placed), 24 edges, 3 checkpoints\n", out)
}

func TestValidateMissingFile(t *testing.T) {
	_, _, err := tourplan(t, "validate", "-f", filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := tourplan(t, "validate", "-f", gridFile, "--log-level", "loud")
	require.Error(t, err)
}

func TestTraceExportsSpans(t *testing.T) {
	_, logs, err := tourplan(t, "plan", "-f", gridFile, "--trace")
	require.NoError(t, err)
	require.Contains(t, logs, "Sequencer.Plan")
	require.Contains(t, logs, "Sequencer.segment")
}
