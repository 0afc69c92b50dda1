package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SeedQuery(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "report.txt")
	dump := filepath.Join(dir, "network.txt")

	var out, logs bytes.Buffer
	err := run(context.Background(), []string{"-from", "Thane", "-to", "Chennai", "-report", report, "-dump", dump, "-analyze"}, &out, &logs)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Graph Analysis:")
	assert.Contains(t, out.String(), "Most connected city: Mumbai (10 connections)")
	assert.Contains(t, out.String(), "Path: Thane -> Mumbai -> Chennai")
	assert.Contains(t, out.String(), "Total comparison time:")

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Algorithm: Floyd-Warshall\nPath: Thane -> Mumbai -> Chennai\nTotal Distance: 1063.00 km\n")

	// The dump loads back as the same network.
	out.Reset()
	err = run(context.Background(), []string{"-network", dump, "-from", "Pune", "-to", "Mumbai", "-algorithm", "bfs"}, &out, &logs)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Algorithm: BFS\nPath: Pune -> Mumbai\n")
	assert.NotContains(t, out.String(), "Algorithm: DFS")
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	cities := filepath.Join(dir, "cities.txt")
	routes := filepath.Join(dir, "routes.txt")
	require.NoError(t, os.WriteFile(cities, []byte("Pune 18.5204 73.8567\nMumbai 19.0760 72.8777\nNashik 19.9975 73.7898\n"), 0o600))
	require.NoError(t, os.WriteFile(routes, []byte("Pune Mumbai 148 2.5\nMumbai Nashik 167 4\nbad row\n"), 0o600))

	var out, logs bytes.Buffer
	err := run(context.Background(), []string{"-cities", cities, "-routes", routes, "-from", "Pune", "-to", "Nashik", "-algorithm", "dijkstra"}, &out, &logs)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Path: Pune -> Mumbai -> Nashik\nTotal Distance: 315.00 km\nTotal Time: 6.50 hours\n")
	assert.Contains(t, logs.String(), "skipped=1")
}

func TestRun_Errors(t *testing.T) {
	var out, logs bytes.Buffer
	assert.Error(t, run(context.Background(), []string{"-from", "Pune"}, &out, &logs))
	assert.Error(t, run(context.Background(), []string{"-from", "Pune", "-to", "Mumbai", "-algorithm", "teleport"}, &out, &logs))
	assert.Error(t, run(context.Background(), []string{"-cities", filepath.Join(t.TempDir(), "missing.txt")}, &out, &logs))
}
