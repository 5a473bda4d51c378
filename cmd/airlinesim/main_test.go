package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out, io.Discard).Run(context.Background(), append([]string{"airlinesim"}, args...))
	return out.String(), err
}

func TestRun_Synthetic(t *testing.T) {
	out, err := runApp(t, "run", "--seed", "7", "--flights", "25", "--size", "L")

	require.NoError(t, err)
	assert.Contains(t, out, "Mode:")
	assert.Contains(t, out, "synthetic")
	assert.Contains(t, out, "Seed:")
	assert.Contains(t, out, "large")
	assert.Regexp(t, `Flights:\s+25\n`, out)
	assert.Contains(t, out, "Average profit per flight:")
}

func TestRun_SameSeedSameTotals(t *testing.T) {
	first, err := runApp(t, "run", "--seed", "42", "--flights", "50")
	require.NoError(t, err)
	second, err := runApp(t, "run", "--seed", "42", "--flights", "50")
	require.NoError(t, err)

	assert.Equal(t, totalsSection(first), totalsSection(second))
}

// totalsSection drops the run ID line, which differs between runs.
func totalsSection(out string) string {
	var keep []string
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "Run:") {
			keep = append(keep, line)
		}
	}
	return strings.Join(keep, "\n")
}

func TestRun_DataMode(t *testing.T) {
	out, err := runApp(t, "run", "--mode", "data", "--route", "bos:jfk", "--route", "BOS")

	require.NoError(t, err)
	assert.Contains(t, out, "Rows read:")
	assert.Contains(t, out, "Average profit BOS -> JFK:")
	assert.Contains(t, out, "BOS: expected SRC:DST")
}

func TestRun_DataFlagImpliesDataMode(t *testing.T) {
	dir := t.TempDir()
	_, err := runApp(t, "defaults", "--dir", dir)
	require.NoError(t, err)

	out, err := runApp(t, "run", "--data", filepath.Join(dir, "default-data"))

	require.NoError(t, err)
	assert.Contains(t, out, "data")
	assert.Contains(t, out, "Rows read:")
}

func TestRun_TopRoutes(t *testing.T) {
	out, err := runApp(t, "run", "--seed", "3", "--flights", "200", "--top", "3")

	require.NoError(t, err)
	i := strings.Index(out, "ROUTE")
	require.GreaterOrEqual(t, i, 0)
	lines := strings.Split(strings.TrimSpace(out[i:]), "\n")
	assert.Len(t, lines, 4)
}

func TestRun_ShowGraph(t *testing.T) {
	out, err := runApp(t, "run", "--seed", "1", "--flights", "5", "--show-graph")

	require.NoError(t, err)
	assert.Contains(t, out, "Vertex: ATL")
	assert.Contains(t, out, "-> BOS(946)")
}

func TestRun_Compare(t *testing.T) {
	out, err := runApp(t, "run", "--seed", "9", "--flights", "20", "--compare", "S,M,L")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "SIZE"))
	assert.True(t, strings.HasPrefix(lines[1], "small"))
	assert.True(t, strings.HasPrefix(lines[2], "medium"))
	assert.True(t, strings.HasPrefix(lines[3], "large"))
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown mode",
			args:    []string{"run", "--mode", "replay"},
			wantErr: `unknown mode "replay"`,
		},
		{
			name:    "unknown size",
			args:    []string{"run", "--size", "XL"},
			wantErr: `unknown aircraft size "XL"`,
		},
		{
			name:    "unknown compare size",
			args:    []string{"run", "--compare", "S,Q"},
			wantErr: `unknown aircraft size "Q"`,
		},
		{
			name:    "missing graph file",
			args:    []string{"run", "--graph", "/nonexistent/graph"},
			wantErr: "no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaults_WritesBundledFiles(t *testing.T) {
	dir := t.TempDir()

	out, err := runApp(t, "defaults", "--dir", dir)

	require.NoError(t, err)
	for _, name := range []string{"default.properties", "default-graph", "default-data"} {
		path := filepath.Join(dir, name)
		assert.Contains(t, out, path)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}
