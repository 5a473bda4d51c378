// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// GraphHeader is the header line of a route graph file.
const GraphHeader = "SOURCE|DESTINATION|DISTANCE"

// DataHeader is the header line of a flight data file.
const DataHeader = "SOURCE|DESTINATION|DISTANCE|SIZE|" +
	"MAX_ECON_BASIC|MAX_ECON_PLUS|MAX_BUSINESS|MAX_FIRST|" +
	"FILLED_ECON_BASIC|FILLED_ECON_PLUS|FILLED_BUSINESS|FILLED_FIRST|" +
	"PRICE_ECON_BASIC|PRICE_ECON_PLUS|PRICE_BUSINESS|PRICE_FIRST"

// WriteFile writes content to name inside a fresh temporary directory and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test file %s: %v", name, err)
	}
	return path
}

// PSV joins a header and rows into pipe-separated file content.
func PSV(header string, rows ...string) string {
	return strings.Join(append([]string{header}, rows...), "\n") + "\n"
}

// Properties renders values as sorted KEY=VALUE lines.
func Properties(values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(values[k])
		b.WriteByte('\n')
	}
	return b.String()
}

// LargeFlightRow is a data row for a large aircraft flying 100 units with ten seats
// sold in every section at 10, 15, 20 and 25: revenue 700, cost 3100 at the default
// fuel cost and senior pay, profit -2400.
func LargeFlightRow(src, dst string) string {
	return src + "|" + dst + "|100|L|10|10|10|10|10|10|10|10|10|15|20|25"
}
