package psv

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r *Reader) []Record {
	t.Helper()
	var out []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, rec)
	}
}

func TestReader_SkipsHeaderAndBlankLines(t *testing.T) {
	input := "SRC|DST|DIST\nA|B|10\n\n   \nc | d |20\n"

	records := readAll(t, NewReader(strings.NewReader(input), false))

	require.Len(t, records, 2)
	assert.Equal(t, Record{Line: 2, Fields: []string{"A", "B", "10"}}, records[0])
	assert.Equal(t, Record{Line: 5, Fields: []string{"c", "d", "20"}}, records[1])
}

func TestReader_StripSpace(t *testing.T) {
	input := "header\nJ F K | L A X|1 0\n"

	records := readAll(t, NewReader(strings.NewReader(input), true))

	require.Len(t, records, 1)
	assert.Equal(t, []string{"JFK", "LAX", "10"}, records[0].Fields)
}

func TestReader_VariableFieldCount(t *testing.T) {
	input := "h\nA|B\nA|B|C|D\n"

	records := readAll(t, NewReader(strings.NewReader(input), false))

	require.Len(t, records, 2)
	assert.Len(t, records[0].Fields, 2)
	assert.Len(t, records[1].Fields, 4)
}

func TestReader_HeaderOnly(t *testing.T) {
	records := readAll(t, NewReader(strings.NewReader("SRC|DST|DIST\n"), false))
	assert.Empty(t, records)
}
