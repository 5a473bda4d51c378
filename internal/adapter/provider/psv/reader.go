// Package psv reads pipe-separated text files whose first line is a header.
package psv

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"unicode"
)

// Delimiter separates the fields of a record.
const Delimiter = '|'

// Record is one data line.
type Record struct {
	// Line is the 1-based line number in the input
	Line int

	// Fields are the values between delimiters
	Fields []string
}

// Reader yields the records after the header. Blank lines are skipped.
type Reader struct {
	csv        *csv.Reader
	stripSpace bool
	header     bool
}

// NewReader wraps r. When stripSpace is true all whitespace inside each field is removed,
// otherwise fields are only trimmed.
func NewReader(r io.Reader, stripSpace bool) *Reader {
	c := csv.NewReader(r)
	c.Comma = Delimiter
	c.FieldsPerRecord = -1
	c.LazyQuotes = true
	return &Reader{csv: c, stripSpace: stripSpace}
}

// Next returns the next record, or io.EOF when the input is exhausted.
func (r *Reader) Next() (Record, error) {
	for {
		fields, err := r.csv.Read()
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// Malformed quoting is reported with its line so callers can skip it.
				return Record{Line: parseErr.Line}, err
			}
			return Record{}, err
		}
		line, _ := r.csv.FieldPos(0)

		if !r.header {
			r.header = true
			continue
		}

		blank := true
		for i, f := range fields {
			fields[i] = r.clean(f)
			if fields[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		return Record{Line: line, Fields: fields}, nil
	}
}

func (r *Reader) clean(s string) string {
	if !r.stripSpace {
		return strings.TrimSpace(s)
	}
	return strings.Map(func(c rune) rune {
		if unicode.IsSpace(c) {
			return -1
		}
		return c
	}, s)
}

// IsRecordError reports whether err concerns a single record rather than the input as a whole.
func IsRecordError(err error) bool {
	var parseErr *csv.ParseError
	return errors.As(err, &parseErr)
}
