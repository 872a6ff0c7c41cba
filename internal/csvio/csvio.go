// Package csvio reads CSV trade files as header-addressable rows.
//
// Files sometimes start with a Unicode byte order mark; the reader strips it
// transparently before parsing. Columns may occur in any order and are
// addressed by case-sensitive header name.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Row is one record of a CSV file, addressed by header name.
// Rows are read-only and valid until the next call to Reader.Read.
type Row struct {
	headers map[string]int
	fields  []string
	line    int
}

// LineNumber returns the 1-based physical line on which the row starts.
// The header occupies line 1, so the first data row reports line 2; rows
// with quoted embedded newlines advance the count by every line they span.
func (r Row) LineNumber() int { return r.line }

// GetField returns the value of the named column.
// The lookup fails if the header is not present in the file; an empty cell
// under a present header returns "" with no error.
func (r Row) GetField(name string) (string, error) {
	idx, ok := r.headers[name]
	if !ok {
		return "", fmt.Errorf("header not found: %q", name)
	}
	if idx >= len(r.fields) {
		return "", nil
	}
	return r.fields[idx], nil
}

// FindField returns the trimmed value of the named column and whether the
// column exists with a non-empty value.
func (r Row) FindField(name string) (string, bool) {
	idx, ok := r.headers[name]
	if !ok || idx >= len(r.fields) {
		return "", false
	}
	v := strings.TrimSpace(r.fields[idx])
	return v, v != ""
}

// Reader iterates the rows of one CSV source, forward-only.
type Reader struct {
	csv     *csv.Reader
	headers map[string]int
	names   []string
	line    int
}

// Open wraps the source in a BOM-stripping decoder, reads the header line,
// and returns a row reader. It fails if the source has no header row.
func Open(src io.Reader) (*Reader, error) {
	decoded := transform.NewReader(src, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty source: no header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	headers := make(map[string]int, len(header))
	names := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		names[i] = h
		// first occurrence wins on duplicate headers
		if _, dup := headers[h]; !dup {
			headers[h] = i
		}
	}
	hline, _ := cr.FieldPos(0)
	return &Reader{csv: cr, headers: headers, names: names, line: hline}, nil
}

// Headers returns the column names in file order.
func (r *Reader) Headers() []string { return r.names }

// ContainsHeader reports whether the named column is present (case-sensitive).
func (r *Reader) ContainsHeader(name string) bool {
	_, ok := r.headers[name]
	return ok
}

// Read returns the next row, or io.EOF when the source is exhausted.
func (r *Reader) Read() (Row, error) {
	rec, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			return Row{}, io.EOF
		}
		return Row{}, fmt.Errorf("read row after line %d: %w", r.line, err)
	}
	line, _ := r.csv.FieldPos(0)
	r.line = line
	return Row{headers: r.headers, fields: rec, line: line}, nil
}
