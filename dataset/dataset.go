// Package dataset implements the in-memory table that all data sources and
// sinks read and write. A Table is a header row plus a rectangular list of
// string records - the codecs in this package convert between tables and
// CSV/TSV files, XLSX workbooks and Google Sheets value ranges.
package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies the on-disk encoding of a table.
type Format int

const (
	CSV Format = iota
	TSV
	XLSX
)

// Table is a tabular dataset - a header row and the data records below it.
// Records are rectangular: every record has exactly len(Header) fields.
type Table struct {
	Header  []string
	Records [][]string
}

// ReadOptions tunes the decoders. The zero value reads a comma-separated
// file with no leniency.
type ReadOptions struct {
	Comma            rune   // field delimiter, ',' if unset
	TrimLeadingSpace bool   // strip leading whitespace from fields
	Sheet            string // XLSX worksheet name, first sheet if unset
}

// FormatForPath infers the table format from a file extension. Unrecognised
// extensions default to CSV, matching the behaviour of the Drive source.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return TSV
	case ".xlsx":
		return XLSX
	default:
		return CSV
	}
}

// Index maps normalised column names to their positions in the header.
func (t *Table) Index() map[string]int {
	index := map[string]int{}
	for i, h := range t.Header {
		index[normalise(h)] = i
	}

	return index
}

// Column returns the values for the named column. The lookup is case and
// whitespace insensitive.
func (t *Table) Column(name string) ([]string, bool) {
	ix, ok := t.Index()[normalise(name)]
	if !ok {
		return nil, false
	}

	column := make([]string, len(t.Records))
	for i, record := range t.Records {
		column[i] = record[ix]
	}

	return column, true
}

// build assembles a Table from raw rows, validating the header and padding
// short records so that the result is rectangular.
func build(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	// .. build index
	index := map[string]int{}
	for i, v := range rows[0] {
		k := normalise(v)
		if _, ok := index[k]; ok {
			return nil, fmt.Errorf("duplicate column name '%s'", v)
		}

		index[k] = i
	}

	// ... header
	header := make([]string, len(rows[0]))
	for i, v := range rows[0] {
		header[i] = clean(v)
	}

	if len(header) == 0 {
		return nil, fmt.Errorf("missing/invalid header row")
	}

	// ... records
	records := [][]string{}
	for _, row := range rows[1:] {
		record := make([]string, len(header))
		for i := range record {
			if i < len(row) {
				record[i] = clean(row[i])
			}
		}

		records = append(records, record)
	}

	return &Table{
		Header:  header,
		Records: records,
	}, nil
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}
