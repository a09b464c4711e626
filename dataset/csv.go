package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Read decodes a table from r using the given format.
func Read(r io.Reader, format Format, opts ReadOptions) (*Table, error) {
	switch format {
	case TSV:
		return ReadTSV(r, opts)

	case XLSX:
		return ReadXLSX(r, opts)

	default:
		return ReadCSV(r, opts)
	}
}

// ReadFile decodes a table from a local file, inferring the format from the
// file extension.
func ReadFile(path string, opts ReadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return Read(bufio.NewReader(f), FormatForPath(path), opts)
}

// ReadCSV decodes a comma-separated table. opts.Comma overrides the field
// delimiter.
func ReadCSV(r io.Reader, opts ReadOptions) (*Table, error) {
	decoder := csv.NewReader(r)
	decoder.FieldsPerRecord = -1
	decoder.TrimLeadingSpace = opts.TrimLeadingSpace

	if opts.Comma != 0 {
		decoder.Comma = opts.Comma
	}

	rows, err := decoder.ReadAll()
	if err != nil {
		return nil, err
	}

	return build(rows)
}

// ReadTSV decodes a tab-separated table.
func ReadTSV(r io.Reader, opts ReadOptions) (*Table, error) {
	opts.Comma = '\t'

	return ReadCSV(r, opts)
}

// WriteCSV encodes a table as comma-separated values.
func WriteCSV(w io.Writer, table *Table) error {
	return write(w, table, ',')
}

// WriteTSV encodes a table as tab-separated values.
func WriteTSV(w io.Writer, table *Table) error {
	return write(w, table, '\t')
}

func write(w io.Writer, table *Table, comma rune) error {
	if table == nil || len(table.Header) == 0 {
		return fmt.Errorf("missing/invalid header row")
	}

	encoder := csv.NewWriter(w)
	encoder.Comma = comma

	encoder.Write(table.Header)
	for _, record := range table.Records {
		encoder.Write(record)
	}

	encoder.Flush()

	return encoder.Error()
}
