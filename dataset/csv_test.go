package dataset

import (
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	csv := `Region,Product,Units,Revenue
north, widget ,120,2400.00
south,gadget,75,1893.75
`

	table, err := ReadCSV(strings.NewReader(csv), ReadOptions{})
	if err != nil {
		t.Fatalf("Unexpected error returned from ReadCSV (%v)", err)
	}

	expected := Table{
		Header: []string{"Region", "Product", "Units", "Revenue"},
		Records: [][]string{
			{"north", "widget", "120", "2400.00"},
			{"south", "gadget", "75", "1893.75"},
		},
	}

	compare(t, table, &expected)
}

func TestReadCSVWithRaggedRows(t *testing.T) {
	csv := `Region,Product,Units
north,widget
south,gadget,75,overflow
`

	table, err := ReadCSV(strings.NewReader(csv), ReadOptions{})
	if err != nil {
		t.Fatalf("Unexpected error returned from ReadCSV (%v)", err)
	}

	expected := Table{
		Header: []string{"Region", "Product", "Units"},
		Records: [][]string{
			{"north", "widget", ""},
			{"south", "gadget", "75"},
		},
	}

	compare(t, table, &expected)
}

func TestReadCSVWithEmptyFile(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader(""), ReadOptions{}); err == nil {
		t.Fatalf("Expected error return for empty file, got %v", err)
	}
}

func TestReadCSVWithHeaderOnly(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("Region,Product\n"), ReadOptions{})
	if err != nil {
		t.Fatalf("Unexpected error returned from ReadCSV (%v)", err)
	}

	if len(table.Records) != 0 {
		t.Errorf("Expected 0 records, got %v", len(table.Records))
	}
}

func TestReadCSVWithDuplicateColumn(t *testing.T) {
	csv := `Region,Product,region
north,widget,north
`

	if _, err := ReadCSV(strings.NewReader(csv), ReadOptions{}); err == nil {
		t.Fatalf("Expected error return for duplicate column, got %v", err)
	}
}

func TestReadTSV(t *testing.T) {
	tsv := "Region\tProduct\nnorth\twidget\n"

	table, err := ReadTSV(strings.NewReader(tsv), ReadOptions{})
	if err != nil {
		t.Fatalf("Unexpected error returned from ReadTSV (%v)", err)
	}

	expected := Table{
		Header: []string{"Region", "Product"},
		Records: [][]string{
			{"north", "widget"},
		},
	}

	compare(t, table, &expected)
}

func TestWriteTSV(t *testing.T) {
	expected := `Region	Product	Units
north	widget	120
south	gadget	75
`

	table := Table{
		Header: []string{"Region", "Product", "Units"},
		Records: [][]string{
			{"north", "widget", "120"},
			{"south", "gadget", "75"},
		},
	}

	var f strings.Builder
	if err := WriteTSV(&f, &table); err != nil {
		t.Fatalf("Unexpected error returned from WriteTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestWriteCSVWithMissingHeader(t *testing.T) {
	var f strings.Builder

	if err := WriteCSV(&f, &Table{}); err == nil {
		t.Fatalf("Expected error return for missing header, got %v", err)
	}
}

func TestColumn(t *testing.T) {
	table := Table{
		Header: []string{"Region", "Product", "Units"},
		Records: [][]string{
			{"north", "widget", "120"},
			{"south", "gadget", "75"},
		},
	}

	column, ok := table.Column("product")
	if !ok {
		t.Fatalf("Expected 'Product' column to resolve")
	}

	if len(column) != 2 || column[0] != "widget" || column[1] != "gadget" {
		t.Errorf("Incorrect column values - expected:%v, got:%v", []string{"widget", "gadget"}, column)
	}

	if _, ok := table.Column("qwerty"); ok {
		t.Errorf("Expected missing column lookup to fail")
	}
}

func compare(t *testing.T, table, expected *Table) {
	t.Helper()

	if len(table.Header) != len(expected.Header) {
		t.Fatalf("Incorrect header - expected:%v, got:%v", expected.Header, table.Header)
	}

	for i, v := range expected.Header {
		if table.Header[i] != v {
			t.Fatalf("Incorrect header - expected:%v, got:%v", expected.Header, table.Header)
		}
	}

	if len(table.Records) != len(expected.Records) {
		t.Fatalf("Incorrect records - expected:%v, got:%v", expected.Records, table.Records)
	}

	for i, record := range expected.Records {
		for j, v := range record {
			if table.Records[i][j] != v {
				t.Errorf("Incorrect record %v - expected:%v, got:%v", i, record, table.Records[i])
			}
		}
	}
}
