package dataset

import (
	"testing"

	"google.golang.org/api/sheets/v4"
)

func TestFromValueRange(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			{"Region", "Product", "Units"},
			{"north", "widget", float64(120)},
			{"south", "gadget", "75"},
		},
	}

	table, err := FromValueRange(&data)
	if err != nil {
		t.Fatalf("Unexpected error returned from FromValueRange (%v)", err)
	}

	expected := Table{
		Header: []string{"Region", "Product", "Units"},
		Records: [][]string{
			{"north", "widget", "120"},
			{"south", "gadget", "75"},
		},
	}

	compare(t, table, &expected)
}

func TestFromValueRangeWithEmptySheet(t *testing.T) {
	if _, err := FromValueRange(&sheets.ValueRange{}); err == nil {
		t.Fatalf("Expected error return for empty sheet, got %v", err)
	}
}

func TestFromValueRangeWithDuplicatedColumn(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			{"Region", "Product", "Region"},
			{"north", "widget", "north"},
		},
	}

	if _, err := FromValueRange(&data); err == nil {
		t.Fatalf("Expected error return for duplicate column, got %v", err)
	}
}

func TestToValueRanges(t *testing.T) {
	table := Table{
		Header: []string{"Region", "Product"},
		Records: [][]string{
			{"north", "widget"},
			{"south", "gadget"},
		},
	}

	header, data, err := ToValueRanges(&table, "Sales!A2:E")
	if err != nil {
		t.Fatalf("Unexpected error returned from ToValueRanges (%v)", err)
	}

	if header.Range != "Sales!A2:E2" {
		t.Errorf("Incorrect header range - expected:%v, got:%v", "Sales!A2:E2", header.Range)
	}

	if data.Range != "Sales!A3:E" {
		t.Errorf("Incorrect data range - expected:%v, got:%v", "Sales!A3:E", data.Range)
	}

	if len(header.Values) != 1 || len(header.Values[0]) != 2 {
		t.Errorf("Incorrect header values: %v", header.Values)
	}

	if len(data.Values) != 2 {
		t.Errorf("Incorrect data values: %v", data.Values)
	}
}

func TestToValueRangesWithInvalidRange(t *testing.T) {
	table := Table{
		Header: []string{"Region"},
	}

	if _, _, err := ToValueRanges(&table, "qwerty"); err == nil {
		t.Fatalf("Expected error return for invalid range, got %v", err)
	}
}
