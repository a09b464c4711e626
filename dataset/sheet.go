package dataset

import (
	"fmt"
	"regexp"
	"strconv"

	"google.golang.org/api/sheets/v4"
)

var area = regexp.MustCompile(`(.+?)!([a-zA-Z]+)([0-9]+):([a-zA-Z]+)([0-9]+)?`)

// FromValueRange builds a table from a Google Sheets value range. The first
// row is taken as the header and every cell is formatted as a string.
func FromValueRange(data *sheets.ValueRange) (*Table, error) {
	if data == nil || len(data.Values) == 0 {
		return nil, fmt.Errorf("empty sheet")
	}

	rows := make([][]string, len(data.Values))
	for i, row := range data.Values {
		record := make([]string, len(row))
		for j, v := range row {
			if s, ok := v.(string); ok {
				record[j] = s
			} else {
				record[j] = fmt.Sprintf("%v", v)
			}
		}

		rows[i] = record
	}

	return build(rows)
}

// ToValueRanges splits a table into a header value range on the top row of
// the spreadsheet range and a data value range immediately below it, ready
// for a batch update.
func ToValueRanges(table *Table, region string) (*sheets.ValueRange, *sheets.ValueRange, error) {
	if table == nil || len(table.Header) == 0 {
		return nil, nil, fmt.Errorf("missing/invalid header row")
	}

	match := area.FindStringSubmatch(region)
	if len(match) < 5 {
		return nil, nil, fmt.Errorf("invalid spreadsheet range '%s'", region)
	}

	name := match[1]
	left := match[2]
	top, _ := strconv.Atoi(match[3])
	right := match[4]

	// ... header
	h := make([]any, len(table.Header))
	for i, v := range table.Header {
		h[i] = v
	}

	header := sheets.ValueRange{
		Range:  fmt.Sprintf("%s!%s%v:%s%v", name, left, top, right, top),
		Values: [][]any{h},
	}

	// ... data
	rows := make([][]any, 0, len(table.Records))
	for _, record := range table.Records {
		row := make([]any, len(record))
		for i, v := range record {
			row[i] = v
		}

		rows = append(rows, row)
	}

	data := sheets.ValueRange{
		Range:  fmt.Sprintf("%s!%s%v:%s", name, left, top+1, right),
		Values: rows,
	}

	return &header, &data, nil
}
