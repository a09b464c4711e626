// Package gsheets wraps the Google Sheets API calls shared by the CLI
// commands - spreadsheet and worksheet lookup, range reads, batch updates
// and row pruning.
package gsheets

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/joshua-poirier/data-access/config"
)

// Scope is the OAuth2 scope required for read/write spreadsheet access.
const Scope = "https://www.googleapis.com/auth/spreadsheets"

var (
	spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)
	region         = regexp.MustCompile(`(.+?)!([a-zA-Z]+)([0-9]+):([a-zA-Z]+)([0-9]+)?`)
)

// Range is a decomposed spreadsheet range reference e.g. 'Sales!A2:E'.
type Range struct {
	Sheet  string
	Left   string
	Top    int
	Right  string
	Bottom int // 0 for an open-ended range
}

// NewService creates a Sheets service from an authorised HTTP client.
func NewService(ctx context.Context, client *http.Client) (*sheets.Service, error) {
	service, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return service, nil
}

// NewServiceWithServiceAccount creates a Sheets service authenticated with
// the service account from the environment.
func NewServiceWithServiceAccount(ctx context.Context, sa config.ServiceAccount) (*sheets.Service, error) {
	if err := sa.Validate(); err != nil {
		return nil, err
	}

	key, err := sa.JSON()
	if err != nil {
		return nil, err
	}

	credentials, err := google.CredentialsFromJSON(ctx, key, Scope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials (%w)", err)
	}

	service, err := sheets.NewService(ctx, option.WithCredentials(credentials))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return service, nil
}

// SpreadsheetIDFromURL extracts the spreadsheet ID from a
// docs.google.com/spreadsheets URL.
func SpreadsheetIDFromURL(url string) (string, error) {
	match := spreadsheetURL.FindStringSubmatch(url)
	if len(match) < 2 {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

// ParseRange decomposes a range reference like 'Sales!A2:E99'.
func ParseRange(area string) (Range, error) {
	match := region.FindStringSubmatch(area)
	if len(match) < 5 {
		return Range{}, fmt.Errorf("invalid spreadsheet range '%s'", area)
	}

	top, _ := strconv.Atoi(match[3])
	bottom := 0
	if match[5] != "" {
		bottom, _ = strconv.Atoi(match[5])
	}

	return Range{
		Sheet:  match[1],
		Left:   match[2],
		Top:    top,
		Right:  match[4],
		Bottom: bottom,
	}, nil
}

// GetSpreadsheet fetches the spreadsheet metadata.
func GetSpreadsheet(service *sheets.Service, id string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := service.Spreadsheets.Get(id).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%v)", err)
	}

	return spreadsheet, nil
}

// GetSheet resolves the worksheet referenced by a range. The match on the
// worksheet title is case and whitespace insensitive.
func GetSheet(spreadsheet *sheets.Spreadsheet, area string) (*sheets.Sheet, error) {
	r, err := ParseRange(area)
	if err != nil {
		return nil, err
	}

	name := normalise(r.Sheet)
	for _, sheet := range spreadsheet.Sheets {
		if normalise(sheet.Properties.Title) == name {
			return sheet, nil
		}
	}

	return nil, fmt.Errorf("unable to identify worksheet for '%s'", area)
}

// GetRange reads the cell values for a range.
func GetRange(ctx context.Context, service *sheets.Service, id, area string) (*sheets.ValueRange, error) {
	response, err := service.Spreadsheets.Values.Get(id, area).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%w)", err)
	}

	return response, nil
}

// Clear blanks the given ranges.
func Clear(ctx context.Context, service *sheets.Service, id string, ranges []string) error {
	rq := sheets.BatchClearValuesRequest{
		Ranges: ranges,
	}

	if _, err := service.Spreadsheets.Values.BatchClear(id, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

// Update writes the value ranges in a single batch, interpreting values as
// if they had been typed into the sheet.
func Update(ctx context.Context, service *sheets.Service, id string, data ...*sheets.ValueRange) error {
	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}

	if _, err := service.Spreadsheets.Values.BatchUpdate(id, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

// PruneFloor returns the 0-based row index below which PruneRows should
// delete, for a table of 'records' data rows uploaded with its header on
// the range's 1-based top row. The header occupies row r.Top and the data
// rows r.Top+1 .. r.Top+records, so deletion starts at 0-based index
// r.Top+records (1-based row r.Top+records+1).
func PruneFloor(r Range, records int) int64 {
	return int64(r.Top + records)
}

// PruneRows deletes the worksheet rows below 'floor' (0-based), trimming
// stale records left over from a previous, larger upload.
func PruneRows(ctx context.Context, service *sheets.Service, spreadsheet *sheets.Spreadsheet, sheet *sheets.Sheet, floor int64) error {
	if sheet.Properties.GridProperties.RowCount <= floor {
		return nil
	}

	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				DeleteDimension: &sheets.DeleteDimensionRequest{
					Range: &sheets.DimensionRange{
						SheetId:    sheet.Properties.SheetId,
						Dimension:  "ROWS",
						StartIndex: floor,
					},
				},
			},
		},
	}

	if _, err := service.Spreadsheets.BatchUpdate(spreadsheet.SpreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("error pruning worksheet (%w)", err)
	}

	return nil
}

func normalise(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
