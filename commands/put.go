package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshua-poirier/data-access/dataset"
	"github.com/joshua-poirier/data-access/gsheets"
)

// put uploads a local TSV/CSV/XLSX file to a Google Sheets range, replacing
// whatever the range held before.
func putCmd() *cobra.Command {
	var url string
	var area string
	var file string
	var noPrune bool

	cmd := &cobra.Command{
		Use:   "put",
		Short: "Uploads a local file to a Google Sheets worksheet range",
		Example: `  ` + APP + ` --debug put --credentials "credentials.json" \
               --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \
               --range "Sales!A2:E" \
               --file "sales.tsv"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !serviceAccount && strings.TrimSpace(credentials) == "" {
				return fmt.Errorf("--credentials is a required option")
			}

			if strings.TrimSpace(url) == "" {
				return fmt.Errorf("--url is a required option")
			}

			if strings.TrimSpace(area) == "" {
				return fmt.Errorf("--range is a required option")
			}

			if strings.TrimSpace(file) == "" {
				return fmt.Errorf("--file is a required option")
			}

			spreadsheetId, err := gsheets.SpreadsheetIDFromURL(url)
			if err != nil {
				return err
			}

			debugf("Spreadsheet - ID:%s  range:%s", spreadsheetId, area)

			table, err := dataset.ReadFile(file, dataset.ReadOptions{})
			if err != nil {
				return err
			}

			header, data, err := dataset.ToValueRanges(table, area)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			google, err := sheetsService(ctx)
			if err != nil {
				return err
			}

			spreadsheet, err := gsheets.GetSpreadsheet(google, spreadsheetId)
			if err != nil {
				return err
			}

			sheet, err := gsheets.GetSheet(spreadsheet, area)
			if err != nil {
				return err
			}

			infof("Clearing existing data from worksheet")
			if err := gsheets.Clear(ctx, google, spreadsheet.SpreadsheetId, []string{header.Range, data.Range}); err != nil {
				return err
			}

			infof("Uploading %s to worksheet", file)
			if err := gsheets.Update(ctx, google, spreadsheet.SpreadsheetId, header, data); err != nil {
				return err
			}

			if !noPrune {
				r, err := gsheets.ParseRange(area)
				if err != nil {
					return err
				}

				floor := gsheets.PruneFloor(r, len(table.Records))
				if err := gsheets.PruneRows(ctx, google, spreadsheet, sheet, floor); err != nil {
					return err
				}
			}

			infof("Uploaded file %v to Google Sheets %v", file, area)

			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Spreadsheet URL")
	cmd.Flags().StringVar(&area, "range", "", "Spreadsheet range e.g. 'Sales!A2:E'")
	cmd.Flags().StringVar(&file, "file", "", "TSV/CSV/XLSX file to upload")
	cmd.Flags().BoolVar(&noPrune, "no-prune", false, "Disables trimming of stale rows below the uploaded data")

	return cmd
}
