package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshua-poirier/data-access/dataset"
	"github.com/joshua-poirier/data-access/gsheets"
)

// get downloads a Google Sheets range to a local TSV/CSV file.
func getCmd() *cobra.Command {
	var url string
	var area string
	var file string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Retrieves a Google Sheets worksheet range and stores it to a local file",
		Example: `  ` + APP + ` --debug get --credentials "credentials.json" \
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

			spreadsheet, err := gsheets.SpreadsheetIDFromURL(url)
			if err != nil {
				return err
			}

			debugf("Spreadsheet - ID:%s  range:%s", spreadsheet, area)

			ctx := cmd.Context()

			google, err := sheetsService(ctx)
			if err != nil {
				return err
			}

			response, err := gsheets.GetRange(ctx, google, spreadsheet, area)
			if err != nil {
				return err
			}

			table, err := dataset.FromValueRange(response)
			if err != nil {
				return err
			}

			tmp, err := os.CreateTemp(os.TempDir(), "data-access")
			if err != nil {
				return err
			}

			defer func() {
				tmp.Close()
				os.Remove(tmp.Name())
			}()

			switch dataset.FormatForPath(file) {
			case dataset.CSV:
				err = dataset.WriteCSV(tmp, table)

			case dataset.TSV:
				err = dataset.WriteTSV(tmp, table)

			case dataset.XLSX:
				err = dataset.WriteXLSX(tmp, table, "")
			}

			if err != nil {
				return fmt.Errorf("error creating file (%w)", err)
			}

			tmp.Close()

			if dir := filepath.Dir(file); dir != "." {
				if err := os.MkdirAll(dir, 0770); err != nil {
					return err
				}
			}

			if err := os.Rename(tmp.Name(), file); err != nil {
				return err
			}

			infof("Retrieved %v rows to file %s", len(table.Records), file)

			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Spreadsheet URL")
	cmd.Flags().StringVar(&area, "range", "", "Spreadsheet range e.g. 'Sales!A2:E'")
	cmd.Flags().StringVar(&file, "file", time.Now().Format("2006-01-02T150405.tsv"), "Output file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	return cmd
}
