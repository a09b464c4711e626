package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshua-poirier/data-access/gdrive"
	"github.com/joshua-poirier/data-access/gsheets"
)

// authorise runs the OAuth2 flow up front so that subsequent commands find
// a cached token and never prompt.
func authoriseCmd() *cobra.Command {
	var url string
	var scope string

	cmd := &cobra.Command{
		Use:     "authorise",
		Short:   "Authorises " + APP + " to access Google Sheets and Drive",
		Example: `  ` + APP + ` authorise --credentials "credentials.json" --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(credentials) == "" {
				return fmt.Errorf("--credentials is a required option")
			}

			if strings.TrimSpace(url) == "" {
				return fmt.Errorf("--url is a required option")
			}

			if _, err := gsheets.SpreadsheetIDFromURL(url); err != nil {
				return err
			}

			s := gsheets.Scope
			if scope == "drive" {
				s = gdrive.Scope
			}

			if _, err := authorize(credentials, s, workdir); err != nil {
				return fmt.Errorf("authentication/authorization error (%w)", err)
			}

			infof("Authorised %s for scope %s", APP, s)

			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Spreadsheet URL")
	cmd.Flags().StringVar(&scope, "scope", "sheets", "OAuth2 scope to authorise ('sheets' or 'drive')")

	return cmd
}
