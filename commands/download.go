package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshua-poirier/data-access/dataset"
)

// download fetches a Google Drive file to local disk.
func downloadCmd() *cobra.Command {
	var name string
	var id string
	var file string

	cmd := &cobra.Command{
		Use:     "download",
		Short:   "Downloads a Google Drive file to local disk",
		Example: `  ` + APP + ` download --service-account --name "sales.csv" --file "data/sales.csv"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" && strings.TrimSpace(id) == "" {
				return fmt.Errorf("--name or --id is a required option")
			}

			ctx := cmd.Context()

			client, err := driveClient(ctx, dataset.ReadOptions{})
			if err != nil {
				return err
			}

			if id != "" {
				client.SetFileID(id)
			} else {
				if err := client.Lookup(ctx, name); err != nil {
					return err
				}

				infof("Found '%s' in Google Drive", name)
			}

			metadata, err := client.Metadata(ctx)
			if err != nil {
				return err
			}

			debugf("Drive file - ID:%s  name:%s  modified:%v", client.FileID(), metadata.Name, metadata.ModifiedAt)

			path, err := client.DownloadToFile(ctx, file)
			if err != nil {
				return err
			}

			infof("'%s' downloaded successfully", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the Drive file (must be shared with the account)")
	cmd.Flags().StringVar(&id, "id", "", "Drive file ID (alternative to --name)")
	cmd.Flags().StringVar(&file, "file", "", "Output path. Defaults to the Drive filename")

	return cmd
}
