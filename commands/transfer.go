package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshua-poirier/data-access/dataset"
	"github.com/joshua-poirier/data-access/storage"
)

// transfer moves a Google Drive file into S3 as a CSV object without
// staging it on local disk.
func transferCmd() *cobra.Command {
	var name string
	var id string
	var key string
	var bucket string

	cmd := &cobra.Command{
		Use:     "transfer",
		Short:   "Reads a Google Drive file and writes it to S3 as CSV",
		Example: `  ` + APP + ` transfer --service-account --name "sales.xlsx" --key "sales/2026-08.csv"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" && strings.TrimSpace(id) == "" {
				return fmt.Errorf("--name or --id is a required option")
			}

			if strings.TrimSpace(key) == "" {
				return fmt.Errorf("--key is a required option")
			}

			cfg := conf.S3
			if bucket != "" {
				cfg.Bucket = bucket
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

			infof("Reading data from Google Drive")

			table, err := client.Read(ctx)
			if err != nil {
				return err
			}

			s3, err := storage.NewS3(ctx, cfg)
			if err != nil {
				return err
			}

			infof("Writing dataset to S3")

			info, err := storage.PutTable(ctx, s3, key, table)
			if err != nil {
				return err
			}

			infof("Transferred %v rows to s3://%s/%s (%v bytes)", len(table.Records), cfg.Bucket, info.Key, info.Size)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the Drive file (must be shared with the account)")
	cmd.Flags().StringVar(&id, "id", "", "Drive file ID (alternative to --name)")
	cmd.Flags().StringVar(&key, "key", "", "Object key for the CSV in S3")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Overrides the S3_BUCKET bucket")

	return cmd
}
