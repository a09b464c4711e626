package commands

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshua-poirier/data-access/storage"
)

// upload stores a local file in the configured S3 bucket.
func uploadCmd() *cobra.Command {
	var file string
	var key string
	var bucket string

	cmd := &cobra.Command{
		Use:     "upload",
		Short:   "Uploads a local file to S3 object storage",
		Example: `  ` + APP + ` upload --file "data/sales.csv" --key "sales/2026-08.csv"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(file) == "" {
				return fmt.Errorf("--file is a required option")
			}

			if strings.TrimSpace(key) == "" {
				return fmt.Errorf("--key is a required option")
			}

			cfg := conf.S3
			if bucket != "" {
				cfg.Bucket = bucket
			}

			ctx := cmd.Context()

			s3, err := storage.NewS3(ctx, cfg)
			if err != nil {
				return err
			}

			f, err := os.Open(file)
			if err != nil {
				return err
			}

			defer f.Close()

			stat, err := f.Stat()
			if err != nil {
				return err
			}

			contentType := mime.TypeByExtension(filepath.Ext(file))
			if contentType == "" {
				contentType = "application/octet-stream"
			}

			infof("Writing %s to S3", file)

			info, err := s3.Put(ctx, key, f, storage.PutOptions{
				Size:        stat.Size(),
				ContentType: contentType,
			})
			if err != nil {
				return err
			}

			infof("Uploaded %s to s3://%s/%s (%v bytes)", file, cfg.Bucket, info.Key, info.Size)

			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Local file to upload")
	cmd.Flags().StringVar(&key, "key", "", "Object key")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Overrides the S3_BUCKET bucket")

	return cmd
}
