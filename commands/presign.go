package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshua-poirier/data-access/storage"
)

// presign generates a time-limited download URL for an object in the
// configured S3 bucket.
func presignCmd() *cobra.Command {
	var key string
	var bucket string
	var expiry time.Duration

	cmd := &cobra.Command{
		Use:     "presign",
		Short:   "Generates a time-limited download URL for an S3 object",
		Example: `  ` + APP + ` presign --key "sales/2026-08.csv" --expiry 24h`,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			url, err := s3.PresignGet(ctx, key, expiry)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", url)

			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Object key")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Overrides the S3_BUCKET bucket")
	cmd.Flags().DurationVar(&expiry, "expiry", 7*24*time.Hour, "Lifetime of the generated URL")

	return cmd
}
