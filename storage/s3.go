package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/joshua-poirier/data-access/config"
)

// s3Storage implements Storage against any S3-compatible endpoint (AWS S3,
// MinIO, etc). It is safe for concurrent use.
type s3Storage struct {
	client *minio.Client
	bucket string
}

// NewS3 builds a Storage from the environment settings. Connectivity is
// verified by checking the bucket, which is created if missing.
func NewS3(ctx context.Context, cfg config.S3) (Storage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("S3 endpoint is required")
	}

	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("S3 credentials are required")
	}

	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating S3 client (%w)", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("error checking bucket '%s' (%w)", cfg.Bucket, err)
	}

	if !exists {
		opts := minio.MakeBucketOptions{Region: cfg.Region}
		if err := client.MakeBucket(ctx, cfg.Bucket, opts); err != nil {
			return nil, fmt.Errorf("error creating bucket '%s' (%w)", cfg.Bucket, err)
		}
	}

	return &s3Storage{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

func (s *s3Storage) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (ObjectInfo, error) {
	putOpts := minio.PutObjectOptions{
		ContentType:  opts.ContentType,
		UserMetadata: opts.Metadata,
	}

	info, err := s.client.PutObject(ctx, s.bucket, key, r, opts.Size, putOpts)
	if err != nil {
		return ObjectInfo{}, err
	}

	return ObjectInfo{
		Key:          key,
		Size:         info.Size,
		ETag:         info.ETag,
		ContentType:  opts.ContentType,
		LastModified: time.Now(),
		Metadata:     opts.Metadata,
	}, nil
}

func (s *s3Storage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, err
	}

	stat, err := object.Stat()
	if err != nil {
		object.Close()
		return nil, ObjectInfo{}, err
	}

	info := ObjectInfo{
		Key:          key,
		Size:         stat.Size,
		ETag:         stat.ETag,
		ContentType:  stat.ContentType,
		LastModified: stat.LastModified,
		Metadata:     stat.UserMetadata,
	}

	return object, info, nil
}

func (s *s3Storage) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func (s *s3Storage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", err
	}

	return u.String(), nil
}
