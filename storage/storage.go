// Package storage writes and reads datasets in S3-compatible object
// storage. Implementations stream - a table is encoded on the fly and never
// staged on local disk.
package storage

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/joshua-poirier/data-access/dataset"
)

// PutOptions are the optional parameters for an upload. Size is the exact
// object size if known, -1 otherwise.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is an object storage client bound to a single bucket.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (ObjectInfo, error)
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// PutTable encodes a table as CSV and uploads it under the given key.
func PutTable(ctx context.Context, s Storage, key string, table *dataset.Table) (ObjectInfo, error) {
	var b bytes.Buffer
	if err := dataset.WriteCSV(&b, table); err != nil {
		return ObjectInfo{}, err
	}

	opts := PutOptions{
		Size:        int64(b.Len()),
		ContentType: "text/csv",
	}

	return s.Put(ctx, key, &b, opts)
}

// GetTable downloads an object and decodes it as a table, inferring the
// format from the key's extension.
func GetTable(ctx context.Context, s Storage, key string, opts dataset.ReadOptions) (*dataset.Table, error) {
	r, _, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	defer r.Close()

	return dataset.Read(r, dataset.FormatForPath(key), opts)
}
