package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshua-poirier/data-access/config"
	"github.com/joshua-poirier/data-access/dataset"
)

// memStorage is an in-memory Storage for exercising the table helpers.
type memStorage struct {
	objects map[string][]byte
	types   map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{
		objects: map[string][]byte{},
		types:   map[string]string{},
	}
}

func (m *memStorage) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (ObjectInfo, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return ObjectInfo{}, err
	}

	m.objects[key] = b
	m.types[key] = opts.ContentType

	return ObjectInfo{Key: key, Size: int64(len(b)), ContentType: opts.ContentType}, nil
}

func (m *memStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	b, ok := m.objects[key]
	if !ok {
		return nil, ObjectInfo{}, fmt.Errorf("object '%s' not found", key)
	}

	info := ObjectInfo{Key: key, Size: int64(len(b)), ContentType: m.types[key]}

	return io.NopCloser(bytes.NewReader(b)), info, nil
}

func (m *memStorage) Delete(ctx context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func (m *memStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "https://storage.local/" + key, nil
}

func TestPutTable(t *testing.T) {
	table := dataset.Table{
		Header: []string{"Region", "Product", "Units"},
		Records: [][]string{
			{"north", "widget", "120"},
			{"south", "gadget", "75"},
		},
	}

	s := newMemStorage()

	info, err := PutTable(context.Background(), s, "sales/2026-08.csv", &table)
	require.NoError(t, err)

	assert.Equal(t, "text/csv", info.ContentType)
	assert.Equal(t, "Region,Product,Units\nnorth,widget,120\nsouth,gadget,75\n", string(s.objects["sales/2026-08.csv"]))
}

func TestGetTable(t *testing.T) {
	s := newMemStorage()
	s.objects["sales/2026-08.csv"] = []byte("Region,Product\nnorth,widget\n")

	table, err := GetTable(context.Background(), s, "sales/2026-08.csv", dataset.ReadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Region", "Product"}, table.Header)
	assert.Len(t, table.Records, 1)
}

func TestGetTableWithMissingObject(t *testing.T) {
	s := newMemStorage()

	_, err := GetTable(context.Background(), s, "qwerty.csv", dataset.ReadOptions{})
	assert.Error(t, err)
}

func TestNewS3Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.S3
	}{
		{"missing endpoint", config.S3{}},
		{"missing credentials", config.S3{Endpoint: "s3.amazonaws.com"}},
		{"missing bucket", config.S3{Endpoint: "s3.amazonaws.com", AccessKey: "AKIAQWERTYUIOP", SecretKey: "hunter2"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewS3(context.Background(), test.cfg)
			assert.Error(t, err)
		})
	}
}
