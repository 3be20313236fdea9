package dal

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/doitintl/hello/extraction-utility/common"
)

const (
	gcsScheme = "gs://"

	dirPerm  = 0o755
	filePerm = 0o644
)

var ErrNoStorageClient = errors.New("gcs output directory requires a storage client")

// FileStore writes outputs under a local directory or a gs://bucket/prefix.
type FileStore struct {
	gcs *storage.Client
}

// NewFileStore returns a store. gcs may be nil when every output is local.
func NewFileStore(gcs *storage.Client) *FileStore {
	return &FileStore{gcs: gcs}
}

// IsGCSPath reports whether dir points into a bucket.
func IsGCSPath(dir string) bool {
	return strings.HasPrefix(dir, gcsScheme)
}

// SplitGCSPath splits gs://bucket/some/prefix into its bucket and object prefix.
func SplitGCSPath(dir string) (string, string) {
	trimmed := strings.TrimPrefix(dir, gcsScheme)
	bucket, prefix, _ := strings.Cut(trimmed, "/")

	return bucket, common.RemoveLeadingAndTrailingSlashes(prefix)
}

func (s *FileStore) Put(ctx context.Context, dir, name string, data []byte) (string, error) {
	if IsGCSPath(dir) {
		return s.putObject(ctx, dir, name, data)
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", err
	}

	p := filepath.Join(dir, name)

	if err := os.WriteFile(p, data, filePerm); err != nil {
		return "", err
	}

	return p, nil
}

func (s *FileStore) putObject(ctx context.Context, dir, name string, data []byte) (string, error) {
	if s.gcs == nil {
		return "", ErrNoStorageClient
	}

	bucket, prefix := SplitGCSPath(dir)
	if bucket == "" {
		return "", errors.New("gcs output directory has no bucket")
	}

	object := path.Join(prefix, name)

	w := s.gcs.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType(name)

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", err
	}

	if err := w.Close(); err != nil {
		return "", err
	}

	return gcsScheme + bucket + "/" + object, nil
}

func contentType(name string) string {
	switch filepath.Ext(name) {
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
