package dal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/assert"
)

func TestFileStorePutLocal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	path, err := NewFileStore(nil).Put(context.Background(), dir, "report.json", []byte(`{}`))
	assert.NilError(t, err)
	assert.Equal(t, path, filepath.Join(dir, "report.json"))

	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Equal(t, string(data), `{}`)
}

func TestFileStorePutGCSWithoutClient(t *testing.T) {
	_, err := NewFileStore(nil).Put(context.Background(), "gs://bucket/out", "report.json", nil)
	assert.Assert(t, errors.Is(err, ErrNoStorageClient))
}

func TestSplitGCSPath(t *testing.T) {
	tests := []struct {
		dir        string
		wantBucket string
		wantPrefix string
	}{
		{dir: "gs://bucket", wantBucket: "bucket"},
		{dir: "gs://bucket/", wantBucket: "bucket"},
		{dir: "gs://bucket/a/b/", wantBucket: "bucket", wantPrefix: "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			assert.Assert(t, IsGCSPath(tt.dir))

			bucket, prefix := SplitGCSPath(tt.dir)
			assert.Equal(t, bucket, tt.wantBucket)
			assert.Equal(t, prefix, tt.wantPrefix)
		})
	}

	assert.Assert(t, !IsGCSPath("./output"))
}
