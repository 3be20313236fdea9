package connection

import (
	"context"
	"errors"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/doitintl/hello/extraction-utility/logger"
)

var ErrStorageInitialization = errors.New("cloud storage initialization error")

func NewCloudStorage(ctx context.Context, log *logger.Logging, opts []option.ClientOption) (*storage.Client, error) {
	gcs, err := storage.NewClient(ctx, opts...)
	if err != nil {
		log.Logger(ctx).Errorf("%s: %s", ErrStorageInitialization, err)
		return nil, ErrStorageInitialization
	}

	return gcs, nil
}
