package connection

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/doitintl/hello/extraction-utility/logger"
	"github.com/doitintl/hello/extraction-utility/secretmanager"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

var ErrCredentials = errors.New("credentials initialization error")

// LogCredentialSource reports which credential the clients were built with.
func LogCredentialSource(l logger.ILogger, source string) {
	if source == "" {
		l.Warning("service_account_file is empty, using application default credentials")
		return
	}

	l.Infof("using credentials from %s", source)
}

// ClientOptions resolves the service account credential. An empty source
// falls back to application default credentials. The source is either a
// secret resource name, with or without a version, or a key file path.
func ClientOptions(ctx context.Context, source string) ([]option.ClientOption, error) {
	if source == "" {
		return nil, nil
	}

	var data []byte

	if name, ok := secretmanager.ResolveVersionName(source); ok {
		secret, err := secretmanager.AccessSecretVersion(ctx, name)
		if err != nil {
			switch status.Code(err) {
			case codes.NotFound:
				return nil, fmt.Errorf("%w: secret %s not found", ErrCredentials, source)
			case codes.PermissionDenied:
				return nil, fmt.Errorf("%w: access to secret %s denied", ErrCredentials, source)
			}

			return nil, fmt.Errorf("%w: %s: %v", ErrCredentials, source, err)
		}

		data = secret
	} else {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("%w: service account file %s: %v", ErrCredentials, source, err)
		}

		data = b
	}

	creds, err := google.CredentialsFromJSON(ctx, data, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCredentials, source, err)
	}

	return []option.ClientOption{option.WithCredentials(creds)}, nil
}
