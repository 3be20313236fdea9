package secretmanager

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
)

const LatestVersion = "latest"

var (
	state = make(map[string][]byte)
	mutex = &sync.Mutex{}

	secretVersionName = regexp.MustCompile(`^projects/[^/]+/secrets/[^/]+/versions/[^/]+$`)
	secretName        = regexp.MustCompile(`^projects/([^/]+)/secrets/([^/]+)$`)
)

// IsSecretVersionName reports whether s is a full secret version resource name,
// projects/{project}/secrets/{secret}/versions/{version}.
func IsSecretVersionName(s string) bool {
	return secretVersionName.MatchString(s)
}

func SecretResourceName(projectID, secret, version string) string {
	return fmt.Sprintf("projects/%s/secrets/%s/versions/%s", projectID, secret, version)
}

// ResolveVersionName returns the secret version name s refers to. A secret name
// without a version resolves to its latest version.
func ResolveVersionName(s string) (string, bool) {
	if IsSecretVersionName(s) {
		return s, true
	}

	m := secretName.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	return SecretResourceName(m[1], m[2], LatestVersion), true
}

// AccessSecretVersion fetches the payload of a secret version. Payloads are cached per process.
func AccessSecretVersion(ctx context.Context, name string, opts ...option.ClientOption) ([]byte, error) {
	if !IsSecretVersionName(name) {
		return nil, fmt.Errorf("invalid secret version name %q", name)
	}

	mutex.Lock()
	v, prs := state[name]
	mutex.Unlock()

	if prs {
		return v, nil
	}

	sm, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	defer sm.Close()

	accessSecretVersionRes, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	data := accessSecretVersionRes.Payload.GetData()

	mutex.Lock()
	state[name] = data
	mutex.Unlock()

	return data, nil
}
