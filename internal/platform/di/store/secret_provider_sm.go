// internal/platform/di/store/secret_provider_sm.go
package store

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// resolveSecret reads the latest version of a Secret Manager secret.
// Used at container build time to fetch the SendGrid API key.
func resolveSecret(ctx context.Context, sm *secretmanager.Client, projectID, secretName string) (string, error) {
	if sm == nil {
		return "", errors.New("di.store: secretmanager client is nil")
	}
	prj := strings.TrimSpace(projectID)
	sec := strings.TrimSpace(secretName)
	if prj == "" || sec == "" {
		return "", errors.New("di.store: projectID/secretName is empty")
	}

	name := "projects/" + prj + "/secrets/" + sec + "/versions/latest"
	resp, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", errors.New("di.store: AccessSecretVersion failed (" + name + "): " + err.Error())
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.New("di.store: empty payload (" + name + ")")
	}

	return strings.TrimSpace(string(resp.Payload.Data)), nil
}
