// internal/platform/di/secret_provider_sm.go
package di

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// resolveSecret reads the latest version of a Secret Manager secret.
// secretID may be a bare id (resolved under projectID) or a full
// "projects/.../secrets/.../versions/..." resource name.
func resolveSecret(ctx context.Context, sm *secretmanager.Client, projectID, secretID string) (string, error) {
	if sm == nil {
		return "", errors.New("di: secret manager client is nil")
	}

	sid := strings.TrimSpace(secretID)
	if sid == "" {
		return "", errors.New("di: secret id is empty")
	}

	name := sid
	if !strings.HasPrefix(sid, "projects/") {
		prj := strings.TrimSpace(projectID)
		if prj == "" {
			return "", errors.New("di: projectID is empty (set GCP_PROJECT_ID)")
		}
		name = "projects/" + prj + "/secrets/" + sid + "/versions/latest"
	}

	resp, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", errors.New("di: AccessSecretVersion failed (" + name + "): " + err.Error())
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.New("di: empty secret payload (" + name + ")")
	}

	return strings.TrimSpace(string(resp.Payload.Data)), nil
}
