package supabase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
)

// UploadObject stores data at bucket/path without overwriting. Returns
// ErrObjectExists if the key is already taken.
func (c *Client) UploadObject(ctx context.Context, bucket, path string, data []byte, contentType string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build storage upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")
	c.authorize(req, c.serviceRoleKey, c.serviceRoleKey)

	if err := c.send(req, "storage", "upload", nil); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			return ErrObjectExists
		}
		return err
	}
	return nil
}

// PublicObjectURL derives the publicly fetchable URL for an object. This
// is a pure derivation from the project base URL; no network call is made.
func (c *Client) PublicObjectURL(bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, path)
}

type removeRequest struct {
	Prefixes []string `json:"prefixes"`
}

// RemoveObjects deletes the given object paths from a bucket.
func (c *Client) RemoveObjects(ctx context.Context, bucket string, paths []string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s", c.baseURL, bucket)
	return c.doJSON(ctx, "storage", "remove", http.MethodDelete, endpoint,
		c.serviceRoleKey, c.serviceRoleKey,
		removeRequest{Prefixes: paths}, nil)
}
