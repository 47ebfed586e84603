// Package media is the opaque image-storage collaborator. The rest of
// the system only ever sees URLs; it never learns where the bytes live.
package media

import "context"

// Store saves uploaded image bytes and later deletes them by the URL it
// handed out. Delete is best-effort: callers log a failure and move on,
// it never fails the operation that triggered it.
type Store interface {
	Save(ctx context.Context, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}
