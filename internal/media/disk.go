package media

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"socialsphere/internal/domain"
)

var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DiskStore writes images under a local directory and serves them from a
// base URL path. File names are fresh UUIDs so URLs never collide.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Dir is the directory served at the store's base URL.
func (s *DiskStore) Dir() string { return s.dir }

func (s *DiskStore) Save(ctx context.Context, data []byte, contentType string) (string, error) {
	ext, ok := extByContentType[contentType]
	if !ok {
		return "", domain.Validationf("unsupported image type %q", contentType)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", domain.Dependencyf(err, "generate media id")
	}

	name := id.String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", domain.Dependencyf(err, "write media file")
	}

	return s.baseURL + "/" + name, nil
}

func (s *DiskStore) Delete(ctx context.Context, url string) error {
	// Refuse anything that is not a bare file name under the media dir.
	if strings.Contains(url, "..") {
		return domain.Validationf("malformed media url %q", url)
	}
	name := path.Base(url)
	if name == "" || name == "." || name == "/" {
		return domain.Validationf("malformed media url %q", url)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return domain.Dependencyf(err, "delete media file")
	}
	return nil
}
