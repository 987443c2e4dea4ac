package disk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/internal/repository/blob"
)

var _ blob.ImageStore = (*ImageStore)(nil)

// ImageStore writes uploaded images to a local directory. The directory is
// created on first write. References are timestamped filenames, so repeated
// uploads of the same original name do not collide.
type ImageStore struct {
	dir string
	now func() time.Time
}

func NewImageStore(dir string) *ImageStore {
	return &ImageStore{dir: dir, now: time.Now}
}

func (s *ImageStore) Store(_ context.Context, data []byte, originalName string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := filepath.Base(originalName)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "image"
	}
	ref := fmt.Sprintf("%d_%s", s.now().UnixMilli(), name)

	if err := os.WriteFile(filepath.Join(s.dir, ref), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return ref, nil
}
