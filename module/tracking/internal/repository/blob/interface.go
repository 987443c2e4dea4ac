package blob

import "context"

// ImageStore accepts uploaded image bytes and returns a reference that can be
// echoed back to the client and kept alongside the report.
type ImageStore interface {
	Store(ctx context.Context, data []byte, originalName string) (string, error)
}
