package ports

import "context"

// FileService defines upload/download use cases over the blob store.
type FileService interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
	Download(ctx context.Context, id string) (*StoredFile, error)
}
