package ports

import "context"

// StoredFile is a blob retrieved from the file store along with the
// filename it was uploaded under.
type StoredFile struct {
	ID       string
	Name     string
	Data     []byte
	Metadata map[string]string
}

// FileStore defines identifier-addressed binary storage for contracts and
// media. Download returns domain.ErrFileNotFound for unknown identifiers.
type FileStore interface {
	Upload(ctx context.Context, filename string, data []byte, metadata map[string]string) (string, error)
	Download(ctx context.Context, id string) (*StoredFile, error)
	Delete(ctx context.Context, id string) error
}
