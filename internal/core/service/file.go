package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/connecta/agency-system/internal/api/metrics"
	"github.com/connecta/agency-system/internal/core/ports"
)

// FileService wraps the blob store for plain upload/download use.
type FileService struct {
	store ports.FileStore
	log   zerolog.Logger
}

func NewFileService(store ports.FileStore, log zerolog.Logger) *FileService {
	return &FileService{store: store, log: log}
}

func (s *FileService) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	id, err := s.store.Upload(ctx, filename, data, nil)
	if err != nil {
		s.log.Error().Err(err).Str("filename", filename).Msg("upload failed")
		return "", err
	}
	metrics.FilesUploadedTotal.Inc()
	s.log.Info().Str("file_id", id).Str("filename", filename).Int("bytes", len(data)).Msg("file stored")
	return id, nil
}

func (s *FileService) Download(ctx context.Context, id string) (*ports.StoredFile, error) {
	file, err := s.store.Download(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.FilesDownloadedTotal.Inc()
	return file, nil
}
