package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/rs/zerolog"

	"github.com/connecta/agency-system/internal/api/metrics"
	"github.com/connecta/agency-system/internal/core/domain"
	"github.com/connecta/agency-system/internal/core/ports"
)

// ContractService stores contract documents in the blob store and embeds
// the contract terms in the owning user's document.
type ContractService struct {
	users ports.UserRepository
	files ports.FileStore
	log   zerolog.Logger
}

func NewContractService(users ports.UserRepository, files ports.FileStore, log zerolog.Logger) *ContractService {
	return &ContractService{users: users, files: files, log: log}
}

// Add hashes the contract bytes, stores the file with the hash in its
// metadata, and pushes the contract entry onto the user document. The
// user may be addressed by ID or username.
func (s *ContractService) Add(ctx context.Context, userIdentifier string, input ports.AddContractInput) (*domain.ContractEntry, error) {
	user, err := s.findUser(ctx, userIdentifier)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(input.Data)
	fileHash := hex.EncodeToString(sum[:])

	fileID, err := s.files.Upload(ctx, input.Filename, input.Data, map[string]string{
		"contract_hash": fileHash,
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to store contract file")
		return nil, err
	}

	entry := domain.ContractEntry{
		ID:       generateRecordID("ctr"),
		Name:     input.Name,
		Value:    input.Value,
		DueDate:  input.DueDate,
		Status:   domain.ContractActive,
		FileID:   fileID,
		FileHash: fileHash,
	}

	if err := s.users.PushContract(ctx, user.ID, entry); err != nil {
		// the orphaned blob is reclaimable; the user document stays consistent
		_ = s.files.Delete(ctx, fileID)
		return nil, err
	}

	s.log.Info().Str("contract_id", entry.ID).Str("user_id", user.ID).Msg("contract added")
	return &entry, nil
}

// DownloadFile returns the stored contract document after recomputing its
// hash against the one recorded at upload time.
func (s *ContractService) DownloadFile(ctx context.Context, userID, contractID string) (*ports.StoredFile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var entry *domain.ContractEntry
	for i := range user.Contracts {
		if user.Contracts[i].ID == contractID {
			entry = &user.Contracts[i]
			break
		}
	}
	if entry == nil {
		return nil, domain.ErrContractNotFound
	}

	file, err := s.files.Download(ctx, entry.FileID)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(file.Data)
	if hex.EncodeToString(sum[:]) != entry.FileHash {
		metrics.ContractIntegrityFailuresTotal.Inc()
		s.log.Error().Str("contract_id", contractID).Str("file_id", entry.FileID).Msg("stored contract bytes do not match recorded hash")
		return nil, domain.ErrContractCorrupted
	}

	return file, nil
}

func (s *ContractService) findUser(ctx context.Context, identifier string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	return s.users.FindByUsername(ctx, identifier)
}
