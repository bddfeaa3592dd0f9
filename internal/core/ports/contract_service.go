package ports

import (
	"context"
	"time"

	"github.com/connecta/agency-system/internal/core/domain"
)

// AddContractInput carries contract terms plus the raw document to store.
type AddContractInput struct {
	Name     string
	Value    float64
	DueDate  time.Time
	Filename string
	Data     []byte
}

// ContractService defines use-case operations on contracts.
type ContractService interface {
	// Add stores the contract file, hashes it, and appends the contract
	// entry to the user's document. The user may be addressed by ID or
	// username.
	Add(ctx context.Context, userIdentifier string, input AddContractInput) (*domain.ContractEntry, error)

	// DownloadFile returns the stored contract document after verifying
	// its bytes still match the hash recorded at upload time.
	DownloadFile(ctx context.Context, userID, contractID string) (*StoredFile, error)
}
