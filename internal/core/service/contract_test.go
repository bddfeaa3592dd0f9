package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/connecta/agency-system/internal/core/domain"
	"github.com/connecta/agency-system/internal/core/ports"
)

func newContractFixture() (*ContractService, *stubUserRepo, *stubFileStore) {
	users := newStubUserRepo()
	files := newStubFileStore()
	return NewContractService(users, files, zerolog.Nop()), users, files
}

func contractInput(data []byte) ports.AddContractInput {
	return ports.AddContractInput{
		Name:     "Retainer 2026",
		Value:    1500.50,
		DueDate:  time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Filename: "retainer.pdf",
		Data:     data,
	}
}

func TestContractService_Add(t *testing.T) {
	svc, users, files := newContractFixture()
	client, _ := users.Create(context.Background(), &domain.User{Username: "alice", Role: domain.RoleClient})

	data := []byte("contract body")
	entry, err := svc.Add(context.Background(), client.ID, contractInput(data))
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	sum := sha256.Sum256(data)
	wantHash := hex.EncodeToString(sum[:])
	if entry.FileHash != wantHash {
		t.Fatalf("hash mismatch: got %s want %s", entry.FileHash, wantHash)
	}
	if entry.Status != domain.ContractActive {
		t.Fatalf("expected active contract, got %s", entry.Status)
	}

	blob, ok := files.files[entry.FileID]
	if !ok {
		t.Fatalf("contract file not stored")
	}
	if !bytes.Equal(blob.data, data) {
		t.Fatalf("stored bytes differ from input")
	}
	if blob.metadata["contract_hash"] != wantHash {
		t.Fatalf("hash not recorded in file metadata: %v", blob.metadata)
	}

	stored := users.users[client.ID]
	if len(stored.Contracts) != 1 || stored.Contracts[0].ID != entry.ID {
		t.Fatalf("contract entry not pushed onto user: %+v", stored.Contracts)
	}
}

func TestContractService_Add_ByUsername(t *testing.T) {
	svc, users, _ := newContractFixture()
	client, _ := users.Create(context.Background(), &domain.User{Username: "alice", Role: domain.RoleClient})

	entry, err := svc.Add(context.Background(), "alice", contractInput([]byte("x")))
	if err != nil {
		t.Fatalf("add by username failed: %v", err)
	}
	if len(users.users[client.ID].Contracts) != 1 || users.users[client.ID].Contracts[0].ID != entry.ID {
		t.Fatalf("contract not attached to the resolved user")
	}
}

func TestContractService_Add_UnknownUser(t *testing.T) {
	svc, _, files := newContractFixture()

	if _, err := svc.Add(context.Background(), "nobody", contractInput([]byte("x"))); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(files.files) != 0 {
		t.Fatalf("no file should be stored for an unknown user")
	}
}

func TestContractService_DownloadFile(t *testing.T) {
	svc, users, _ := newContractFixture()
	client, _ := users.Create(context.Background(), &domain.User{Username: "alice"})

	data := []byte("contract body")
	entry, err := svc.Add(context.Background(), client.ID, contractInput(data))
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	file, err := svc.DownloadFile(context.Background(), client.ID, entry.ID)
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if !bytes.Equal(file.Data, data) {
		t.Fatalf("downloaded bytes differ from upload")
	}
	if file.Name != "retainer.pdf" {
		t.Fatalf("unexpected filename: %s", file.Name)
	}
}

func TestContractService_DownloadFile_Corrupted(t *testing.T) {
	svc, users, files := newContractFixture()
	client, _ := users.Create(context.Background(), &domain.User{Username: "alice"})

	entry, err := svc.Add(context.Background(), client.ID, contractInput([]byte("original")))
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// tamper with the stored bytes behind the hash's back
	blob := files.files[entry.FileID]
	blob.data = []byte("tampered")
	files.files[entry.FileID] = blob

	if _, err := svc.DownloadFile(context.Background(), client.ID, entry.ID); !errors.Is(err, domain.ErrContractCorrupted) {
		t.Fatalf("expected ErrContractCorrupted, got %v", err)
	}
}

func TestContractService_DownloadFile_UnknownContract(t *testing.T) {
	svc, users, _ := newContractFixture()
	client, _ := users.Create(context.Background(), &domain.User{Username: "alice"})

	if _, err := svc.DownloadFile(context.Background(), client.ID, "ctr-missing"); !errors.Is(err, domain.ErrContractNotFound) {
		t.Fatalf("expected ErrContractNotFound, got %v", err)
	}
}
