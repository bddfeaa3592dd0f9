package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/connecta/agency-system/internal/core/domain"
	"github.com/connecta/agency-system/internal/core/ports"
)

// 111.444.777-68 passes the checksum; see cpf_test.go in the domain package.
const testCPF = "11144477768"

func registerInput() ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Alice Souza",
		Username: "alice",
		Email:    "alice@example.com",
		CPF:      testCPF,
		Password: "pass1234",
		Role:     domain.RoleEmployee,
		Title:    "Designer",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if user.PasswordHash == "pass1234" {
		t.Fatalf("password stored in plaintext")
	}
	if !CheckPassword("pass1234", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if user.Status != "active" {
		t.Fatalf("expected active status, got %s", user.Status)
	}
}

func TestAccountService_Register_InvalidCPF(t *testing.T) {
	svc := NewAccountService(newStubUserRepo(), zerolog.Nop())

	input := registerInput()
	input.CPF = "11111111111"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrInvalidCPF) {
		t.Fatalf("expected ErrInvalidCPF, got %v", err)
	}
}

func TestAccountService_Register_InvalidRole(t *testing.T) {
	svc := NewAccountService(newStubUserRepo(), zerolog.Nop())

	input := registerInput()
	input.Role = "superuser"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAccountService_Register_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	input := registerInput()
	input.Email = "other@example.com"
	input.CPF = "12345678900"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	input := registerInput()
	input.Username = "bob"
	input.CPF = "12345678900"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAccountService_Register_DuplicateCPF(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	input := registerInput()
	input.Username = "bob"
	input.Email = "bob@example.com"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrCPFTaken) {
		t.Fatalf("expected ErrCPFTaken, got %v", err)
	}
}

func TestAccountService_ListClients(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	input := registerInput()
	input.Role = domain.RoleClient
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	clients, err := svc.ListClients(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(clients) != 1 || clients[0].Role != domain.RoleClient {
		t.Fatalf("unexpected clients: %+v", clients)
	}
}
