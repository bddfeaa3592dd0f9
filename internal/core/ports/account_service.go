package ports

import (
	"context"

	"github.com/connecta/agency-system/internal/core/domain"
)

// RegisterInput carries all data needed to create a user account.
type RegisterInput struct {
	Name     string
	Username string
	Email    string
	CPF      string
	Password string
	Role     string
	Title    string
}

// AccountService defines use-case operations on user accounts.
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	ListClients(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
