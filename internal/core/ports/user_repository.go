package ports

import (
	"context"

	"github.com/connecta/agency-system/internal/core/domain"
)

// UserRepository defines persistence for user documents.
// Lookup methods return domain.ErrUserNotFound when no document matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByCPF(ctx context.Context, cpf string) (*domain.User, error)
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error

	// PushSubscription appends a service back-reference to the user document.
	PushSubscription(ctx context.Context, userID string, sub domain.Subscription) error
	// PushContract appends an embedded contract to the user document.
	PushContract(ctx context.Context, userID string, contract domain.ContractEntry) error
}
