package ports

import (
	"context"

	"github.com/connecta/agency-system/internal/core/domain"
)

// ServiceRepository defines persistence for top-level service records.
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) error
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	UpdateStatus(ctx context.Context, id string, status domain.ServiceStatus) error
	Delete(ctx context.Context, id string) error
}
