package ports

import (
	"context"
	"time"

	"github.com/connecta/agency-system/internal/core/domain"
)

// CreateServiceInput carries all data needed to create a service record.
type CreateServiceInput struct {
	ClientID     string
	ClientName   string
	ClientEmail  string
	Name         string
	Type         string
	Description  string
	DeliveryDate time.Time
	Media        []MediaInput
}

// MediaInput references an already-uploaded image.
type MediaInput struct {
	FileID  string
	Caption string
}

// CatalogService defines use-case operations on the service catalog.
type CatalogService interface {
	Create(ctx context.Context, input CreateServiceInput) (*domain.Service, error)
	Get(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	UpdateStatus(ctx context.Context, id string, status domain.ServiceStatus) error
	Delete(ctx context.Context, id string) error

	// Accept marks a service accepted and records a pending subscription
	// on the accepting user's document.
	Accept(ctx context.Context, serviceID, userID string) error
}
