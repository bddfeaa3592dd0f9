package ports

import (
	"context"

	"github.com/connecta/agency-system/internal/core/domain"
)

// CreateTicketInput carries all data needed to open a ticket.
type CreateTicketInput struct {
	RequesterID    string
	RequesterName  string
	RequesterEmail string
	Title          string
	Message        string
}

// TicketService defines use-case operations on support tickets.
type TicketService interface {
	Create(ctx context.Context, input CreateTicketInput) (*domain.Ticket, error)
	Get(ctx context.Context, id string) (*domain.Ticket, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*domain.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error
	Delete(ctx context.Context, id string) error
}
