package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/connecta/agency-system/internal/core/domain"
	"github.com/connecta/agency-system/internal/core/ports"
)

// TicketService implements support ticket management.
type TicketService struct {
	tickets ports.TicketRepository
	log     zerolog.Logger
}

func NewTicketService(tickets ports.TicketRepository, log zerolog.Logger) *TicketService {
	return &TicketService{tickets: tickets, log: log}
}

// Create opens a new ticket in pending status.
func (s *TicketService) Create(ctx context.Context, input ports.CreateTicketInput) (*domain.Ticket, error) {
	t := &domain.Ticket{
		ID: generateRecordID("tkt"),
		Requester: domain.RequesterInfo{
			ID:    input.RequesterID,
			Name:  input.RequesterName,
			Email: input.RequesterEmail,
		},
		Title:     input.Title,
		Message:   input.Message,
		Status:    domain.TicketPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.tickets.Create(ctx, t); err != nil {
		s.log.Error().Err(err).Msg("failed to create ticket")
		return nil, err
	}

	s.log.Info().Str("ticket_id", t.ID).Str("requester_id", t.Requester.ID).Msg("ticket created")
	return t, nil
}

func (s *TicketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.tickets.FindByID(ctx, id)
}

func (s *TicketService) ListByRequester(ctx context.Context, requesterID string) ([]*domain.Ticket, error) {
	return s.tickets.ListByRequester(ctx, requesterID)
}

func (s *TicketService) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error {
	if _, err := s.tickets.FindByID(ctx, id); err != nil {
		return err
	}
	return s.tickets.UpdateStatus(ctx, id, status)
}

func (s *TicketService) Delete(ctx context.Context, id string) error {
	return s.tickets.Delete(ctx, id)
}
