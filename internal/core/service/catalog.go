package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/connecta/agency-system/internal/core/domain"
	"github.com/connecta/agency-system/internal/core/ports"
)

// CatalogService implements service record management.
type CatalogService struct {
	services ports.ServiceRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewCatalogService(services ports.ServiceRepository, users ports.UserRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{services: services, users: users, log: log}
}

// Create stores a new service record in active status.
func (s *CatalogService) Create(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
	media := make([]domain.MediaRef, 0, len(input.Media))
	for _, m := range input.Media {
		media = append(media, domain.MediaRef{FileID: m.FileID, Caption: m.Caption})
	}

	svc := &domain.Service{
		ID: generateRecordID("srv"),
		Client: domain.ClientInfo{
			ID:    input.ClientID,
			Name:  input.ClientName,
			Email: input.ClientEmail,
		},
		Name:         input.Name,
		Type:         input.Type,
		Description:  input.Description,
		DeliveryDate: input.DeliveryDate,
		Media:        media,
		Status:       domain.ServiceActive,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.services.Create(ctx, svc); err != nil {
		s.log.Error().Err(err).Msg("failed to create service")
		return nil, err
	}

	s.log.Info().Str("service_id", svc.ID).Str("client_id", svc.Client.ID).Msg("service created")
	return svc, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Service, error) {
	return s.services.FindByID(ctx, id)
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Service, error) {
	return s.services.List(ctx)
}

// UpdateStatus applies a state machine transition to a service record.
func (s *CatalogService) UpdateStatus(ctx context.Context, id string, status domain.ServiceStatus) error {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !svc.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, svc.Status, status)
	}
	return s.services.UpdateStatus(ctx, id, status)
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.services.Delete(ctx, id)
}

// Accept marks a service accepted and records a pending subscription on
// the accepting user's document. The two writes are not transactional; a
// failure after the first leaves the service accepted with no
// subscription, which the next accept attempt surfaces as an invalid
// transition.
func (s *CatalogService) Accept(ctx context.Context, serviceID, userID string) error {
	if err := s.UpdateStatus(ctx, serviceID, domain.ServiceAccepted); err != nil {
		return err
	}

	sub := domain.Subscription{ServiceID: serviceID, Status: "pending"}
	if err := s.users.PushSubscription(ctx, userID, sub); err != nil {
		s.log.Error().Err(err).Str("service_id", serviceID).Str("user_id", userID).Msg("failed to record subscription")
		return err
	}

	s.log.Info().Str("service_id", serviceID).Str("user_id", userID).Msg("service accepted")
	return nil
}

// generateRecordID returns an identifier in the format <prefix>-XXXXXXXX.
func generateRecordID(prefix string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%s-%08x", prefix, time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("%s-%08x", prefix, b)
}
