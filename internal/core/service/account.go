package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/connecta/agency-system/internal/core/domain"
	"github.com/connecta/agency-system/internal/core/ports"
)

// AccountService implements user account management.
type AccountService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewAccountService(users ports.UserRepository, log zerolog.Logger) *AccountService {
	return &AccountService{users: users, log: log}
}

// Register validates and creates a user account. Username, email, and CPF
// must all be unused; the CPF must pass its checksum; the password is
// stored only as a bcrypt hash.
func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" || !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidCPF(input.CPF) {
		return nil, domain.ErrInvalidCPF
	}

	if err := s.checkUnused(ctx, input); err != nil {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		CPF:          input.CPF,
		Role:         input.Role,
		Title:        input.Title,
		PasswordHash: hash,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// checkUnused enforces the uniqueness invariants on username, email, CPF.
// The unique indexes on the collection are the backstop for races.
func (s *AccountService) checkUnused(ctx context.Context, input ports.RegisterInput) error {
	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	if _, err := s.users.FindByCPF(ctx, input.CPF); err == nil {
		return domain.ErrCPFTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return nil
}

func (s *AccountService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AccountService) ListClients(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleClient)
}

func (s *AccountService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
