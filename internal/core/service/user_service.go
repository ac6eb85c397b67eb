package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/buildservice/build-service/internal/core/domain"
	"github.com/buildservice/build-service/internal/core/ports"
	"github.com/buildservice/build-service/internal/core/security"
)

type UserService struct {
	repo   ports.UserRepository
	emails *EmailChecker
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, emails *EmailChecker, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, emails: emails, hasher: hasher, logger: logger}
}

// Register creates a user account. The email must not be used by any user or
// contractor.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	email := strings.TrimSpace(input.Email)
	if err := s.emails.Ensure(ctx, email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	user, err := s.repo.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, principal domain.Principal, id int64) (*domain.User, error) {
	return s.owned(ctx, principal, id)
}

func (s *UserService) Update(ctx context.Context, principal domain.Principal, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.owned(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)
	if !strings.EqualFold(email, user.Email) {
		if err := s.emails.Ensure(ctx, email); err != nil {
			return nil, err
		}
	}
	user.Email = email
	user.Name = strings.TrimSpace(input.Name)

	return s.repo.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, principal domain.Principal, id int64) error {
	if _, err := s.owned(ctx, principal, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Int64("by", principal.ID).Msg("user deleted")
	return nil
}

// owned loads the user and checks that principal may act on it. A missing
// user is reported before any authorization decision.
func (s *UserService) owned(ctx context.Context, principal domain.Principal, id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := security.Authorize(principal, domain.UserOwner(user.ID)); err != nil {
		return nil, err
	}
	return user, nil
}
