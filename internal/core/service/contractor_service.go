package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/buildservice/build-service/internal/core/domain"
	"github.com/buildservice/build-service/internal/core/ports"
	"github.com/buildservice/build-service/internal/core/security"
)

type ContractorService struct {
	repo   ports.ContractorRepository
	users  ports.UserRepository
	emails *EmailChecker
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewContractorService(
	repo ports.ContractorRepository,
	users ports.UserRepository,
	emails *EmailChecker,
	hasher ports.PasswordHasher,
	logger zerolog.Logger,
) *ContractorService {
	return &ContractorService{repo: repo, users: users, emails: emails, hasher: hasher, logger: logger}
}

// Register creates a stand-alone brigade with its own credential.
func (s *ContractorService) Register(ctx context.Context, input ports.RegisterContractorInput) (*domain.Contractor, error) {
	email := strings.TrimSpace(input.Email)
	if err := s.emails.Ensure(ctx, email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("register contractor: %w", err)
	}

	c, err := s.repo.Create(ctx, &domain.Contractor{
		Name:          strings.TrimSpace(input.Name),
		Email:         email,
		PasswordHash:  hash,
		WorkersAmount: input.WorkersAmount,
		Rating:        domain.DefaultContractorRating,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("contractor_id", c.ID).Msg("contractor registered")
	return c, nil
}

// CreateForUser attaches a brigade profile to the calling user. The profile
// shares the user's email and password.
func (s *ContractorService) CreateForUser(ctx context.Context, principal domain.Principal, input ports.CreateContractorForUserInput) (*domain.Contractor, error) {
	if err := security.RequireRole(principal, domain.RoleUser); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByUserID(ctx, principal.ID); err == nil {
		return nil, domain.ErrContractorExists
	} else if !errors.Is(err, domain.ErrContractorNotFound) {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	userID := user.ID
	c, err := s.repo.Create(ctx, &domain.Contractor{
		UserID:        &userID,
		Name:          strings.TrimSpace(input.Name),
		Email:         user.Email,
		PasswordHash:  user.PasswordHash,
		WorkersAmount: input.WorkersAmount,
		Rating:        domain.DefaultContractorRating,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("contractor_id", c.ID).Int64("user_id", userID).Msg("contractor created for user")
	return c, nil
}

func (s *ContractorService) List(ctx context.Context) ([]*domain.Contractor, error) {
	return s.repo.List(ctx)
}

func (s *ContractorService) Get(ctx context.Context, principal domain.Principal, id int64) (*domain.Contractor, error) {
	return s.owned(ctx, principal, id)
}

// Update edits the brigade profile. Only administrators may change the rating.
func (s *ContractorService) Update(ctx context.Context, principal domain.Principal, id int64, input ports.UpdateContractorInput) (*domain.Contractor, error) {
	c, err := s.owned(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)
	if !strings.EqualFold(email, c.Email) {
		if err := s.emails.Ensure(ctx, email); err != nil {
			return nil, err
		}
	}
	c.Email = email
	c.Name = strings.TrimSpace(input.Name)
	c.WorkersAmount = input.WorkersAmount
	if principal.IsAdmin() {
		c.Rating = input.Rating
	}

	return s.repo.Update(ctx, c)
}

func (s *ContractorService) Delete(ctx context.Context, principal domain.Principal, id int64) error {
	if _, err := s.owned(ctx, principal, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("contractor_id", id).Int64("by", principal.ID).Msg("contractor deleted")
	return nil
}

func (s *ContractorService) owned(ctx context.Context, principal domain.Principal, id int64) (*domain.Contractor, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := security.Authorize(principal, c.Owners()...); err != nil {
		return nil, err
	}
	return c, nil
}
