package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/buildservice/build-service/internal/core/domain"
	"github.com/buildservice/build-service/internal/core/ports"
	"github.com/buildservice/build-service/internal/core/security"
)

type WorkingSiteService struct {
	repo   ports.WorkingSiteRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewWorkingSiteService(repo ports.WorkingSiteRepository, users ports.UserRepository, logger zerolog.Logger) *WorkingSiteService {
	return &WorkingSiteService{repo: repo, users: users, logger: logger}
}

// Create opens a working site for input.UserID. Callers may only open sites
// for themselves unless they are administrators.
func (s *WorkingSiteService) Create(ctx context.Context, principal domain.Principal, input ports.CreateWorkingSiteInput) (*domain.WorkingSite, error) {
	if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
		return nil, err
	}
	if err := security.Authorize(principal, domain.UserOwner(input.UserID)); err != nil {
		return nil, err
	}

	site, err := s.repo.Create(ctx, &domain.WorkingSite{
		Name:   strings.TrimSpace(input.Name),
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("site_id", site.ID).Int64("user_id", site.UserID).Msg("working site created")
	return site, nil
}

func (s *WorkingSiteService) List(ctx context.Context) ([]*domain.WorkingSite, error) {
	return s.repo.List(ctx)
}

func (s *WorkingSiteService) Get(ctx context.Context, id int64) (*domain.WorkingSite, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *WorkingSiteService) Update(ctx context.Context, principal domain.Principal, id int64, input ports.UpdateWorkingSiteInput) (*domain.WorkingSite, error) {
	site, err := s.owned(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		site.Name = strings.TrimSpace(*input.Name)
	}
	return s.repo.Update(ctx, site, input.ContractorIDs)
}

// Delete removes the site and its contractor links. The owning user is kept.
func (s *WorkingSiteService) Delete(ctx context.Context, principal domain.Principal, id int64) error {
	if _, err := s.owned(ctx, principal, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("site_id", id).Int64("by", principal.ID).Msg("working site deleted")
	return nil
}

func (s *WorkingSiteService) owned(ctx context.Context, principal domain.Principal, id int64) (*domain.WorkingSite, error) {
	site, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := security.Authorize(principal, domain.UserOwner(site.UserID)); err != nil {
		return nil, err
	}
	return site, nil
}
