package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/buildservice/build-service/internal/core/domain"
	"github.com/buildservice/build-service/internal/core/ports"
	"github.com/buildservice/build-service/internal/core/security"
)

type CommentService struct {
	repo        ports.CommentRepository
	contractors ports.ContractorRepository
	logger      zerolog.Logger
}

func NewCommentService(repo ports.CommentRepository, contractors ports.ContractorRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{repo: repo, contractors: contractors, logger: logger}
}

// Create posts a comment on a contractor. Only users may comment.
func (s *CommentService) Create(ctx context.Context, principal domain.Principal, contractorID int64, text string) (*domain.Comment, error) {
	if err := security.RequireRole(principal, domain.RoleUser); err != nil {
		return nil, err
	}
	if _, err := s.contractors.FindByID(ctx, contractorID); err != nil {
		return nil, err
	}

	author := principal.ID
	comment, err := s.repo.Create(ctx, &domain.Comment{
		ContractorID: contractorID,
		UserID:       &author,
		Comment:      strings.TrimSpace(text),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("comment_id", comment.ID).Int64("contractor_id", contractorID).Msg("comment created")
	return comment, nil
}

func (s *CommentService) ListForContractor(ctx context.Context, contractorID int64) ([]*domain.Comment, error) {
	return s.repo.ListByContractor(ctx, contractorID)
}

func (s *CommentService) ListForUser(ctx context.Context, userID int64) ([]*domain.Comment, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update replaces the text of a comment. Only the author or an administrator
// may edit; the comment is marked as changed.
func (s *CommentService) Update(ctx context.Context, principal domain.Principal, id int64, text string) (*domain.Comment, error) {
	if _, err := s.owned(ctx, principal, id); err != nil {
		return nil, err
	}
	return s.repo.UpdateText(ctx, id, strings.TrimSpace(text))
}

func (s *CommentService) Delete(ctx context.Context, principal domain.Principal, id int64) error {
	if _, err := s.owned(ctx, principal, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *CommentService) owned(ctx context.Context, principal domain.Principal, id int64) (*domain.Comment, error) {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := security.Authorize(principal, comment.Owners()...); err != nil {
		return nil, err
	}
	return comment, nil
}
