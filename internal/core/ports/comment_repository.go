package ports

import (
	"context"

	"github.com/buildservice/build-service/internal/core/domain"
)

// CommentRepository persists contractor comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	ListByContractor(ctx context.Context, contractorID int64) ([]*domain.Comment, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Comment, error)
	// UpdateText replaces the comment body and marks it as changed.
	UpdateText(ctx context.Context, id int64, text string) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}
