package ports

import (
	"context"

	"github.com/buildservice/build-service/internal/core/domain"
)

// CommentService defines use-case operations for contractor comments.
type CommentService interface {
	Create(ctx context.Context, principal domain.Principal, contractorID int64, text string) (*domain.Comment, error)
	ListForContractor(ctx context.Context, contractorID int64) ([]*domain.Comment, error)
	ListForUser(ctx context.Context, userID int64) ([]*domain.Comment, error)
	Update(ctx context.Context, principal domain.Principal, id int64, text string) (*domain.Comment, error)
	Delete(ctx context.Context, principal domain.Principal, id int64) error
}
