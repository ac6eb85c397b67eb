package ports

import (
	"context"

	"github.com/buildservice/build-service/internal/core/domain"
)

// CreateWorkingSiteInput carries the data needed to open a working site.
type CreateWorkingSiteInput struct {
	Name   string
	UserID int64
}

// UpdateWorkingSiteInput carries optional changes. Nil fields are left as is.
type UpdateWorkingSiteInput struct {
	Name          *string
	ContractorIDs []int64
}

// WorkingSiteService defines use-case operations for working sites.
type WorkingSiteService interface {
	Create(ctx context.Context, principal domain.Principal, input CreateWorkingSiteInput) (*domain.WorkingSite, error)
	List(ctx context.Context) ([]*domain.WorkingSite, error)
	Get(ctx context.Context, id int64) (*domain.WorkingSite, error)
	Update(ctx context.Context, principal domain.Principal, id int64, input UpdateWorkingSiteInput) (*domain.WorkingSite, error)
	Delete(ctx context.Context, principal domain.Principal, id int64) error
}
