package ports

import (
	"context"

	"github.com/buildservice/build-service/internal/core/domain"
)

// WorkingSiteRepository persists working sites and their contractor links.
type WorkingSiteRepository interface {
	Create(ctx context.Context, site *domain.WorkingSite) (*domain.WorkingSite, error)
	FindByID(ctx context.Context, id int64) (*domain.WorkingSite, error)
	List(ctx context.Context) ([]*domain.WorkingSite, error)
	// Update renames the site and, when contractorIDs is non-nil, replaces its
	// contractor links. Unknown contractor ids yield domain.ErrContractorNotFound.
	Update(ctx context.Context, site *domain.WorkingSite, contractorIDs []int64) (*domain.WorkingSite, error)
	Delete(ctx context.Context, id int64) error
}
