package ports

import (
	"context"

	"github.com/buildservice/build-service/internal/core/domain"
)

// ContractorRepository is the credential and profile store for brigades.
// Lookups return domain.ErrContractorNotFound when no row matches.
type ContractorRepository interface {
	Create(ctx context.Context, contractor *domain.Contractor) (*domain.Contractor, error)
	FindByID(ctx context.Context, id int64) (*domain.Contractor, error)
	FindByEmail(ctx context.Context, email string) (*domain.Contractor, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Contractor, error)
	List(ctx context.Context) ([]*domain.Contractor, error)
	Update(ctx context.Context, contractor *domain.Contractor) (*domain.Contractor, error)
	Delete(ctx context.Context, id int64) error
}
