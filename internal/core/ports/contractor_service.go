package ports

import (
	"context"

	"github.com/buildservice/build-service/internal/core/domain"
)

// RegisterContractorInput creates a brigade with its own credential.
type RegisterContractorInput struct {
	Name          string
	Email         string
	Password      string
	WorkersAmount int
}

// CreateContractorForUserInput creates a brigade profile owned by the caller.
type CreateContractorForUserInput struct {
	Name          string
	WorkersAmount int
}

// UpdateContractorInput carries the editable brigade fields.
type UpdateContractorInput struct {
	Name          string
	Email         string
	WorkersAmount int
	Rating        float32
}

// ContractorService defines use-case operations for brigades.
type ContractorService interface {
	Register(ctx context.Context, input RegisterContractorInput) (*domain.Contractor, error)
	CreateForUser(ctx context.Context, principal domain.Principal, input CreateContractorForUserInput) (*domain.Contractor, error)
	List(ctx context.Context) ([]*domain.Contractor, error)
	Get(ctx context.Context, principal domain.Principal, id int64) (*domain.Contractor, error)
	Update(ctx context.Context, principal domain.Principal, id int64, input UpdateContractorInput) (*domain.Contractor, error)
	Delete(ctx context.Context, principal domain.Principal, id int64) error
}
