package ports

import (
	"context"

	"github.com/buildservice/build-service/internal/core/domain"
)

// RegisterUserInput carries the data needed to create a user account.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput carries the editable user profile fields.
type UpdateUserInput struct {
	Name  string
	Email string
}

// UserService defines use-case operations for user accounts. Operations on a
// specific user are restricted to that user and administrators.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, principal domain.Principal, id int64) (*domain.User, error)
	Update(ctx context.Context, principal domain.Principal, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, principal domain.Principal, id int64) error
}
