package ports

import (
	"context"

	"github.com/buildservice/build-service/internal/core/domain"
)

// UserRepository is the credential and profile store for user accounts.
// Lookups return domain.ErrUserNotFound when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
