package ports

import (
	"context"

	"github.com/buildservice/build-service/internal/core/domain"
)

// LoginEventRepository is the append-only login audit trail.
type LoginEventRepository interface {
	Insert(ctx context.Context, event *domain.LoginEvent) error
	// ListRecent returns at most limit events, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.LoginEvent, error)
}
