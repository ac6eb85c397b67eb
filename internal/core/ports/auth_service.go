package ports

import (
	"context"

	"github.com/buildservice/build-service/internal/core/domain"
)

// LoginInput is the DTO passed from the transport layer to AuthService.
type LoginInput struct {
	Email    string
	Password string
	// Role is optional. Empty means the role is derived from the stores.
	Role     string
	RemoteIP string
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	ID    int64
	Token string
	Role  domain.Role
}

// AuthService authenticates accounts and mints tokens.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
}

// LoginAuditService exposes the login audit trail.
type LoginAuditService interface {
	Recent(ctx context.Context, limit int) ([]*domain.LoginEvent, error)
}
