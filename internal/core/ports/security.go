package ports

import (
	"context"

	"github.com/buildservice/build-service/internal/core/domain"
)

// PasswordHasher hashes and verifies stored credentials.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenIssuer mints signed access tokens.
type TokenIssuer interface {
	Issue(p domain.Principal) (string, error)
}

// TokenVerifier turns a presented token back into a principal.
type TokenVerifier interface {
	Verify(token string) (domain.Principal, error)
}

// LoginThrottle limits repeated failed logins per account email.
type LoginThrottle interface {
	// Allow returns domain.ErrTooManyAttempts while the email is locked out.
	Allow(ctx context.Context, email string) error
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// LoginAuditor receives login outcomes. Implementations must not block.
type LoginAuditor interface {
	Record(event domain.LoginEvent)
}
