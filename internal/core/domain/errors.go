package domain

import "errors"

// Authentication failures.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrUnsupportedRole    = errors.New("unsupported role")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)

// Authorization failures.
var ErrForbidden = errors.New("access forbidden")

// Resource failures.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrContractorNotFound  = errors.New("contractor not found")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrWorkingSiteNotFound = errors.New("working site not found")
	ErrEmailTaken          = errors.New("email already in use")
	ErrContractorExists    = errors.New("contractor for this account already exists")
)
