package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/buildservice/build-service/internal/core/domain"
	"github.com/buildservice/build-service/internal/core/ports"
)

// AuthService implements login: role resolution, password verification and
// token issuance. Throttle and auditor are optional.
type AuthService struct {
	resolver *RoleResolver
	hasher   ports.PasswordHasher
	issuer   ports.TokenIssuer
	throttle ports.LoginThrottle
	auditor  ports.LoginAuditor
	logger   zerolog.Logger
}

func NewAuthService(
	resolver *RoleResolver,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	throttle ports.LoginThrottle,
	auditor ports.LoginAuditor,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		resolver: resolver,
		hasher:   hasher,
		issuer:   issuer,
		throttle: throttle,
		auditor:  auditor,
		logger:   logger,
	}
}

func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// 1. Refuse early while the account is locked out.
	if s.throttle != nil {
		if err := s.throttle.Allow(ctx, email); err != nil {
			if errors.Is(err, domain.ErrTooManyAttempts) {
				s.audit(in, email, nil, err)
				return nil, err
			}
			s.logger.Warn().Err(err).Str("email", email).Msg("login throttle unavailable, continuing")
		}
	}

	// 2. Decide which account and role the credentials refer to.
	acct, err := s.resolver.Resolve(ctx, email, in.Password, in.Role)
	if err != nil {
		s.fail(ctx, in, email, nil, err)
		return nil, err
	}

	// 3. Verify the password against the stored hash.
	if !acct.Bootstrap && !s.hasher.Verify(in.Password, acct.PasswordHash) {
		s.fail(ctx, in, email, acct, domain.ErrInvalidCredentials)
		return nil, domain.ErrInvalidCredentials
	}

	// 4. Mint the token.
	token, err := s.issuer.Issue(domain.Principal{ID: acct.ID, Email: acct.Email, Role: acct.Role})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Str("email", email).Msg("failed to reset login throttle")
		}
	}
	s.audit(in, email, acct, nil)

	s.logger.Info().
		Int64("account_id", acct.ID).
		Str("role", acct.Role.String()).
		Msg("login succeeded")

	return &ports.LoginResult{ID: acct.ID, Token: token, Role: acct.Role}, nil
}

func (s *AuthService) fail(ctx context.Context, in ports.LoginInput, email string, acct *Account, cause error) {
	if s.throttle != nil && errors.Is(cause, domain.ErrInvalidCredentials) {
		if err := s.throttle.RecordFailure(ctx, email); err != nil {
			s.logger.Warn().Err(err).Str("email", email).Msg("failed to record login failure")
		}
	}
	s.audit(in, email, acct, cause)

	s.logger.Info().Err(cause).Str("email", email).Msg("login rejected")
}

func (s *AuthService) audit(in ports.LoginInput, email string, acct *Account, cause error) {
	if s.auditor == nil {
		return
	}
	event := domain.LoginEvent{
		ID:         uuid.NewString(),
		Email:      email,
		Success:    cause == nil,
		RemoteIP:   in.RemoteIP,
		OccurredAt: time.Now().UTC(),
	}
	if acct != nil {
		event.Role = acct.Role
		event.AccountID = acct.ID
	}
	if cause != nil {
		event.Reason = cause.Error()
	}
	s.auditor.Record(event)
}

// LoginAuditService reads the login audit trail.
type LoginAuditService struct {
	repo ports.LoginEventRepository
}

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

func NewLoginAuditService(repo ports.LoginEventRepository) *LoginAuditService {
	return &LoginAuditService{repo: repo}
}

// Recent returns the newest login events. limit is clamped to [1, 500] and
// defaults to 50.
func (s *LoginAuditService) Recent(ctx context.Context, limit int) ([]*domain.LoginEvent, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
