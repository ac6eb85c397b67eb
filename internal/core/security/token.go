package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/buildservice/build-service/internal/core/domain"
)

// DefaultTokenValidity is used when TokenConfig.Validity is not set.
const DefaultTokenValidity = time.Hour

// TokenConfig is the process-wide token setup. It is built once at startup
// and never mutated afterwards.
type TokenConfig struct {
	Secret   []byte
	Issuer   string
	Audience string
	Realm    string
	Validity time.Duration
}

// Claims is the signed payload of an access token.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	ID    string `json:"id"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 access tokens.
type TokenManager struct {
	cfg TokenConfig
	now func() time.Time
}

// NewTokenManager validates cfg and returns a TokenManager.
func NewTokenManager(cfg TokenConfig) (*TokenManager, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("token: signing secret is required")
	}
	if cfg.Issuer == "" || cfg.Audience == "" {
		return nil, errors.New("token: issuer and audience are required")
	}
	if cfg.Validity <= 0 {
		cfg.Validity = DefaultTokenValidity
	}
	secret := make([]byte, len(cfg.Secret))
	copy(secret, cfg.Secret)
	cfg.Secret = secret

	return &TokenManager{cfg: cfg, now: time.Now}, nil
}

// Realm is the authentication realm advertised on 401 responses.
func (m *TokenManager) Realm() string { return m.cfg.Realm }

// Issue mints a signed token for p that expires after the configured validity.
func (m *TokenManager) Issue(p domain.Principal) (string, error) {
	now := m.now()
	claims := Claims{
		Email: p.Email,
		Role:  p.Role.String(),
		ID:    strconv.FormatInt(p.ID, 10),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.cfg.Issuer,
			Audience:  jwt.ClaimStrings{m.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.Validity)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, audience, issuer, expiry and the identity claims,
// and returns the principal they describe. Every failure is ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (domain.Principal, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return m.cfg.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(m.cfg.Audience),
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	if claims.Email == "" {
		return domain.Principal{}, fmt.Errorf("%w: missing email claim", domain.ErrInvalidToken)
	}
	role := domain.Role(claims.Role)
	if !role.Valid() {
		return domain.Principal{}, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidToken, claims.Role)
	}
	id, err := strconv.ParseInt(claims.ID, 10, 64)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: malformed id claim", domain.ErrInvalidToken)
	}

	return domain.Principal{ID: id, Email: claims.Email, Role: role}, nil
}
