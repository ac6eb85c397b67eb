package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/buildservice/build-service/internal/core/domain"
	"github.com/buildservice/build-service/internal/core/ports"
)

// AdminAccount is the bootstrap administrator configured at startup. An empty
// Password disables it.
type AdminAccount struct {
	Email    string
	Password string
}

func (a AdminAccount) enabled() bool {
	return a.Email != "" && a.Password != ""
}

func (a AdminAccount) matches(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(email)), []byte(strings.ToLower(a.Email)))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.Password))
	return emailOK&passwordOK == 1
}

// Account is the stored identity a login resolves to.
type Account struct {
	ID           int64
	Email        string
	Role         domain.Role
	PasswordHash string
	// Bootstrap marks the configured administrator, which has no stored hash.
	Bootstrap bool
}

// RoleResolver decides which account, and therefore which role, a login
// refers to.
type RoleResolver struct {
	users       ports.UserRepository
	contractors ports.ContractorRepository
	admin       AdminAccount
}

func NewRoleResolver(users ports.UserRepository, contractors ports.ContractorRepository, admin AdminAccount) *RoleResolver {
	return &RoleResolver{users: users, contractors: contractors, admin: admin}
}

// Resolve finds the account for email. With an empty claimedRole the stores
// are tried in order: bootstrap admin, users, contractors. Otherwise only the
// store of the claimed role is consulted.
//
// While the bootstrap admin is enabled its email, in any letter case, is
// matched only with the configured password; any other attempt at it is
// ErrInvalidCredentials and never falls through to the stores.
func (r *RoleResolver) Resolve(ctx context.Context, email, password, claimedRole string) (*Account, error) {
	if claimedRole == "" {
		return r.resolveImplicit(ctx, email, password)
	}

	role, err := domain.ParseRole(claimedRole)
	if err != nil {
		return nil, err
	}

	switch role {
	case domain.RoleAdmin:
		return r.resolveAdmin(email, password)
	case domain.RoleUser:
		acct, err := r.lookupUser(ctx, email)
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return acct, err
	default:
		acct, err := r.lookupContractor(ctx, email)
		if errors.Is(err, domain.ErrContractorNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return acct, err
	}
}

func (r *RoleResolver) resolveImplicit(ctx context.Context, email, password string) (*Account, error) {
	if r.admin.enabled() && strings.EqualFold(email, r.admin.Email) {
		return r.resolveAdmin(email, password)
	}

	acct, err := r.lookupUser(ctx, email)
	if err == nil {
		return acct, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	acct, err = r.lookupContractor(ctx, email)
	if err == nil {
		return acct, nil
	}
	if errors.Is(err, domain.ErrContractorNotFound) {
		return nil, domain.ErrAccountNotFound
	}
	return nil, err
}

func (r *RoleResolver) resolveAdmin(email, password string) (*Account, error) {
	if !r.admin.enabled() || !r.admin.matches(email, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return &Account{
		ID:        domain.AdminID,
		Email:     r.admin.Email,
		Role:      domain.RoleAdmin,
		Bootstrap: true,
	}, nil
}

func (r *RoleResolver) lookupUser(ctx context.Context, email string) (*Account, error) {
	u, err := r.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	return &Account{ID: u.ID, Email: u.Email, Role: domain.RoleUser, PasswordHash: u.PasswordHash}, nil
}

func (r *RoleResolver) lookupContractor(ctx context.Context, email string) (*Account, error) {
	c, err := r.contractors.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrContractorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("resolve contractor: %w", err)
	}
	return &Account{ID: c.ID, Email: c.Email, Role: domain.RoleContractor, PasswordHash: c.PasswordHash}, nil
}
