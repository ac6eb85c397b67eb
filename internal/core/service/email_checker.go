package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/buildservice/build-service/internal/core/domain"
	"github.com/buildservice/build-service/internal/core/ports"
)

// EmailChecker reports whether an email is already used by any account,
// user or contractor. The bootstrap administrator email is always reserved.
type EmailChecker struct {
	users       ports.UserRepository
	contractors ports.ContractorRepository
	adminEmail  string
}

func NewEmailChecker(users ports.UserRepository, contractors ports.ContractorRepository, adminEmail string) *EmailChecker {
	return &EmailChecker{users: users, contractors: contractors, adminEmail: strings.TrimSpace(adminEmail)}
}

// Ensure returns domain.ErrEmailTaken when email already belongs to an account.
// Emails are compared without regard to letter case.
func (c *EmailChecker) Ensure(ctx context.Context, email string) error {
	if c.adminEmail != "" && strings.EqualFold(email, c.adminEmail) {
		return domain.ErrEmailTaken
	}

	if _, err := c.users.FindByEmail(ctx, email); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("check email: %w", err)
	}

	if _, err := c.contractors.FindByEmail(ctx, email); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrContractorNotFound) {
		return fmt.Errorf("check email: %w", err)
	}
	return nil
}
