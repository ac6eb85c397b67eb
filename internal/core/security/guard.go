package security

import "github.com/buildservice/build-service/internal/core/domain"

// Authorize allows p to act on a resource when p is an administrator or is
// one of the resource owners. Callers must have confirmed that the resource
// exists before asking.
func Authorize(p domain.Principal, owners ...domain.Owner) error {
	if p.IsAdmin() {
		return nil
	}
	for _, o := range owners {
		if o.Role == p.Role && o.ID == p.ID {
			return nil
		}
	}
	return domain.ErrForbidden
}

// RequireRole allows p only when it carries one of roles.
func RequireRole(p domain.Principal, roles ...domain.Role) error {
	for _, r := range roles {
		if p.Role == r {
			return nil
		}
	}
	return domain.ErrForbidden
}
