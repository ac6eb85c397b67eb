package service

import (
	"context"
	"errors"
	"testing"

	"github.com/buildservice/build-service/internal/core/domain"
)

var testAdmin = AdminAccount{Email: "admin@admin", Password: "admin123"}

func newTestResolver() (*RoleResolver, *stubUserRepo, *stubContractorRepo) {
	users := newStubUserRepo(&domain.User{ID: 3, Name: "Ann", Email: "ann@site.io", PasswordHash: "hashed:ann-secret"})
	contractors := newStubContractorRepo(&domain.Contractor{ID: 8, Name: "Brigade", Email: "crew@site.io", PasswordHash: "hashed:crew-secret"})
	return NewRoleResolver(users, contractors, testAdmin), users, contractors
}

func TestResolve_AdminPair(t *testing.T) {
	r, users, contractors := newTestResolver()

	acct, err := r.Resolve(context.Background(), "admin@admin", "admin123", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acct.Role != domain.RoleAdmin || acct.ID != domain.AdminID || !acct.Bootstrap {
		t.Errorf("want bootstrap ADMIN/-1, got %+v", acct)
	}
	if users.lookups+contractors.lookups != 0 {
		t.Errorf("admin resolution must not touch the stores, got %d lookups", users.lookups+contractors.lookups)
	}
}

func TestResolve_AdminWrongPasswordDoesNotFallThrough(t *testing.T) {
	r, users, contractors := newTestResolver()
	// Even a user row with the admin email must not be reachable this way.
	users.byID[99] = &domain.User{ID: 99, Email: "admin@admin", PasswordHash: "hashed:nope"}

	_, err := r.Resolve(context.Background(), "admin@admin", "nope", "")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
	if users.lookups+contractors.lookups != 0 {
		t.Errorf("want no store lookups, got %d", users.lookups+contractors.lookups)
	}
}

func TestResolve_ExplicitAdminRequiresExactPair(t *testing.T) {
	r, _, _ := newTestResolver()

	for _, tc := range []struct{ email, password string }{
		{"ann@site.io", "admin123"},
		{"admin@admin", "ADMIN123"},
	} {
		if _, err := r.Resolve(context.Background(), tc.email, tc.password, "admin"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("%s/%s: want ErrInvalidCredentials, got %v", tc.email, tc.password, err)
		}
	}

	acct, err := r.Resolve(context.Background(), "admin@admin", "admin123", "Admin")
	if err != nil || acct.Role != domain.RoleAdmin {
		t.Fatalf("want ADMIN, got %+v, %v", acct, err)
	}
}

func TestResolve_DisabledAdmin(t *testing.T) {
	r := NewRoleResolver(newStubUserRepo(), newStubContractorRepo(), AdminAccount{Email: "admin@admin"})

	if _, err := r.Resolve(context.Background(), "admin@admin", "", "admin"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestResolve_DisabledAdminEmailFallsThroughToStores(t *testing.T) {
	users := newStubUserRepo(&domain.User{ID: 5, Email: "admin@admin", PasswordHash: "hashed:pw"})
	r := NewRoleResolver(users, newStubContractorRepo(), AdminAccount{Email: "admin@admin"})

	acct, err := r.Resolve(context.Background(), "admin@admin", "pw", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acct.Role != domain.RoleUser || acct.ID != 5 {
		t.Errorf("want USER 5, got %+v", acct)
	}
}

func TestResolve_AdminEmailIgnoresCase(t *testing.T) {
	r, users, contractors := newTestResolver()

	acct, err := r.Resolve(context.Background(), "Admin@ADMIN", "admin123", "")
	if err != nil || acct.Role != domain.RoleAdmin {
		t.Fatalf("want ADMIN, got %+v, %v", acct, err)
	}

	_, err = r.Resolve(context.Background(), "ADMIN@admin", "guess", "")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
	if users.lookups+contractors.lookups != 0 {
		t.Errorf("want no store lookups, got %d", users.lookups+contractors.lookups)
	}
}

func TestResolve_ImplicitOrder(t *testing.T) {
	r, _, _ := newTestResolver()

	tests := []struct {
		email  string
		role   domain.Role
		id     int64
		wantEr error
	}{
		{"ann@site.io", domain.RoleUser, 3, nil},
		{"crew@site.io", domain.RoleContractor, 8, nil},
		{"ghost@site.io", "", 0, domain.ErrAccountNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			acct, err := r.Resolve(context.Background(), tc.email, "whatever", "")
			if tc.wantEr != nil {
				if !errors.Is(err, tc.wantEr) {
					t.Fatalf("want %v, got %v", tc.wantEr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if acct.Role != tc.role || acct.ID != tc.id {
				t.Errorf("want %s/%d, got %s/%d", tc.role, tc.id, acct.Role, acct.ID)
			}
		})
	}
}

func TestResolve_UserShadowsLinkedContractor(t *testing.T) {
	r, users, contractors := newTestResolver()
	uid := int64(3)
	contractors.byID[9] = &domain.Contractor{ID: 9, UserID: &uid, Email: "ann@site.io", PasswordHash: users.byID[3].PasswordHash}

	acct, err := r.Resolve(context.Background(), "ann@site.io", "", "")
	if err != nil || acct.Role != domain.RoleUser {
		t.Fatalf("implicit login: want USER, got %+v, %v", acct, err)
	}

	acct, err = r.Resolve(context.Background(), "ann@site.io", "", "contractor")
	if err != nil || acct.Role != domain.RoleContractor || acct.ID != 9 {
		t.Fatalf("explicit login: want CONTRACTOR/9, got %+v, %v", acct, err)
	}
}

func TestResolve_ExplicitRoleOnlyConsultsItsStore(t *testing.T) {
	r, _, _ := newTestResolver()

	if _, err := r.Resolve(context.Background(), "crew@site.io", "x", "user"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("contractor as user: want ErrAccountNotFound, got %v", err)
	}
	if _, err := r.Resolve(context.Background(), "ann@site.io", "x", "contractor"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("user as contractor: want ErrAccountNotFound, got %v", err)
	}
}

func TestResolve_UnsupportedRole(t *testing.T) {
	r, _, _ := newTestResolver()

	if _, err := r.Resolve(context.Background(), "ann@site.io", "x", "foreman"); !errors.Is(err, domain.ErrUnsupportedRole) {
		t.Fatalf("want ErrUnsupportedRole, got %v", err)
	}
}

func TestResolve_StoreFailureIsNotNotFound(t *testing.T) {
	r, users, _ := newTestResolver()
	users.findErr = errors.New("connection reset")

	_, err := r.Resolve(context.Background(), "ann@site.io", "x", "")
	if err == nil || errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("want wrapped store error, got %v", err)
	}
}
