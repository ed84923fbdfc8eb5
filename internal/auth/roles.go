package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mentorverse/mentorverse-api/internal/domain"
)

type requireRoleStage struct {
	allowed map[domain.Role]struct{}
	message string
}

// RequireRole is the authorization gate. It must run after Authenticate and
// rejects identities whose role is not in roles.
func RequireRole(roles ...domain.Role) Stage {
	return newRoleStage("insufficient role", roles...)
}

// RequireAdmin restricts a route to administrators.
func RequireAdmin() Stage {
	return newRoleStage(msgAdminRequired, domain.RoleAdmin)
}

func newRoleStage(message string, roles ...domain.Role) Stage {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return requireRoleStage{allowed: allowed, message: message}
}

func (requireRoleStage) Name() string      { return "require_role" }
func (requireRoleStage) requiresIdentity() {}

func (s requireRoleStage) Apply(_ context.Context, st State) (State, error) {
	if st.Identity == nil {
		return st, forbidden(s.message)
	}
	if _, ok := s.allowed[st.Identity.Role]; !ok {
		return st, forbidden(s.message)
	}
	st.Phase = PhaseRoleChecked
	return st, nil
}

// CredentialStore is the read side of the user store the auth layer needs.
// Lookups that find nothing return pgx.ErrNoRows.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.CredentialRecord, error)
	FindByID(ctx context.Context, id int64) (*domain.CredentialRecord, error)
}

type refreshIdentityStage struct {
	store CredentialStore
}

// RefreshIdentity reloads role and email from the store so a role change or
// deactivation takes effect before the token expires. Store failures are
// reported as internal errors, not as authentication failures.
func RefreshIdentity(store CredentialStore) Stage {
	return refreshIdentityStage{store: store}
}

func (refreshIdentityStage) Name() string      { return "refresh_identity" }
func (refreshIdentityStage) requiresIdentity() {}
func (refreshIdentityStage) providesIdentity() {}

func (s refreshIdentityStage) Apply(ctx context.Context, st State) (State, error) {
	if st.Identity == nil {
		return st, invalidCredential(nil)
	}

	record, err := s.store.FindByID(ctx, st.Identity.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return st, invalidCredential(errors.New("account no longer exists"))
		}
		return st, fmt.Errorf("refresh identity: %w", err)
	}
	if !record.IsActive {
		return st, invalidCredential(errors.New("account is inactive"))
	}

	refreshed := domain.Identity{UserID: record.UserID, Email: record.Email, Role: record.Role}
	st.Identity = &refreshed
	return st, nil
}
