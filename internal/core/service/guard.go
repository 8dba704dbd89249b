package service

import "github.com/perfumehub/catalog-system/internal/core/domain"

// Guard is the single authorization capability shared by the API and
// page-mode code paths. It never mutates state; authentication must have
// resolved a principal before any check runs. An anonymous caller is the
// zero Principal.
type Guard struct{}

func NewGuard() Guard {
	return Guard{}
}

// RequireAuthenticated fails with ErrUnauthorized when no principal was
// resolved for the request.
func (Guard) RequireAuthenticated(p domain.Principal) error {
	if p.ID == "" {
		return domain.ErrUnauthorized
	}
	return nil
}

// RequireAdmin fails with ErrForbidden unless the principal holds the
// admin role.
func (g Guard) RequireAdmin(p domain.Principal) error {
	if err := g.RequireAuthenticated(p); err != nil {
		return err
	}
	if !p.IsAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// RequireSelfOrAdmin allows the operation when the principal owns the
// target resource, or unconditionally for admins.
func (g Guard) RequireSelfOrAdmin(p domain.Principal, targetID string) error {
	if err := g.RequireAuthenticated(p); err != nil {
		return err
	}
	if p.ID == targetID || p.IsAdmin {
		return nil
	}
	return domain.ErrForbidden
}
