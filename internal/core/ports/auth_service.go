package ports

import (
	"context"

	"github.com/aitax/tax-system/internal/core/domain"
)

// AuthService implements the simulated login flow: credentials or a bare
// tier pick both resolve to one of the seeded demo accounts. A successful
// login becomes the current session.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// DemoLogin signs in as the demo account for the given tier without
	// credentials. Unknown tiers fail fast with domain.ErrUnknownTier.
	DemoLogin(ctx context.Context, tier string) (string, *domain.User, error)
	Logout(ctx context.Context) error
}
