package ports

import (
	"context"

	"github.com/aitax/tax-system/internal/core/domain"
)

// UserRepository defines persistence for account holders.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByTier returns the demo account seeded for the given tier.
	FindByTier(ctx context.Context, tier domain.Tier) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
