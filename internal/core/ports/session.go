package ports

import (
	"context"

	"github.com/aitax/tax-system/internal/core/domain"
)

// SessionStore is the durable copy of the current user, addressed by a
// single well-known key. Load returns domain.ErrNoSession when nothing is
// stored.
type SessionStore interface {
	Load(ctx context.Context) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context) error
}

// SessionService owns the single current user: the in-memory value and
// the durable copy move together.
type SessionService interface {
	// Current returns the active user, or domain.ErrNoSession.
	Current(ctx context.Context) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
	Clear(ctx context.Context) error
}
