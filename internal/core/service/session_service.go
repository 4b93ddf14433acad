package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/ports"
)

// SessionService holds the single current user. The cached value and the
// durable copy in the store are updated under one mutex, so a concurrent
// reader never observes one without the other.
type SessionService struct {
	store  ports.SessionStore
	logger zerolog.Logger

	mu      sync.RWMutex
	current *domain.User
}

func NewSessionService(store ports.SessionStore, logger zerolog.Logger) *SessionService {
	return &SessionService{store: store, logger: logger}
}

// Bootstrap loads the persisted session, or establishes the enterprise
// demo identity when none exists. Demo convenience only; a real deployment
// would start signed out.
func (s *SessionService) Bootstrap(ctx context.Context, users ports.UserRepository) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.store.Load(ctx)
	if err == nil {
		s.current = stored
		s.logger.Info().Str("user_id", stored.ID).Str("tier", string(stored.Tier)).Msg("session restored")
		return nil
	}
	if !errors.Is(err, domain.ErrNoSession) {
		return err
	}

	demo, err := users.FindByTier(ctx, domain.TierEnterprise)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, demo); err != nil {
		return err
	}
	s.current = demo
	s.logger.Info().Str("user_id", demo.ID).Msg("default demo session created")
	return nil
}

// Current returns the active user, or domain.ErrNoSession after a logout.
func (s *SessionService) Current(_ context.Context) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, domain.ErrNoSession
	}
	clone := *s.current
	return &clone, nil
}

func (s *SessionService) Set(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, user); err != nil {
		return err
	}
	clone := *user
	s.current = &clone
	return nil
}

func (s *SessionService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx); err != nil {
		return err
	}
	s.current = nil
	return nil
}
