package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/ports"
)

// ContractService records employment and rental agreements. Expiry is
// derived from the end date on read, never stored.
type ContractService struct {
	repo   ports.ContractRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewContractService(repo ports.ContractRepository, logger zerolog.Logger) *ContractService {
	return &ContractService{repo: repo, logger: logger, now: time.Now}
}

func (s *ContractService) List(ctx context.Context) ([]*domain.Contract, error) {
	contracts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	for _, c := range contracts {
		c.Status = c.EffectiveStatus(now)
	}
	return contracts, nil
}

func (s *ContractService) Get(ctx context.Context, id string) (*domain.Contract, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Status = c.EffectiveStatus(s.now().UTC())
	return c, nil
}

func (s *ContractService) Create(ctx context.Context, input ports.CreateContractInput) (*domain.Contract, error) {
	ctype := domain.ContractType(input.Type)
	if ctype != domain.ContractEmployment && ctype != domain.ContractRental {
		return nil, fmt.Errorf("contract type %q: %w", input.Type, domain.ErrInvalidContractType)
	}

	c := &domain.Contract{
		ID:          newID(),
		Type:        ctype,
		Title:       input.Title,
		PartyA:      input.PartyA,
		PartyB:      input.PartyB,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Amount:      input.Amount,
		Terms:       input.Terms,
		Status:      domain.ContractActive,
		CreatedDate: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to store contract")
		return nil, err
	}

	s.logger.Info().Str("id", c.ID).Str("type", string(c.Type)).Msg("contract recorded")
	return c, nil
}
