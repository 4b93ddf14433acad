package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/finance"
	"github.com/aitax/tax-system/internal/core/ports"
)

// GSTService derives GST returns from the transaction feed and walks them
// through the draft/submitted/paid filing lifecycle.
type GSTService struct {
	returns      ports.GSTReturnRepository
	transactions ports.TransactionRepository
	logger       zerolog.Logger
}

func NewGSTService(returns ports.GSTReturnRepository, transactions ports.TransactionRepository, logger zerolog.Logger) *GSTService {
	return &GSTService{returns: returns, transactions: transactions, logger: logger}
}

func (s *GSTService) List(ctx context.Context) ([]*domain.GSTReturn, error) {
	return s.returns.List(ctx)
}

func (s *GSTService) Get(ctx context.Context, id string) (*domain.GSTReturn, error) {
	return s.returns.FindByID(ctx, id)
}

// CreateReturn summarises the transactions inside the period into a draft
// return. An empty period yields an all-zero draft, not an error.
func (s *GSTService) CreateReturn(ctx context.Context, input ports.CreateGSTReturnInput) (*domain.GSTReturn, error) {
	transactions, err := s.transactions.ListBetween(ctx, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("create gst return: %w", err)
	}

	snapshot := make([]domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		snapshot = append(snapshot, *tx)
	}
	summary := finance.SummarizeCashFlow(snapshot)

	ret := &domain.GSTReturn{
		ID:           newID(),
		Period:       periodLabel(input.StartDate, input.EndDate),
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		TotalIncome:  summary.TotalIncome,
		TotalExpense: summary.TotalExpenses,
		GSTCollected: summary.GSTCollected,
		GSTPaid:      summary.GSTPaid,
		NetGST:       summary.NetGST,
		Status:       domain.GSTReturnDraft,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.returns.Create(ctx, ret); err != nil {
		s.logger.Error().Err(err).Msg("failed to create gst return")
		return nil, err
	}

	s.logger.Info().
		Str("id", ret.ID).
		Str("period", ret.Period).
		Float64("net_gst", ret.NetGST).
		Int("transactions", len(snapshot)).
		Msg("gst return drafted")
	return ret, nil
}

func (s *GSTService) Submit(ctx context.Context, id string) (*domain.GSTReturn, error) {
	return s.transition(ctx, id, domain.GSTReturnSubmitted)
}

func (s *GSTService) MarkPaid(ctx context.Context, id string) (*domain.GSTReturn, error) {
	return s.transition(ctx, id, domain.GSTReturnPaid)
}

func (s *GSTService) transition(ctx context.Context, id string, next domain.GSTReturnStatus) (*domain.GSTReturn, error) {
	ret, err := s.returns.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !ret.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("gst return %s: %w (from %s to %s)", id, domain.ErrInvalidTransition, ret.Status, next)
	}

	if err := s.returns.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	ret.Status = next

	s.logger.Info().Str("id", id).Str("status", string(next)).Msg("gst return status updated")
	return ret, nil
}

// periodLabel renders the display label, e.g. "Nov 2025 - Dec 2025".
func periodLabel(start, end time.Time) string {
	return start.Format("Jan 2006") + " - " + end.Format("Jan 2006")
}
