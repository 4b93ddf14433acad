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

// ReportService serves the tax-reports page and the dashboard headline
// figures, all derived from read-only snapshots.
type ReportService struct {
	reports      ports.ReportRepository
	transactions ports.TransactionRepository
	logger       zerolog.Logger
}

func NewReportService(reports ports.ReportRepository, transactions ports.TransactionRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{reports: reports, transactions: transactions, logger: logger}
}

func (s *ReportService) ProfitLoss(ctx context.Context) ([]*domain.ProfitLossReport, error) {
	return s.reports.ListProfitLoss(ctx)
}

// TaxSummary derives the live tax position from the whole transaction feed.
func (s *ReportService) TaxSummary(ctx context.Context) (*ports.TaxSummary, error) {
	snapshot, start, end, err := s.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("tax summary: %w", err)
	}

	return &ports.TaxSummary{
		Summary:          finance.SummarizeCashFlow(snapshot),
		PeriodStart:      start,
		PeriodEnd:        end,
		TransactionCount: len(snapshot),
	}, nil
}

func (s *ReportService) DashboardSummary(ctx context.Context) (*finance.CashFlowSummary, error) {
	snapshot, _, _, err := s.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	summary := finance.SummarizeCashFlow(snapshot)
	return &summary, nil
}

// snapshot copies the full feed with its observed date range.
func (s *ReportService) snapshot(ctx context.Context) ([]domain.Transaction, time.Time, time.Time, error) {
	all, err := s.transactions.ListBetween(ctx, time.Time{}, time.Time{})
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}

	var start, end time.Time
	snapshot := make([]domain.Transaction, 0, len(all))
	for _, tx := range all {
		snapshot = append(snapshot, *tx)
		if start.IsZero() || tx.Date.Before(start) {
			start = tx.Date
		}
		if tx.Date.After(end) {
			end = tx.Date
		}
	}
	return snapshot, start, end, nil
}
