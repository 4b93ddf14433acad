package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/aitax/tax-system/internal/core/domain"
)

type stubReportRepo struct {
	reports []*domain.ProfitLossReport
}

func (r *stubReportRepo) ListProfitLoss(_ context.Context) ([]*domain.ProfitLossReport, error) {
	return r.reports, nil
}

func TestReportService_TaxSummary(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, decemberFeed(), zerolog.Nop())

	summary, err := svc.TaxSummary(context.Background())
	if err != nil {
		t.Fatalf("tax summary: %v", err)
	}

	// The whole feed counts: both December transactions plus October's.
	if math.Abs(summary.Summary.TotalIncome-15749.00) > 1e-9 {
		t.Fatalf("total income: got %v, want 15749.00", summary.Summary.TotalIncome)
	}
	if math.Abs(summary.Summary.TotalExpenses-345.60) > 1e-9 {
		t.Fatalf("total expenses: got %v, want 345.60", summary.Summary.TotalExpenses)
	}
	if summary.TransactionCount != 3 {
		t.Fatalf("expected 3 transactions, got %d", summary.TransactionCount)
	}

	wantStart := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)
	if !summary.PeriodStart.Equal(wantStart) {
		t.Fatalf("period start: got %v, want %v", summary.PeriodStart, wantStart)
	}
	if !summary.PeriodEnd.Equal(wantEnd) {
		t.Fatalf("period end: got %v, want %v", summary.PeriodEnd, wantEnd)
	}
}

func TestReportService_DashboardSummary_EmptyFeed(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, &stubTxRepo{}, zerolog.Nop())

	summary, err := svc.DashboardSummary(context.Background())
	if err != nil {
		t.Fatalf("dashboard summary: %v", err)
	}
	if summary.TotalIncome != 0 || summary.TotalExpenses != 0 || summary.Profit != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}

func TestReportService_ProfitLoss(t *testing.T) {
	repo := &stubReportRepo{reports: []*domain.ProfitLossReport{
		{Year: 2025, NetProfit: 165500},
		{Year: 2024, NetProfit: 143500},
	}}
	svc := NewReportService(repo, &stubTxRepo{}, zerolog.Nop())

	reports, err := svc.ProfitLoss(context.Background())
	if err != nil {
		t.Fatalf("profit loss: %v", err)
	}
	if len(reports) != 2 || reports[0].Year != 2025 {
		t.Fatalf("unexpected reports: %+v", reports)
	}
}
