package ports

import (
	"context"
	"time"

	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/finance"
)

// ReportRepository serves the stored annual profit and loss statements.
type ReportRepository interface {
	ListProfitLoss(ctx context.Context) ([]*domain.ProfitLossReport, error)
}

// TaxSummary is the dashboard's live tax position, derived from the full
// transaction feed.
type TaxSummary struct {
	Summary          finance.CashFlowSummary
	PeriodStart      time.Time
	PeriodEnd        time.Time
	TransactionCount int
}

// ReportService serves the tax-reports page.
type ReportService interface {
	ProfitLoss(ctx context.Context) ([]*domain.ProfitLossReport, error)
	TaxSummary(ctx context.Context) (*TaxSummary, error)
	// DashboardSummary aggregates the transaction feed into the headline
	// dashboard figures.
	DashboardSummary(ctx context.Context) (*finance.CashFlowSummary, error)
}
