package ports

import (
	"context"
	"time"

	"github.com/aitax/tax-system/internal/core/domain"
)

// ListTransactionsFilter carries all query parameters for listing bank
// transactions.
type ListTransactionsFilter struct {
	Type     string    // optional: "income" or "expense"
	Category string    // optional: exact category match
	DateFrom time.Time // optional: date >= DateFrom
	DateTo   time.Time // optional: date <= DateTo
	Page     int       // 1-based
	Limit    int       // max rows per page (capped at 100 by service)
}

// TransactionRepository defines persistence operations for bank transactions.
type TransactionRepository interface {
	// List returns a page of transactions matching filter and the total count.
	List(ctx context.Context, filter ListTransactionsFilter) ([]*domain.Transaction, int64, error)
	// ListBetween returns every transaction dated inside [from, to],
	// unpaged, for summary computations.
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Transaction, error)
	FindByID(ctx context.Context, id string) (*domain.Transaction, error)
	// MarkImported flags all pending transactions as imported and returns
	// how many were flagged.
	MarkImported(ctx context.Context, at time.Time) (int64, error)
	// UpdateCategory sets the manually confirmed category.
	UpdateCategory(ctx context.Context, id, category string) error
	// UpdateClassification records the AI-suggested category and confidence.
	UpdateClassification(ctx context.Context, id, categoryAI string, confidence float64) error
}
