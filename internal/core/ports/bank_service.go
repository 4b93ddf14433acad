package ports

import (
	"context"

	"github.com/aitax/tax-system/internal/core/domain"
)

// ClassificationJob asks the async workers to suggest a category for one
// transaction.
type ClassificationJob struct {
	TransactionID string
}

// ClassificationProcessor runs a single classification job. Implemented by
// the bank service, consumed by the queue dispatcher.
type ClassificationProcessor interface {
	Process(ctx context.Context, job ClassificationJob) error
}

// ClassificationQueue is the dispatcher-facing interface the bank service
// uses to hand off jobs.
type ClassificationQueue interface {
	Enqueue(job ClassificationJob)
	EnqueueBatch(jobs []ClassificationJob)
}

// ImportResult reports what a simulated bank import did.
type ImportResult struct {
	Imported int64
	Total    int64
}

// ListTransactionsResult is returned by ListTransactions.
type ListTransactionsResult struct {
	Items      []*domain.Transaction
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BankService covers the bank-import page: listing the feed, the simulated
// import, AI classification hand-off, and manual tagging.
type BankService interface {
	ListTransactions(ctx context.Context, filter ListTransactionsFilter) (*ListTransactionsResult, error)
	// RunImport simulates ingesting a bank file: the seeded feed is marked
	// imported. No file is parsed.
	RunImport(ctx context.Context) (*ImportResult, error)
	// Classify enqueues one transaction for async category suggestion.
	Classify(ctx context.Context, transactionID string) error
	// ClassifyAll enqueues the whole feed and returns how many jobs were queued.
	ClassifyAll(ctx context.Context) (int, error)
	// SetCategory records a manually confirmed category.
	SetCategory(ctx context.Context, transactionID, category string) (*domain.Transaction, error)
}
