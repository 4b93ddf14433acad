package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/ports"
)

const (
	maxPageLimit     = 100
	defaultPageLimit = 20
)

// ClassificationDeduper abstracts the dedup store (Redis) that keeps a
// transaction from being re-queued while a suggestion is still fresh.
type ClassificationDeduper interface {
	IsDuplicate(ctx context.Context, transactionID string) (bool, error)
	Mark(ctx context.Context, transactionID string) error
}

// BankService implements the bank-import page: the transaction feed, the
// simulated import, classification hand-off, and manual tagging.
type BankService struct {
	repo   ports.TransactionRepository
	queue  ports.ClassificationQueue
	dedup  ClassificationDeduper
	logger zerolog.Logger
}

func NewBankService(repo ports.TransactionRepository, queue ports.ClassificationQueue, dedup ClassificationDeduper, logger zerolog.Logger) *BankService {
	return &BankService{repo: repo, queue: queue, dedup: dedup, logger: logger}
}

func (s *BankService) ListTransactions(ctx context.Context, filter ports.ListTransactionsFilter) (*ports.ListTransactionsResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}

	return &ports.ListTransactionsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// RunImport simulates a bank-file import. No file is parsed: the seeded
// feed is flagged imported and the counts reported back.
func (s *BankService) RunImport(ctx context.Context) (*ports.ImportResult, error) {
	imported, err := s.repo.MarkImported(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("run import: %w", err)
	}

	_, total, err := s.repo.List(ctx, ports.ListTransactionsFilter{Page: 1, Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("run import: %w", err)
	}

	s.logger.Info().Int64("imported", imported).Int64("total", total).Msg("bank import completed")
	return &ports.ImportResult{Imported: imported, Total: total}, nil
}

// Classify enqueues a single transaction for async category suggestion.
func (s *BankService) Classify(ctx context.Context, transactionID string) error {
	if _, err := s.repo.FindByID(ctx, transactionID); err != nil {
		return err
	}
	s.queue.Enqueue(ports.ClassificationJob{TransactionID: transactionID})
	return nil
}

// ClassifyAll enqueues the whole feed, preserving per-transaction ordering
// through the dispatcher shards. The feed is walked page by page so feeds
// larger than one page are still queued in full.
func (s *BankService) ClassifyAll(ctx context.Context) (int, error) {
	var jobs []ports.ClassificationJob
	for page := 1; ; page++ {
		items, total, err := s.repo.List(ctx, ports.ListTransactionsFilter{Page: page, Limit: maxPageLimit})
		if err != nil {
			return 0, fmt.Errorf("classify all: %w", err)
		}
		for _, tx := range items {
			jobs = append(jobs, ports.ClassificationJob{TransactionID: tx.ID})
		}
		if len(items) == 0 || int64(len(jobs)) >= total {
			break
		}
	}
	s.queue.EnqueueBatch(jobs)

	s.logger.Info().Int("queued", len(jobs)).Msg("classification batch queued")
	return len(jobs), nil
}

// SetCategory records a manually confirmed category (accepting or
// overriding the suggestion).
func (s *BankService) SetCategory(ctx context.Context, transactionID, category string) (*domain.Transaction, error) {
	if err := s.repo.UpdateCategory(ctx, transactionID, category); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, transactionID)
}

// Process runs one classification job from the dispatcher. Duplicate jobs
// inside the dedup window are silently skipped.
func (s *BankService) Process(ctx context.Context, job ports.ClassificationJob) error {
	isDup, err := s.dedup.IsDuplicate(ctx, job.TransactionID)
	if err != nil {
		s.logger.Warn().Err(err).Str("transaction", job.TransactionID).Msg("dedup check failed, classifying anyway")
	} else if isDup {
		s.logger.Debug().Str("transaction", job.TransactionID).Msg("duplicate classification skipped")
		return nil
	}

	tx, err := s.repo.FindByID(ctx, job.TransactionID)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	category, confidence := suggestCategory(tx.Description, tx.Type)
	if err := s.repo.UpdateClassification(ctx, job.TransactionID, category, confidence); err != nil {
		return fmt.Errorf("classify: update suggestion: %w", err)
	}

	// Marked only once the suggestion is stored, so a failed write leaves
	// the transaction eligible for another attempt.
	if markErr := s.dedup.Mark(ctx, job.TransactionID); markErr != nil {
		s.logger.Warn().Err(markErr).Str("transaction", job.TransactionID).Msg("failed to set dedup key")
	}

	s.logger.Info().
		Str("transaction", job.TransactionID).
		Str("category", category).
		Float64("confidence", confidence).
		Msg("transaction classified")
	return nil
}

// categoryRule matches a description keyword to a suggested category.
type categoryRule struct {
	keyword    string
	category   string
	confidence float64
}

// Keyword table standing in for the classification model. First match wins.
var categoryRules = []categoryRule{
	{"rent", "Rent", 0.99},
	{"stationery", "Office Supplies", 0.92},
	{"supplies", "Office Supplies", 0.92},
	{"internet", "Utilities", 0.96},
	{"power", "Utilities", 0.96},
	{"spark", "Utilities", 0.96},
	{"subscription", "Software", 0.94},
	{"software", "Software", 0.94},
	{"ads", "Marketing", 0.93},
	{"marketing", "Marketing", 0.93},
	{"equipment", "Equipment", 0.91},
	{"consulting", "Service Revenue", 0.98},
	{"services", "Service Revenue", 0.96},
	{"payment", "Sales Revenue", 0.95},
}

func suggestCategory(description string, txType domain.TransactionType) (string, float64) {
	desc := strings.ToLower(description)
	for _, rule := range categoryRules {
		if strings.Contains(desc, rule.keyword) {
			return rule.category, rule.confidence
		}
	}
	if txType == domain.TransactionIncome {
		return "Other Income", 0.50
	}
	return "Other Expenses", 0.50
}
