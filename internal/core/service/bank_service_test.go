package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/ports"
)

type stubQueue struct {
	jobs []ports.ClassificationJob
}

func (q *stubQueue) Enqueue(job ports.ClassificationJob) {
	q.jobs = append(q.jobs, job)
}

func (q *stubQueue) EnqueueBatch(jobs []ports.ClassificationJob) {
	q.jobs = append(q.jobs, jobs...)
}

type stubDeduper struct {
	marked map[string]bool
}

func newStubDeduper() *stubDeduper {
	return &stubDeduper{marked: make(map[string]bool)}
}

func (d *stubDeduper) IsDuplicate(_ context.Context, id string) (bool, error) {
	return d.marked[id], nil
}

func (d *stubDeduper) Mark(_ context.Context, id string) error {
	d.marked[id] = true
	return nil
}

func TestBankService_RunImport(t *testing.T) {
	repo := decemberFeed()
	svc := NewBankService(repo, &stubQueue{}, newStubDeduper(), zerolog.Nop())

	result, err := svc.RunImport(context.Background())
	if err != nil {
		t.Fatalf("run import failed: %v", err)
	}
	if result.Imported != 3 {
		t.Fatalf("expected 3 imported, got %d", result.Imported)
	}

	// A second run has nothing left to import.
	again, err := svc.RunImport(context.Background())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if again.Imported != 0 {
		t.Fatalf("expected 0 imported on rerun, got %d", again.Imported)
	}
}

func TestBankService_Classify_Enqueues(t *testing.T) {
	repo := decemberFeed()
	queue := &stubQueue{}
	svc := NewBankService(repo, queue, newStubDeduper(), zerolog.Nop())

	if err := svc.Classify(context.Background(), "1"); err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if len(queue.jobs) != 1 || queue.jobs[0].TransactionID != "1" {
		t.Fatalf("job not enqueued: %+v", queue.jobs)
	}
}

func TestBankService_Classify_UnknownTransaction(t *testing.T) {
	svc := NewBankService(&stubTxRepo{}, &stubQueue{}, newStubDeduper(), zerolog.Nop())

	if err := svc.Classify(context.Background(), "missing"); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestBankService_ClassifyAll(t *testing.T) {
	repo := decemberFeed()
	queue := &stubQueue{}
	svc := NewBankService(repo, queue, newStubDeduper(), zerolog.Nop())

	n, err := svc.ClassifyAll(context.Background())
	if err != nil {
		t.Fatalf("classify all failed: %v", err)
	}
	if n != 3 || len(queue.jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d queued / %d reported", len(queue.jobs), n)
	}
}

// pagedTxRepo honors the paging filter, unlike stubTxRepo which returns
// everything regardless.
type pagedTxRepo struct {
	stubTxRepo
}

func (r *pagedTxRepo) List(_ context.Context, filter ports.ListTransactionsFilter) ([]*domain.Transaction, int64, error) {
	total := int64(len(r.transactions))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(r.transactions) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(r.transactions) {
		end = len(r.transactions)
	}
	return r.transactions[start:end], total, nil
}

func TestBankService_ClassifyAll_WalksEveryPage(t *testing.T) {
	repo := &pagedTxRepo{}
	for i := 0; i < 150; i++ {
		repo.transactions = append(repo.transactions, &domain.Transaction{
			ID:   fmt.Sprintf("tx-%d", i),
			Type: domain.TransactionExpense,
		})
	}
	queue := &stubQueue{}
	svc := NewBankService(repo, queue, newStubDeduper(), zerolog.Nop())

	n, err := svc.ClassifyAll(context.Background())
	if err != nil {
		t.Fatalf("classify all failed: %v", err)
	}
	if n != 150 || len(queue.jobs) != 150 {
		t.Fatalf("expected all 150 jobs, got %d queued / %d reported", len(queue.jobs), n)
	}
	if queue.jobs[149].TransactionID != "tx-149" {
		t.Fatalf("last job should be tx-149, got %q", queue.jobs[149].TransactionID)
	}
}

func TestBankService_Process_SetsSuggestion(t *testing.T) {
	repo := &stubTxRepo{transactions: []*domain.Transaction{
		{ID: "tx-rent", Description: "Rent Payment - Commercial Property", Type: domain.TransactionExpense, Date: time.Now()},
	}}
	svc := NewBankService(repo, &stubQueue{}, newStubDeduper(), zerolog.Nop())

	if err := svc.Process(context.Background(), ports.ClassificationJob{TransactionID: "tx-rent"}); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	tx := repo.transactions[0]
	if tx.CategoryAI != "Rent" {
		t.Fatalf("expected Rent suggestion, got %q", tx.CategoryAI)
	}
	if tx.Confidence < 0.9 {
		t.Fatalf("expected high confidence, got %v", tx.Confidence)
	}
}

func TestBankService_Process_DeduplicatesJobs(t *testing.T) {
	repo := &stubTxRepo{transactions: []*domain.Transaction{
		{ID: "tx-1", Description: "Internet - Spark NZ", Type: domain.TransactionExpense},
	}}
	dedup := newStubDeduper()
	svc := NewBankService(repo, &stubQueue{}, dedup, zerolog.Nop())

	job := ports.ClassificationJob{TransactionID: "tx-1"}
	if err := svc.Process(context.Background(), job); err != nil {
		t.Fatalf("first process failed: %v", err)
	}

	repo.transactions[0].CategoryAI = "tampered"
	if err := svc.Process(context.Background(), job); err != nil {
		t.Fatalf("duplicate process should be a silent skip: %v", err)
	}
	if repo.transactions[0].CategoryAI != "tampered" {
		t.Fatalf("duplicate job was re-processed")
	}
}

// brokenClassifyRepo rejects every suggestion write.
type brokenClassifyRepo struct {
	stubTxRepo
}

func (r *brokenClassifyRepo) UpdateClassification(_ context.Context, _, _ string, _ float64) error {
	return errors.New("write failed")
}

func TestBankService_Process_FailedWriteStaysRetriable(t *testing.T) {
	repo := &brokenClassifyRepo{stubTxRepo{transactions: []*domain.Transaction{
		{ID: "tx-1", Description: "Rent Payment", Type: domain.TransactionExpense},
	}}}
	dedup := newStubDeduper()
	svc := NewBankService(repo, &stubQueue{}, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), ports.ClassificationJob{TransactionID: "tx-1"}); err == nil {
		t.Fatal("expected the suggestion write failure to surface")
	}
	if dedup.marked["tx-1"] {
		t.Fatal("failed classification must not set the dedup key")
	}
}

func TestSuggestCategory(t *testing.T) {
	cases := []struct {
		description string
		txType      domain.TransactionType
		want        string
	}{
		{"Office Supplies - Warehouse Stationery", domain.TransactionExpense, "Office Supplies"},
		{"Rent Payment - Commercial Property", domain.TransactionExpense, "Rent"},
		{"Internet - Spark NZ", domain.TransactionExpense, "Utilities"},
		{"Software Subscription - Adobe", domain.TransactionExpense, "Software"},
		{"Marketing - Google Ads", domain.TransactionExpense, "Marketing"},
		{"Equipment Purchase - PB Tech", domain.TransactionExpense, "Equipment"},
		{"Client Payment - ABC Ltd", domain.TransactionIncome, "Sales Revenue"},
		{"Professional Services - Consulting", domain.TransactionIncome, "Service Revenue"},
		{"Mystery line", domain.TransactionIncome, "Other Income"},
		{"Mystery line", domain.TransactionExpense, "Other Expenses"},
	}

	for _, c := range cases {
		got, confidence := suggestCategory(c.description, c.txType)
		if got != c.want {
			t.Fatalf("suggestCategory(%q): got %q, want %q", c.description, got, c.want)
		}
		if confidence <= 0 || confidence > 1 {
			t.Fatalf("confidence out of range for %q: %v", c.description, confidence)
		}
	}
}

func TestBankService_ListTransactions_CapsLimit(t *testing.T) {
	svc := NewBankService(decemberFeed(), &stubQueue{}, newStubDeduper(), zerolog.Nop())

	result, err := svc.ListTransactions(context.Background(), ports.ListTransactionsFilter{Page: 0, Limit: 500})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Page != 1 {
		t.Fatalf("page should default to 1, got %d", result.Page)
	}
	if result.Limit != 100 {
		t.Fatalf("limit should be capped at 100, got %d", result.Limit)
	}
}
