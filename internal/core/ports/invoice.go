package ports

import (
	"context"
	"time"

	"github.com/aitax/tax-system/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	List(ctx context.Context) ([]*domain.Invoice, error)
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Invoice, error)
	Create(ctx context.Context, inv *domain.Invoice) error
	UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus) error
}

// LineItemInput is one billable line on a new invoice. The extended amount
// is always recomputed server-side.
type LineItemInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

// CreateInvoiceInput carries all data needed to raise an invoice.
type CreateInvoiceInput struct {
	ClientName     string
	ClientEmail    string
	IssueDate      time.Time
	DueDate        time.Time
	Items          []LineItemInput
	IdempotencyKey string
}

// CreateInvoiceResult is returned by CreateInvoice.
type CreateInvoiceResult struct {
	Invoice *domain.Invoice
	// AlreadyExisted is true when the Idempotency-Key matched an existing invoice.
	AlreadyExisted bool
}

// InvoiceService defines use-case operations for invoices.
type InvoiceService interface {
	List(ctx context.Context) ([]*domain.Invoice, error)
	Get(ctx context.Context, id string) (*domain.Invoice, error)
	Create(ctx context.Context, input CreateInvoiceInput) (*CreateInvoiceResult, error)
	Send(ctx context.Context, id string) (*domain.Invoice, error)
	MarkPaid(ctx context.Context, id string) (*domain.Invoice, error)
}
