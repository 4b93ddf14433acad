package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/finance"
	"github.com/aitax/tax-system/internal/core/ports"
)

// InvoiceService raises and tracks customer invoices. Totals are always
// recomputed server-side from the line items; client-supplied figures are
// never trusted.
type InvoiceService struct {
	repo   ports.InvoiceRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewInvoiceService(repo ports.InvoiceRepository, logger zerolog.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, logger: logger, now: time.Now}
}

func (s *InvoiceService) List(ctx context.Context) ([]*domain.Invoice, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	for _, inv := range invoices {
		inv.Status = inv.EffectiveStatus(now)
	}
	return invoices, nil
}

func (s *InvoiceService) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Status = inv.EffectiveStatus(s.now().UTC())
	return inv, nil
}

// Create raises a new draft invoice. If an idempotency key is provided and
// already seen, the previously created invoice is returned without side
// effects.
func (s *InvoiceService) Create(ctx context.Context, input ports.CreateInvoiceInput) (*ports.CreateInvoiceResult, error) {
	if input.IdempotencyKey != "" {
		existing, err := s.repo.FindByIdempotencyKey(ctx, input.IdempotencyKey)
		if err == nil && existing != nil {
			s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("invoice_number", existing.InvoiceNumber).Msg("idempotent replay")
			return &ports.CreateInvoiceResult{Invoice: existing, AlreadyExisted: true}, nil
		}
	}

	items := make([]domain.LineItem, 0, len(input.Items))
	for _, in := range input.Items {
		item := domain.LineItem{
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
		}
		item.Amount = finance.LineAmount(item)
		items = append(items, item)
	}
	subtotal, gst, total := finance.InvoiceTotals(items)

	now := s.now().UTC()
	issueDate := input.IssueDate
	if issueDate.IsZero() {
		issueDate = now
	}
	dueDate := input.DueDate
	if dueDate.IsZero() {
		dueDate = issueDate.AddDate(0, 1, 0)
	}

	inv := &domain.Invoice{
		ID:             newID(),
		InvoiceNumber:  generateInvoiceNumber(now),
		ClientName:     input.ClientName,
		ClientEmail:    input.ClientEmail,
		IssueDate:      issueDate,
		DueDate:        dueDate,
		Items:          items,
		Subtotal:       subtotal,
		GST:            gst,
		Total:          total,
		Status:         domain.InvoiceDraft,
		IdempotencyKey: input.IdempotencyKey,
		CreatedAt:      now,
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		s.logger.Error().Err(err).Msg("failed to create invoice")
		return nil, err
	}

	s.logger.Info().
		Str("invoice_number", inv.InvoiceNumber).
		Str("client", inv.ClientName).
		Float64("total", inv.Total).
		Msg("invoice created")
	return &ports.CreateInvoiceResult{Invoice: inv}, nil
}

func (s *InvoiceService) Send(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.transition(ctx, id, domain.InvoiceSent)
}

func (s *InvoiceService) MarkPaid(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.transition(ctx, id, domain.InvoicePaid)
}

func (s *InvoiceService) transition(ctx context.Context, id string, next domain.InvoiceStatus) (*domain.Invoice, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The stored status drives the state machine; overdue is a read-time
	// view of sent, so a sent-but-overdue invoice can still be paid.
	if !inv.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("invoice %s: %w (from %s to %s)", id, domain.ErrInvalidTransition, inv.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	inv.Status = next

	s.logger.Info().Str("invoice_number", inv.InvoiceNumber).Str("status", string(next)).Msg("invoice status updated")
	return inv, nil
}

// generateInvoiceNumber returns a unique invoice number in the format
// INV-<year>-XXXXXX.
func generateInvoiceNumber(now time.Time) string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("INV-%d-%06X", now.Year(), now.UnixNano()&0xFFFFFF)
	}
	return fmt.Sprintf("INV-%d-%06X", now.Year(), b)
}
