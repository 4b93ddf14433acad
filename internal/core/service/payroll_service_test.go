package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/ports"
)

type stubPayrollRepo struct {
	entries []*domain.PayrollEntry
}

func (r *stubPayrollRepo) List(_ context.Context) ([]*domain.PayrollEntry, error) {
	return r.entries, nil
}

func (r *stubPayrollRepo) FindByID(_ context.Context, id string) (*domain.PayrollEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrPayrollNotFound
}

func (r *stubPayrollRepo) Create(_ context.Context, e *domain.PayrollEntry) error {
	clone := *e
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *stubPayrollRepo) UpdateStatus(_ context.Context, id string, status domain.PayrollStatus) error {
	for _, e := range r.entries {
		if e.ID == id {
			e.Status = status
			return nil
		}
	}
	return domain.ErrPayrollNotFound
}

func TestPayrollService_Run(t *testing.T) {
	repo := &stubPayrollRepo{}
	svc := NewPayrollService(repo, zerolog.Nop())

	entries, err := svc.Run(context.Background(), ports.RunPayrollInput{
		Period: "December 2025",
		Employees: []ports.PayrollLineInput{
			{EmployeeID: "emp1", EmployeeName: "John Smith", GrossPay: 6250.00, PAYE: 1187.50},
			{EmployeeID: "emp2", EmployeeName: "Sarah Johnson", GrossPay: 3750.00, PAYE: 562.50},
		},
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if math.Abs(first.KiwiSaverEmployee-187.50) > 1e-9 {
		t.Fatalf("employee kiwisaver: got %v, want 187.50", first.KiwiSaverEmployee)
	}
	if math.Abs(first.KiwiSaverEmployer-187.50) > 1e-9 {
		t.Fatalf("employer kiwisaver: got %v, want 187.50", first.KiwiSaverEmployer)
	}
	if math.Abs(first.NetPay-4875.00) > 1e-9 {
		t.Fatalf("net pay: got %v, want 4875.00", first.NetPay)
	}
	if first.Status != domain.PayrollProcessed {
		t.Fatalf("run entries should be processed, got %s", first.Status)
	}

	second := entries[1]
	if math.Abs(second.NetPay-3075.00) > 1e-9 {
		t.Fatalf("second net pay: got %v, want 3075.00", second.NetPay)
	}

	if len(repo.entries) != 2 {
		t.Fatalf("entries not persisted")
	}
}

func TestPayrollService_MarkPaid(t *testing.T) {
	repo := &stubPayrollRepo{}
	svc := NewPayrollService(repo, zerolog.Nop())

	entries, err := svc.Run(context.Background(), ports.RunPayrollInput{
		Period:    "December 2025",
		Employees: []ports.PayrollLineInput{{EmployeeID: "emp1", GrossPay: 1000, PAYE: 150}},
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	paid, err := svc.MarkPaid(context.Background(), entries[0].ID)
	if err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	if paid.Status != domain.PayrollPaid {
		t.Fatalf("expected paid, got %s", paid.Status)
	}

	// Paid is terminal.
	if _, err := svc.MarkPaid(context.Background(), entries[0].ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
