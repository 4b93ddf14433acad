package ports

import (
	"context"

	"github.com/aitax/tax-system/internal/core/domain"
)

// PayrollRepository defines persistence for payroll entries.
type PayrollRepository interface {
	List(ctx context.Context) ([]*domain.PayrollEntry, error)
	FindByID(ctx context.Context, id string) (*domain.PayrollEntry, error)
	Create(ctx context.Context, e *domain.PayrollEntry) error
	UpdateStatus(ctx context.Context, id string, status domain.PayrollStatus) error
}

// PayrollLineInput is one employee's inputs for a pay run: gross pay plus
// the PAYE figure supplied from the IRD tables.
type PayrollLineInput struct {
	EmployeeID   string
	EmployeeName string
	GrossPay     float64
	PAYE         float64
}

// RunPayrollInput covers one pay period.
type RunPayrollInput struct {
	Period    string
	Employees []PayrollLineInput
}

// PayrollService runs pay periods and tracks entry lifecycle.
type PayrollService interface {
	List(ctx context.Context) ([]*domain.PayrollEntry, error)
	// Run derives KiwiSaver and net pay for every employee and stores the
	// entries as processed.
	Run(ctx context.Context, input RunPayrollInput) ([]*domain.PayrollEntry, error)
	MarkPaid(ctx context.Context, id string) (*domain.PayrollEntry, error)
}
