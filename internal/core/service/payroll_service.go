package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/finance"
	"github.com/aitax/tax-system/internal/core/ports"
)

// PayrollService runs pay periods. PAYE comes in from the caller (IRD
// tables are out of scope); KiwiSaver and net pay are derived here.
type PayrollService struct {
	repo   ports.PayrollRepository
	logger zerolog.Logger
}

func NewPayrollService(repo ports.PayrollRepository, logger zerolog.Logger) *PayrollService {
	return &PayrollService{repo: repo, logger: logger}
}

func (s *PayrollService) List(ctx context.Context) ([]*domain.PayrollEntry, error) {
	return s.repo.List(ctx)
}

// Run computes and stores one processed entry per employee.
func (s *PayrollService) Run(ctx context.Context, input ports.RunPayrollInput) ([]*domain.PayrollEntry, error) {
	now := time.Now().UTC()
	entries := make([]*domain.PayrollEntry, 0, len(input.Employees))

	for _, emp := range input.Employees {
		breakdown := finance.Payroll(emp.GrossPay, emp.PAYE)
		entry := &domain.PayrollEntry{
			ID:                newID(),
			EmployeeID:        emp.EmployeeID,
			EmployeeName:      emp.EmployeeName,
			Period:            input.Period,
			GrossPay:          emp.GrossPay,
			PAYE:              emp.PAYE,
			KiwiSaverEmployee: breakdown.KiwiSaverEmployee,
			KiwiSaverEmployer: breakdown.KiwiSaverEmployer,
			NetPay:            breakdown.NetPay,
			Status:            domain.PayrollProcessed,
			CreatedAt:         now,
		}

		if err := s.repo.Create(ctx, entry); err != nil {
			s.logger.Error().Err(err).Str("employee", emp.EmployeeID).Msg("failed to store payroll entry")
			return nil, fmt.Errorf("run payroll: %w", err)
		}
		entries = append(entries, entry)
	}

	s.logger.Info().Str("period", input.Period).Int("employees", len(entries)).Msg("payroll run completed")
	return entries, nil
}

func (s *PayrollService) MarkPaid(ctx context.Context, id string) (*domain.PayrollEntry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !entry.Status.CanTransitionTo(domain.PayrollPaid) {
		return nil, fmt.Errorf("payroll entry %s: %w (from %s to %s)", id, domain.ErrInvalidTransition, entry.Status, domain.PayrollPaid)
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.PayrollPaid); err != nil {
		return nil, err
	}
	entry.Status = domain.PayrollPaid
	return entry, nil
}
