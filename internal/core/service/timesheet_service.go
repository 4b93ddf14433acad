package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/finance"
	"github.com/aitax/tax-system/internal/core/ports"
)

// TimesheetService records weekly timesheets, deriving totals from the
// daily hours and hourly rate.
type TimesheetService struct {
	repo   ports.TimesheetRepository
	logger zerolog.Logger
}

func NewTimesheetService(repo ports.TimesheetRepository, logger zerolog.Logger) *TimesheetService {
	return &TimesheetService{repo: repo, logger: logger}
}

func (s *TimesheetService) List(ctx context.Context) ([]*domain.Timesheet, error) {
	return s.repo.List(ctx)
}

func (s *TimesheetService) Create(ctx context.Context, input ports.CreateTimesheetInput) (*domain.Timesheet, error) {
	ts := &domain.Timesheet{
		ID:           newID(),
		EmployeeID:   input.EmployeeID,
		EmployeeName: input.EmployeeName,
		WeekStarting: input.WeekStarting,
		WeekEnding:   input.WeekStarting.AddDate(0, 0, 6),
		Hours:        input.Hours,
		TotalHours:   input.Hours.Total(),
		HourlyRate:   input.HourlyRate,
		TotalPay:     finance.TimesheetPay(input.Hours, input.HourlyRate),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, ts); err != nil {
		s.logger.Error().Err(err).Str("employee", input.EmployeeID).Msg("failed to store timesheet")
		return nil, err
	}

	s.logger.Info().
		Str("employee", ts.EmployeeID).
		Float64("hours", ts.TotalHours).
		Float64("pay", ts.TotalPay).
		Msg("timesheet recorded")
	return ts, nil
}
