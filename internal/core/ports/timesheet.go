package ports

import (
	"context"
	"time"

	"github.com/aitax/tax-system/internal/core/domain"
)

// TimesheetRepository defines persistence for weekly timesheets.
type TimesheetRepository interface {
	List(ctx context.Context) ([]*domain.Timesheet, error)
	Create(ctx context.Context, ts *domain.Timesheet) error
}

// CreateTimesheetInput carries a week of hours for one employee. Totals
// are computed server-side.
type CreateTimesheetInput struct {
	EmployeeID   string
	EmployeeName string
	WeekStarting time.Time
	Hours        domain.DailyHours
	HourlyRate   float64
}

// TimesheetService records and lists weekly timesheets.
type TimesheetService interface {
	List(ctx context.Context) ([]*domain.Timesheet, error)
	Create(ctx context.Context, input CreateTimesheetInput) (*domain.Timesheet, error)
}
