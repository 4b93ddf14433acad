package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/ports"
)

type stubTimesheetRepo struct {
	sheets []*domain.Timesheet
}

func (r *stubTimesheetRepo) List(_ context.Context) ([]*domain.Timesheet, error) {
	return r.sheets, nil
}

func (r *stubTimesheetRepo) Create(_ context.Context, ts *domain.Timesheet) error {
	clone := *ts
	r.sheets = append(r.sheets, &clone)
	return nil
}

func TestTimesheetService_Create_DerivesTotals(t *testing.T) {
	repo := &stubTimesheetRepo{}
	svc := NewTimesheetService(repo, zerolog.Nop())

	weekStart := time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC)
	ts, err := svc.Create(context.Background(), ports.CreateTimesheetInput{
		EmployeeID:   "emp1",
		EmployeeName: "John Smith",
		WeekStarting: weekStart,
		Hours:        domain.DailyHours{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8},
		HourlyRate:   36.06,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if ts.TotalHours != 40 {
		t.Fatalf("expected 40 total hours, got %v", ts.TotalHours)
	}
	if math.Abs(ts.TotalPay-1442.40) > 1e-9 {
		t.Fatalf("expected pay 1442.40, got %v", ts.TotalPay)
	}
	wantEnd := time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)
	if !ts.WeekEnding.Equal(wantEnd) {
		t.Fatalf("expected week ending %v, got %v", wantEnd, ts.WeekEnding)
	}
	if ts.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if len(repo.sheets) != 1 {
		t.Fatalf("timesheet not stored")
	}
}

func TestTimesheetService_Create_ZeroHours(t *testing.T) {
	repo := &stubTimesheetRepo{}
	svc := NewTimesheetService(repo, zerolog.Nop())

	ts, err := svc.Create(context.Background(), ports.CreateTimesheetInput{
		EmployeeID:   "emp2",
		EmployeeName: "Sarah Johnson",
		WeekStarting: time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC),
		HourlyRate:   35.90,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ts.TotalHours != 0 || ts.TotalPay != 0 {
		t.Fatalf("expected zero totals, got %v hours %v pay", ts.TotalHours, ts.TotalPay)
	}
}
