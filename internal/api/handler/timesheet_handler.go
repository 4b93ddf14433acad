package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/ports"
)

// TimesheetHandler serves the timesheets page.
type TimesheetHandler struct {
	timesheets ports.TimesheetService
}

func NewTimesheetHandler(timesheets ports.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{timesheets: timesheets}
}

type dailyHoursRequest struct {
	Monday    float64 `json:"monday"    validate:"min=0,max=24"`
	Tuesday   float64 `json:"tuesday"   validate:"min=0,max=24"`
	Wednesday float64 `json:"wednesday" validate:"min=0,max=24"`
	Thursday  float64 `json:"thursday"  validate:"min=0,max=24"`
	Friday    float64 `json:"friday"    validate:"min=0,max=24"`
	Saturday  float64 `json:"saturday"  validate:"min=0,max=24"`
	Sunday    float64 `json:"sunday"    validate:"min=0,max=24"`
}

type createTimesheetRequest struct {
	EmployeeID   string            `json:"employee_id"   validate:"required"`
	EmployeeName string            `json:"employee_name" validate:"required"`
	WeekStarting string            `json:"week_starting" validate:"required"`
	Hours        dailyHoursRequest `json:"hours"`
	HourlyRate   float64           `json:"hourly_rate" validate:"required,gt=0"`
}

// List returns all recorded timesheets.
//
// @Summary      List timesheets
// @Tags         timesheets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Timesheet
// @Router       /v1/timesheets [get]
func (h *TimesheetHandler) List(c echo.Context) error {
	sheets, err := h.timesheets.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sheets)
}

// Create records a week of hours. Totals and the week-ending date are
// computed server-side.
//
// @Summary      Record a timesheet
// @Tags         timesheets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTimesheetRequest  true  "Week of hours"
// @Success      201   {object}  domain.Timesheet
// @Failure      400   {object}  errorResponse
// @Router       /v1/timesheets [post]
func (h *TimesheetHandler) Create(c echo.Context) error {
	var req createTimesheetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	weekStarting, err := time.Parse(dateLayout, req.WeekStarting)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "week_starting must be YYYY-MM-DD"})
	}

	sheet, err := h.timesheets.Create(c.Request().Context(), ports.CreateTimesheetInput{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		WeekStarting: weekStarting,
		Hours: domain.DailyHours{
			Monday:    req.Hours.Monday,
			Tuesday:   req.Hours.Tuesday,
			Wednesday: req.Hours.Wednesday,
			Thursday:  req.Hours.Thursday,
			Friday:    req.Hours.Friday,
			Saturday:  req.Hours.Saturday,
			Sunday:    req.Hours.Sunday,
		},
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sheet)
}
