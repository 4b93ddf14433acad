package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aitax/tax-system/internal/core/ports"
)

// PayrollHandler serves the payroll page.
type PayrollHandler struct {
	payroll ports.PayrollService
}

func NewPayrollHandler(payroll ports.PayrollService) *PayrollHandler {
	return &PayrollHandler{payroll: payroll}
}

type payrollLineRequest struct {
	EmployeeID   string  `json:"employee_id"   validate:"required"`
	EmployeeName string  `json:"employee_name" validate:"required"`
	GrossPay     float64 `json:"gross_pay"     validate:"required,gt=0"`
	PAYE         float64 `json:"paye"          validate:"min=0"`
}

type runPayrollRequest struct {
	Period    string               `json:"period"    validate:"required"`
	Employees []payrollLineRequest `json:"employees" validate:"required,min=1,dive"`
}

// List returns all payroll entries, newest period first.
//
// @Summary      List payroll entries
// @Tags         payroll
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.PayrollEntry
// @Router       /v1/payroll [get]
func (h *PayrollHandler) List(c echo.Context) error {
	entries, err := h.payroll.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Run processes a pay period: KiwiSaver and net pay are derived per
// employee and the entries stored as processed.
//
// @Summary      Run a pay period
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      runPayrollRequest  true  "Period and employee inputs"
// @Success      201   {array}   domain.PayrollEntry
// @Failure      400   {object}  errorResponse
// @Router       /v1/payroll/run [post]
func (h *PayrollHandler) Run(c echo.Context) error {
	var req runPayrollRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	input := ports.RunPayrollInput{Period: req.Period}
	for _, line := range req.Employees {
		input.Employees = append(input.Employees, ports.PayrollLineInput{
			EmployeeID:   line.EmployeeID,
			EmployeeName: line.EmployeeName,
			GrossPay:     line.GrossPay,
			PAYE:         line.PAYE,
		})
	}

	entries, err := h.payroll.Run(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entries)
}

// MarkPaid settles a processed entry.
//
// @Summary      Mark a payroll entry paid
// @Tags         payroll
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Payroll entry ID"
// @Success      200  {object}  domain.PayrollEntry
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/payroll/{id}/pay [post]
func (h *PayrollHandler) MarkPaid(c echo.Context) error {
	entry, err := h.payroll.MarkPaid(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}
