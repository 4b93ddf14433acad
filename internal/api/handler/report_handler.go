package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aitax/tax-system/internal/core/ports"
)

// ReportHandler serves the tax-reports page and the dashboard summary.
type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type taxSummaryResponse struct {
	TotalIncome      float64   `json:"total_income"`
	TotalExpenses    float64   `json:"total_expenses"`
	GSTCollected     float64   `json:"gst_collected"`
	GSTPaid          float64   `json:"gst_paid"`
	NetGST           float64   `json:"net_gst"`
	Profit           float64   `json:"profit"`
	PeriodStart      time.Time `json:"period_start"`
	PeriodEnd        time.Time `json:"period_end"`
	TransactionCount int       `json:"transaction_count"`
}

type dashboardSummaryResponse struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	GSTCollected  float64 `json:"gst_collected"`
	GSTPaid       float64 `json:"gst_paid"`
	NetGST        float64 `json:"net_gst"`
	Profit        float64 `json:"profit"`
}

// ProfitLoss returns the stored annual statements.
//
// @Summary      List profit and loss reports
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ProfitLossReport
// @Router       /v1/reports/profit-loss [get]
func (h *ReportHandler) ProfitLoss(c echo.Context) error {
	reports, err := h.reports.ProfitLoss(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

// TaxSummary returns the live tax position derived from the full feed.
//
// @Summary      Get the current tax summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  taxSummaryResponse
// @Router       /v1/reports/tax-summary [get]
func (h *ReportHandler) TaxSummary(c echo.Context) error {
	summary, err := h.reports.TaxSummary(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, taxSummaryResponse{
		TotalIncome:      summary.Summary.TotalIncome,
		TotalExpenses:    summary.Summary.TotalExpenses,
		GSTCollected:     summary.Summary.GSTCollected,
		GSTPaid:          summary.Summary.GSTPaid,
		NetGST:           summary.Summary.NetGST,
		Profit:           summary.Summary.Profit,
		PeriodStart:      summary.PeriodStart,
		PeriodEnd:        summary.PeriodEnd,
		TransactionCount: summary.TransactionCount,
	})
}

// DashboardSummary returns the headline dashboard figures.
//
// @Summary      Get the dashboard summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardSummaryResponse
// @Router       /v1/dashboard/summary [get]
func (h *ReportHandler) DashboardSummary(c echo.Context) error {
	summary, err := h.reports.DashboardSummary(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardSummaryResponse{
		TotalIncome:   summary.TotalIncome,
		TotalExpenses: summary.TotalExpenses,
		GSTCollected:  summary.GSTCollected,
		GSTPaid:       summary.GSTPaid,
		NetGST:        summary.NetGST,
		Profit:        summary.Profit,
	})
}
