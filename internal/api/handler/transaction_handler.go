package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aitax/tax-system/internal/api/metrics"
	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/ports"
)

const dateLayout = "2006-01-02"

// TransactionHandler serves the bank-import page: the transaction feed,
// the simulated import, classification hand-off, and manual tagging.
type TransactionHandler struct {
	bank ports.BankService
}

func NewTransactionHandler(bank ports.BankService) *TransactionHandler {
	return &TransactionHandler{bank: bank}
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listTransactionsResponse struct {
	Data       []*domain.Transaction `json:"data"`
	Pagination paginationResponse    `json:"pagination"`
}

type importResponse struct {
	Imported int64 `json:"imported"`
	Total    int64 `json:"total"`
}

type classifyAllResponse struct {
	Queued int `json:"queued"`
}

type setCategoryRequest struct {
	Category string `json:"category" validate:"required"`
}

// List returns a filtered page of the bank feed.
//
// @Summary      List bank transactions
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        type      query     string  false  "income or expense"
// @Param        category  query     string  false  "exact category match"
// @Param        from      query     string  false  "start date (YYYY-MM-DD)"
// @Param        to        query     string  false  "end date (YYYY-MM-DD)"
// @Param        page      query     int     false  "page number (1-based)"
// @Param        limit     query     int     false  "rows per page (max 100)"
// @Success      200       {object}  listTransactionsResponse
// @Failure      400       {object}  errorResponse
// @Router       /v1/transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	filter := ports.ListTransactionsFilter{
		Type:     c.QueryParam("type"),
		Category: c.QueryParam("category"),
	}

	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "from must be YYYY-MM-DD"})
		}
		filter.DateFrom = from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse(dateLayout, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "to must be YYYY-MM-DD"})
		}
		filter.DateTo = to
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	result, err := h.bank.ListTransactions(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listTransactionsResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Import runs the simulated bank import.
//
// @Summary      Import the bank feed
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  importResponse
// @Router       /v1/transactions/import [post]
func (h *TransactionHandler) Import(c echo.Context) error {
	result, err := h.bank.RunImport(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, importResponse{Imported: result.Imported, Total: result.Total})
}

// Classify queues one transaction for async category suggestion.
//
// @Summary      Classify one transaction
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Transaction ID"
// @Success      202  "job queued"
// @Failure      404  {object}  errorResponse
// @Router       /v1/transactions/{id}/classify [post]
func (h *TransactionHandler) Classify(c echo.Context) error {
	if err := h.bank.Classify(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.ClassificationJobsTotal.WithLabelValues("single").Inc()
	return c.NoContent(http.StatusAccepted)
}

// ClassifyAll queues the whole feed for category suggestions.
//
// @Summary      Classify every transaction
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Success      202  {object}  classifyAllResponse
// @Router       /v1/transactions/classify [post]
func (h *TransactionHandler) ClassifyAll(c echo.Context) error {
	queued, err := h.bank.ClassifyAll(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.ClassificationJobsTotal.WithLabelValues("batch").Add(float64(queued))
	return c.JSON(http.StatusAccepted, classifyAllResponse{Queued: queued})
}

// SetCategory records a manually confirmed category.
//
// @Summary      Tag a transaction manually
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Transaction ID"
// @Param        body  body      setCategoryRequest  true  "Category to set"
// @Success      200   {object}  domain.Transaction
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/transactions/{id}/category [put]
func (h *TransactionHandler) SetCategory(c echo.Context) error {
	var req setCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	tx, err := h.bank.SetCategory(c.Request().Context(), c.Param("id"), req.Category)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tx)
}
