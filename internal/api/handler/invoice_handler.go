package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aitax/tax-system/internal/api/metrics"
	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/ports"
)

// InvoiceHandler serves the invoicing page.
type InvoiceHandler struct {
	invoices ports.InvoiceService
}

func NewInvoiceHandler(invoices ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// List returns every invoice with its derived status.
//
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listInvoicesResponse
// @Router       /v1/invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	invoices, err := h.invoices.List(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]invoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, toInvoiceResponse(inv))
	}
	return c.JSON(http.StatusOK, listInvoicesResponse{Data: items})
}

// Get returns one invoice.
//
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Invoice ID"
// @Success      200  {object}  invoiceResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/invoices/{id} [get]
func (h *InvoiceHandler) Get(c echo.Context) error {
	inv, err := h.invoices.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvoiceResponse(inv))
}

// Create raises a new draft invoice. Repeating a request with the same
// Idempotency-Key returns the original invoice with 200 instead of 201.
//
// @Summary      Create an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createInvoiceRequest  true   "Invoice details"
// @Success      200              {object}  invoiceResponse  "replayed from Idempotency-Key"
// @Success      201              {object}  invoiceResponse
// @Failure      400              {object}  errorResponse
// @Router       /v1/invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	input := ports.CreateInvoiceInput{
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	}
	var err error
	if input.IssueDate, err = time.Parse(dateLayout, req.IssueDate); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "issue_date must be YYYY-MM-DD"})
	}
	if input.DueDate, err = time.Parse(dateLayout, req.DueDate); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "due_date must be YYYY-MM-DD"})
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, ports.LineItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	result, err := h.invoices.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	if result.AlreadyExisted {
		metrics.InvoicesCreatedTotal.WithLabelValues("replayed").Inc()
		return c.JSON(http.StatusOK, toInvoiceResponse(result.Invoice))
	}
	metrics.InvoicesCreatedTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, toInvoiceResponse(result.Invoice))
}

// Send marks a draft invoice as sent to the client.
//
// @Summary      Send an invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Invoice ID"
// @Success      200  {object}  invoiceResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/invoices/{id}/send [post]
func (h *InvoiceHandler) Send(c echo.Context) error {
	inv, err := h.invoices.Send(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvoiceResponse(inv))
}

// MarkPaid settles a sent invoice, overdue or not.
//
// @Summary      Mark an invoice paid
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Invoice ID"
// @Success      200  {object}  invoiceResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/invoices/{id}/pay [post]
func (h *InvoiceHandler) MarkPaid(c echo.Context) error {
	inv, err := h.invoices.MarkPaid(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvoiceResponse(inv))
}

func toInvoiceResponse(inv *domain.Invoice) invoiceResponse {
	items := make([]lineItemResponse, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, lineItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}
	return invoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientName:    inv.ClientName,
		ClientEmail:   inv.ClientEmail,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Items:         items,
		Subtotal:      inv.Subtotal,
		GST:           inv.GST,
		Total:         inv.Total,
		Status:        string(inv.Status),
	}
}
