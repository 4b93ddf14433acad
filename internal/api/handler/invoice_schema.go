package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type lineItemRequest struct {
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity"    validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price"  validate:"required,gt=0"`
}

type createInvoiceRequest struct {
	ClientName  string            `json:"client_name"  validate:"required"`
	ClientEmail string            `json:"client_email" validate:"required,email"`
	IssueDate   string            `json:"issue_date"   validate:"required"`
	DueDate     string            `json:"due_date"     validate:"required"`
	Items       []lineItemRequest `json:"items"        validate:"required,min=1,dive"`
}

// Response-only types owned by the transport layer.
// These are intentionally separate from domain types so the JSON contract
// is not coupled to internal service changes. Status carries the derived
// state, so a sent invoice past its due date reads as overdue here.

type lineItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

type invoiceResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	ClientName    string             `json:"client_name"`
	ClientEmail   string             `json:"client_email"`
	IssueDate     time.Time          `json:"issue_date"`
	DueDate       time.Time          `json:"due_date"`
	Items         []lineItemResponse `json:"items"`
	Subtotal      float64            `json:"subtotal"`
	GST           float64            `json:"gst"`
	Total         float64            `json:"total"`
	Status        string             `json:"status"`
}

type listInvoicesResponse struct {
	Data []invoiceResponse `json:"data"`
}
