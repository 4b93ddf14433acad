package domain

import "time"

// InvoiceStatus is the billing lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceSent  InvoiceStatus = "sent"
	InvoicePaid  InvoiceStatus = "paid"
	// InvoiceOverdue is derived, never stored: a sent invoice whose due
	// date has elapsed unpaid.
	InvoiceOverdue InvoiceStatus = "overdue"
)

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceDraft: {InvoiceSent},
	InvoiceSent:  {InvoicePaid},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	for _, allowed := range invoiceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// LineItem is a single billable line on an invoice.
type LineItem struct {
	Description string  `json:"description" bson:"description"`
	Quantity    float64 `json:"quantity" bson:"quantity"`
	UnitPrice   float64 `json:"unit_price" bson:"unit_price"`
	Amount      float64 `json:"amount" bson:"amount"`
}

// Invoice is a GST-inclusive customer invoice. Subtotal, GST and Total are
// always recomputed from the line items when the invoice is created.
type Invoice struct {
	ID             string        `json:"id" bson:"_id,omitempty"`
	InvoiceNumber  string        `json:"invoice_number" bson:"invoice_number"`
	ClientName     string        `json:"client_name" bson:"client_name"`
	ClientEmail    string        `json:"client_email" bson:"client_email"`
	IssueDate      time.Time     `json:"issue_date" bson:"issue_date"`
	DueDate        time.Time     `json:"due_date" bson:"due_date"`
	Items          []LineItem    `json:"items" bson:"items"`
	Subtotal       float64       `json:"subtotal" bson:"subtotal"`
	GST            float64       `json:"gst" bson:"gst"`
	Total          float64       `json:"total" bson:"total"`
	Status         InvoiceStatus `json:"status" bson:"status"`
	IdempotencyKey string        `json:"idempotency_key,omitempty" bson:"idempotency_key,omitempty"`
	CreatedAt      time.Time     `json:"created_at" bson:"created_at"`
}

// EffectiveStatus resolves the derived overdue state: a sent invoice past
// its due date reads as overdue without a stored transition.
func (i Invoice) EffectiveStatus(now time.Time) InvoiceStatus {
	if i.Status == InvoiceSent && now.After(i.DueDate) {
		return InvoiceOverdue
	}
	return i.Status
}
