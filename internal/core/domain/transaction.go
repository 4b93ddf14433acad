package domain

import (
	"math"
	"time"
)

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single bank statement line. Amount keeps the sign used
// by the bank feed: positive for income, negative for expenses.
type Transaction struct {
	ID            string          `json:"id" bson:"_id,omitempty"`
	Date          time.Time       `json:"date" bson:"date"`
	Description   string          `json:"description" bson:"description"`
	Amount        float64         `json:"amount" bson:"amount"`
	Type          TransactionType `json:"type" bson:"type"`
	Category      string          `json:"category" bson:"category"`
	CategoryAI    string          `json:"category_ai,omitempty" bson:"category_ai,omitempty"`
	Confidence    float64         `json:"confidence,omitempty" bson:"confidence,omitempty"`
	GSTApplicable bool            `json:"gst_applicable" bson:"gst_applicable"`
	Notes         string          `json:"notes,omitempty" bson:"notes,omitempty"`
	Imported      bool            `json:"imported" bson:"imported"`
	ImportedAt    time.Time       `json:"imported_at,omitzero" bson:"imported_at,omitempty"`
}

// Magnitude returns the unsigned amount, regardless of transaction type.
func (t Transaction) Magnitude() float64 {
	return math.Abs(t.Amount)
}
