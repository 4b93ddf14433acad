package domain

import "time"

// GSTReturnStatus is the filing lifecycle state of a GST return.
type GSTReturnStatus string

const (
	GSTReturnDraft     GSTReturnStatus = "draft"
	GSTReturnSubmitted GSTReturnStatus = "submitted"
	GSTReturnPaid      GSTReturnStatus = "paid"
)

// gstReturnTransitions defines the allowed filing state machine.
var gstReturnTransitions = map[GSTReturnStatus][]GSTReturnStatus{
	GSTReturnDraft:     {GSTReturnSubmitted},
	GSTReturnSubmitted: {GSTReturnPaid},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s GSTReturnStatus) CanTransitionTo(next GSTReturnStatus) bool {
	for _, allowed := range gstReturnTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// GSTReturn is a two-monthly GST period summary derived from the
// transactions falling inside the period. Positive NetGST is payable to
// the IRD, negative is refundable.
type GSTReturn struct {
	ID           string          `json:"id" bson:"_id,omitempty"`
	Period       string          `json:"period" bson:"period"`
	StartDate    time.Time       `json:"start_date" bson:"start_date"`
	EndDate      time.Time       `json:"end_date" bson:"end_date"`
	TotalIncome  float64         `json:"total_income" bson:"total_income"`
	TotalExpense float64         `json:"total_expense" bson:"total_expense"`
	GSTCollected float64         `json:"gst_collected" bson:"gst_collected"`
	GSTPaid      float64         `json:"gst_paid" bson:"gst_paid"`
	NetGST       float64         `json:"net_gst" bson:"net_gst"`
	Status       GSTReturnStatus `json:"status" bson:"status"`
	CreatedAt    time.Time       `json:"created_at" bson:"created_at"`
}
