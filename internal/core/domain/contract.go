package domain

import "time"

// ContractType distinguishes the two agreement kinds the product manages.
type ContractType string

const (
	ContractEmployment ContractType = "employment"
	ContractRental     ContractType = "rental"
)

// ContractStatus is the agreement lifecycle state.
type ContractStatus string

const (
	ContractActive     ContractStatus = "active"
	ContractExpired    ContractStatus = "expired"
	ContractTerminated ContractStatus = "terminated"
)

// Contract is an employment or rental agreement. Amount is the annual
// salary for employment contracts and the monthly rent for rental ones.
type Contract struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	Type        ContractType   `json:"type" bson:"type"`
	Title       string         `json:"title" bson:"title"`
	PartyA      string         `json:"party_a" bson:"party_a"`
	PartyB      string         `json:"party_b" bson:"party_b"`
	StartDate   time.Time      `json:"start_date" bson:"start_date"`
	EndDate     time.Time      `json:"end_date,omitzero" bson:"end_date,omitempty"`
	Amount      float64        `json:"amount" bson:"amount"`
	Terms       string         `json:"terms" bson:"terms"`
	Status      ContractStatus `json:"status" bson:"status"`
	CreatedDate time.Time      `json:"created_date" bson:"created_date"`
}

// EffectiveStatus resolves the derived expired state: an active contract
// past its end date reads as expired.
func (c Contract) EffectiveStatus(now time.Time) ContractStatus {
	if c.Status == ContractActive && !c.EndDate.IsZero() && now.After(c.EndDate) {
		return ContractExpired
	}
	return c.Status
}
