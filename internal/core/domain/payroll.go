package domain

import "time"

// PayrollStatus is the processing lifecycle state of a payroll entry.
type PayrollStatus string

const (
	PayrollDraft     PayrollStatus = "draft"
	PayrollProcessed PayrollStatus = "processed"
	PayrollPaid      PayrollStatus = "paid"
)

var payrollTransitions = map[PayrollStatus][]PayrollStatus{
	PayrollDraft:     {PayrollProcessed},
	PayrollProcessed: {PayrollPaid},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s PayrollStatus) CanTransitionTo(next PayrollStatus) bool {
	for _, allowed := range payrollTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PayrollEntry is one employee's pay for a period. PAYE is supplied by the
// caller from the IRD tables; KiwiSaver and net pay are computed from
// gross and PAYE.
type PayrollEntry struct {
	ID                string        `json:"id" bson:"_id,omitempty"`
	EmployeeID        string        `json:"employee_id" bson:"employee_id"`
	EmployeeName      string        `json:"employee_name" bson:"employee_name"`
	Period            string        `json:"period" bson:"period"`
	GrossPay          float64       `json:"gross_pay" bson:"gross_pay"`
	PAYE              float64       `json:"paye" bson:"paye"`
	KiwiSaverEmployee float64       `json:"kiwisaver_employee" bson:"kiwisaver_employee"`
	KiwiSaverEmployer float64       `json:"kiwisaver_employer" bson:"kiwisaver_employer"`
	NetPay            float64       `json:"net_pay" bson:"net_pay"`
	Status            PayrollStatus `json:"status" bson:"status"`
	CreatedAt         time.Time     `json:"created_at" bson:"created_at"`
}
