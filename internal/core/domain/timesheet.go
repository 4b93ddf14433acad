package domain

import "time"

// DailyHours records hours worked per weekday.
type DailyHours struct {
	Monday    float64 `json:"monday" bson:"monday"`
	Tuesday   float64 `json:"tuesday" bson:"tuesday"`
	Wednesday float64 `json:"wednesday" bson:"wednesday"`
	Thursday  float64 `json:"thursday" bson:"thursday"`
	Friday    float64 `json:"friday" bson:"friday"`
	Saturday  float64 `json:"saturday" bson:"saturday"`
	Sunday    float64 `json:"sunday" bson:"sunday"`
}

// Total sums the week's hours.
func (h DailyHours) Total() float64 {
	return h.Monday + h.Tuesday + h.Wednesday + h.Thursday + h.Friday + h.Saturday + h.Sunday
}

// Timesheet is one employee's hours for a week. TotalHours and TotalPay
// are computed from the daily hours and hourly rate.
type Timesheet struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	EmployeeID   string     `json:"employee_id" bson:"employee_id"`
	EmployeeName string     `json:"employee_name" bson:"employee_name"`
	WeekStarting time.Time  `json:"week_starting" bson:"week_starting"`
	WeekEnding   time.Time  `json:"week_ending" bson:"week_ending"`
	Hours        DailyHours `json:"hours" bson:"hours"`
	TotalHours   float64    `json:"total_hours" bson:"total_hours"`
	HourlyRate   float64    `json:"hourly_rate" bson:"hourly_rate"`
	TotalPay     float64    `json:"total_pay" bson:"total_pay"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
}
