package domain

// RevenueBreakdown splits a year's revenue by stream.
type RevenueBreakdown struct {
	Sales    float64 `json:"sales" bson:"sales"`
	Services float64 `json:"services" bson:"services"`
	Other    float64 `json:"other" bson:"other"`
	Total    float64 `json:"total" bson:"total"`
}

// ExpenseBreakdown splits a year's operating expenses by category.
type ExpenseBreakdown struct {
	Salaries  float64 `json:"salaries" bson:"salaries"`
	Rent      float64 `json:"rent" bson:"rent"`
	Utilities float64 `json:"utilities" bson:"utilities"`
	Supplies  float64 `json:"supplies" bson:"supplies"`
	Marketing float64 `json:"marketing" bson:"marketing"`
	Other     float64 `json:"other" bson:"other"`
	Total     float64 `json:"total" bson:"total"`
}

// ProfitLossReport is an annual profit and loss statement.
type ProfitLossReport struct {
	Year              int              `json:"year" bson:"_id"`
	Revenue           RevenueBreakdown `json:"revenue" bson:"revenue"`
	Expenses          ExpenseBreakdown `json:"expenses" bson:"expenses"`
	GrossProfit       float64          `json:"gross_profit" bson:"gross_profit"`
	OperatingExpenses float64          `json:"operating_expenses" bson:"operating_expenses"`
	NetProfit         float64          `json:"net_profit" bson:"net_profit"`
}
