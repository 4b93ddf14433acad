// Package finance holds the pure calculation helpers the dashboard figures
// are derived from. Every function is side-effect free and total: empty
// inputs yield zero values, never errors. Nothing here rounds; amounts are
// carried at full precision and rounded only at presentation time, so
// rounding error never compounds across aggregations.
package finance

import (
	"github.com/aitax/tax-system/internal/core/domain"
)

const (
	// GSTRate is the flat New Zealand GST rate applied to qualifying
	// income and expenses.
	GSTRate = 0.15
	// KiwiSaverRate is the default matched employee/employer
	// contribution rate.
	KiwiSaverRate = 0.03
)

// CashFlowSummary aggregates a transaction set into the figures the
// dashboard renders.
type CashFlowSummary struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	GSTCollected  float64 `json:"gst_collected"`
	GSTPaid       float64 `json:"gst_paid"`
	NetGST        float64 `json:"net_gst"`
	Profit        float64 `json:"profit"`
}

// SummarizeCashFlow derives totals, the GST position, and profit from a
// snapshot of transactions. Expense amounts are summed as magnitudes
// regardless of the sign the bank feed stored them with.
func SummarizeCashFlow(transactions []domain.Transaction) CashFlowSummary {
	var income, expenses float64
	for _, t := range transactions {
		switch t.Type {
		case domain.TransactionIncome:
			income += t.Amount
		case domain.TransactionExpense:
			expenses += t.Magnitude()
		}
	}

	collected := income * GSTRate
	paid := expenses * GSTRate

	return CashFlowSummary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		GSTCollected:  collected,
		GSTPaid:       paid,
		NetGST:        collected - paid,
		Profit:        income - expenses,
	}
}

// InvoiceTotals computes the GST-exclusive subtotal, the GST, and the
// GST-inclusive total for a set of invoice lines.
func InvoiceTotals(items []domain.LineItem) (subtotal, gst, total float64) {
	for _, item := range items {
		subtotal += LineAmount(item)
	}
	gst = subtotal * GSTRate
	return subtotal, gst, subtotal + gst
}

// LineAmount is the quantity-extended amount of one invoice line.
func LineAmount(item domain.LineItem) float64 {
	return item.Quantity * item.UnitPrice
}

// PayrollBreakdown holds the amounts derived from gross pay and PAYE.
type PayrollBreakdown struct {
	KiwiSaverEmployee float64
	KiwiSaverEmployer float64
	NetPay            float64
}

// Payroll derives KiwiSaver contributions and net pay. PAYE is an
// externally supplied IRD figure; only arithmetic consistency is
// guaranteed here, not tax-table correctness.
func Payroll(grossPay, paye float64) PayrollBreakdown {
	employee := grossPay * KiwiSaverRate
	return PayrollBreakdown{
		KiwiSaverEmployee: employee,
		KiwiSaverEmployer: grossPay * KiwiSaverRate,
		NetPay:            grossPay - paye - employee,
	}
}

// GSTAt applies a GST rate to a GST-exclusive amount.
func GSTAt(amount, rate float64) float64 {
	return amount * rate
}

// GrossToNet backs the GST-exclusive amount out of a GST-inclusive one.
// The divide-by-(1+rate) form matters: gross × rate would double-count
// the GST already embedded in the gross figure.
func GrossToNet(gross float64) float64 {
	return gross / (1 + GSTRate)
}

// GSTPortion is the GST embedded in a GST-inclusive amount.
func GSTPortion(gross float64) float64 {
	return gross - GrossToNet(gross)
}

// TimesheetPay is the pay owed for a week of recorded hours.
func TimesheetPay(hours domain.DailyHours, hourlyRate float64) float64 {
	return hours.Total() * hourlyRate
}
