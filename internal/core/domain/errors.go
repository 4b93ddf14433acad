package domain

import "errors"

var (
	ErrUnknownTier        = errors.New("unknown subscription tier")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrNotEntitled        = errors.New("feature not included in subscription tier")
	ErrNoSession          = errors.New("no active session")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidContractType = errors.New("invalid contract type")

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrGSTReturnNotFound   = errors.New("gst return not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrPayrollNotFound     = errors.New("payroll entry not found")
	ErrTimesheetNotFound   = errors.New("timesheet not found")
	ErrContractNotFound    = errors.New("contract not found")
)
