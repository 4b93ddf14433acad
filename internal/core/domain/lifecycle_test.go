package domain

import (
	"testing"
	"time"
)

func TestGSTReturnTransitions(t *testing.T) {
	if !GSTReturnDraft.CanTransitionTo(GSTReturnSubmitted) {
		t.Fatalf("draft -> submitted should be allowed")
	}
	if !GSTReturnSubmitted.CanTransitionTo(GSTReturnPaid) {
		t.Fatalf("submitted -> paid should be allowed")
	}
	if GSTReturnDraft.CanTransitionTo(GSTReturnPaid) {
		t.Fatalf("draft -> paid should be rejected")
	}
	if GSTReturnPaid.CanTransitionTo(GSTReturnDraft) {
		t.Fatalf("paid is terminal")
	}
}

func TestInvoiceTransitions(t *testing.T) {
	if !InvoiceDraft.CanTransitionTo(InvoiceSent) {
		t.Fatalf("draft -> sent should be allowed")
	}
	if !InvoiceSent.CanTransitionTo(InvoicePaid) {
		t.Fatalf("sent -> paid should be allowed")
	}
	if InvoiceDraft.CanTransitionTo(InvoicePaid) {
		t.Fatalf("draft -> paid should be rejected")
	}
	if InvoicePaid.CanTransitionTo(InvoiceSent) {
		t.Fatalf("paid is terminal")
	}
}

func TestInvoiceEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	due := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)

	sent := Invoice{Status: InvoiceSent, DueDate: due}
	if got := sent.EffectiveStatus(now); got != InvoiceOverdue {
		t.Fatalf("sent invoice past due should read overdue, got %s", got)
	}

	paid := Invoice{Status: InvoicePaid, DueDate: due}
	if got := paid.EffectiveStatus(now); got != InvoicePaid {
		t.Fatalf("paid invoice must never read overdue, got %s", got)
	}

	current := Invoice{Status: InvoiceSent, DueDate: now.AddDate(0, 0, 10)}
	if got := current.EffectiveStatus(now); got != InvoiceSent {
		t.Fatalf("sent invoice before due date should read sent, got %s", got)
	}
}

func TestPayrollTransitions(t *testing.T) {
	if !PayrollDraft.CanTransitionTo(PayrollProcessed) {
		t.Fatalf("draft -> processed should be allowed")
	}
	if !PayrollProcessed.CanTransitionTo(PayrollPaid) {
		t.Fatalf("processed -> paid should be allowed")
	}
	if PayrollDraft.CanTransitionTo(PayrollPaid) {
		t.Fatalf("draft -> paid should be rejected")
	}
}

func TestContractEffectiveStatus(t *testing.T) {
	now := time.Date(2027, 7, 1, 0, 0, 0, 0, time.UTC)

	lease := Contract{Status: ContractActive, EndDate: time.Date(2027, 5, 31, 0, 0, 0, 0, time.UTC)}
	if got := lease.EffectiveStatus(now); got != ContractExpired {
		t.Fatalf("active contract past end date should read expired, got %s", got)
	}

	openEnded := Contract{Status: ContractActive}
	if got := openEnded.EffectiveStatus(now); got != ContractActive {
		t.Fatalf("open-ended contract should stay active, got %s", got)
	}

	terminated := Contract{Status: ContractTerminated, EndDate: time.Date(2027, 5, 31, 0, 0, 0, 0, time.UTC)}
	if got := terminated.EffectiveStatus(now); got != ContractTerminated {
		t.Fatalf("terminated contract should stay terminated, got %s", got)
	}
}
