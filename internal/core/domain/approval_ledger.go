package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalAction is the decision recorded on a ledger row.
type ApprovalAction string

const (
	ActionPending  ApprovalAction = "pending"
	ActionApproved ApprovalAction = "approved"
	ActionRejected ApprovalAction = "rejected"
)

// ApprovalLedgerEntry is one decision slot of an expense: exactly one approver per level.
type ApprovalLedgerEntry struct {
	EntryID    string         `json:"entryID"`
	ExpenseID  string         `json:"expenseID"`
	ApproverID string         `json:"approverID"`
	Level      int            `json:"level"` // 1-based position in the chain
	Action     ApprovalAction `json:"action"`
	Comments   *string        `json:"comments,omitempty"`
	ActionDate *time.Time     `json:"actionDate,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// IsPending reports whether the row can still be actioned.
func (e ApprovalLedgerEntry) IsPending() bool {
	return e.Action == ActionPending
}

// PendingApproval is a pending ledger row joined with its expense.
type PendingApproval struct {
	Entry   ApprovalLedgerEntry `json:"entry"`
	Expense Expense             `json:"expense"`
}

// NewLedgerEntries creates one pending row per approver, level = position + 1.
func NewLedgerEntries(expenseID string, chain []string, now time.Time) []ApprovalLedgerEntry {
	entries := make([]ApprovalLedgerEntry, len(chain))
	for i, approverID := range chain {
		entries[i] = ApprovalLedgerEntry{
			EntryID:    uuid.NewString(),
			ExpenseID:  expenseID,
			ApproverID: approverID,
			Level:      i + 1,
			Action:     ActionPending,
			CreatedAt:  now,
		}
	}
	return entries
}
