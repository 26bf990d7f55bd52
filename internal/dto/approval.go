package dto

import (
	"time"

	"github.com/SscSPs/expense_approval_app/internal/core/domain"
)

// --- Approval DTOs ---

// ApprovalDecisionRequest carries the optional comments of an approve call.
type ApprovalDecisionRequest struct {
	Comments string `json:"comments" binding:"max=1000"`
}

// RejectionRequest carries the comments of a reject call. Emptiness is checked
// by the service so it surfaces as MissingComments.
type RejectionRequest struct {
	Comments string `json:"comments" binding:"max=1000"`
}

// LedgerEntryResponse defines data returned for one approval ledger row.
type LedgerEntryResponse struct {
	EntryID    string                `json:"entryID"`
	ApproverID string                `json:"approverID"`
	Level      int                   `json:"level"`
	Action     domain.ApprovalAction `json:"action"`
	Comments   *string               `json:"comments,omitempty"`
	ActionDate *time.Time            `json:"actionDate,omitempty"`
}

// ToLedgerEntryResponse converts domain.ApprovalLedgerEntry to DTO.
func ToLedgerEntryResponse(e domain.ApprovalLedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:    e.EntryID,
		ApproverID: e.ApproverID,
		Level:      e.Level,
		Action:     e.Action,
		Comments:   e.Comments,
		ActionDate: e.ActionDate,
	}
}

// ApprovalResultResponse is returned after an approve or reject call.
type ApprovalResultResponse struct {
	Message string          `json:"message"`
	Expense ExpenseResponse `json:"expense"`
}

// ToApprovalResultResponse builds the response for a decided expense.
func ToApprovalResultResponse(e *domain.Expense) ApprovalResultResponse {
	msg := "Expense updated"
	switch e.Status {
	case domain.StatusApproved:
		msg = "Expense fully approved"
	case domain.StatusRejected:
		msg = "Expense rejected"
	case domain.StatusProcessing:
		msg = "Expense approved, waiting on next level"
	}
	return ApprovalResultResponse{Message: msg, Expense: ToExpenseResponse(e)}
}

// PendingApprovalResponse is one item of the approver's inbox.
type PendingApprovalResponse struct {
	EntryID   string          `json:"entryID"`
	Level     int             `json:"level"`
	CreatedAt time.Time       `json:"createdAt"`
	Expense   ExpenseResponse `json:"expense"`
}

// ListPendingApprovalsResponse wraps the approver's pending rows.
type ListPendingApprovalsResponse struct {
	Approvals []PendingApprovalResponse `json:"approvals"`
}

// ToListPendingApprovalsResponse converts pending approvals to DTO.
func ToListPendingApprovalsResponse(ps []domain.PendingApproval) ListPendingApprovalsResponse {
	list := make([]PendingApprovalResponse, len(ps))
	for i := range ps {
		list[i] = PendingApprovalResponse{
			EntryID:   ps[i].Entry.EntryID,
			Level:     ps[i].Entry.Level,
			CreatedAt: ps[i].Entry.CreatedAt,
			Expense:   ToExpenseResponse(&ps[i].Expense),
		}
	}
	return ListPendingApprovalsResponse{Approvals: list}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string `json:"error"`
	Kind   string `json:"kind"`
	Detail string `json:"detail,omitempty"` // Internal cause, development only
}
