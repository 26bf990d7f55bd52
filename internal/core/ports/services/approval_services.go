package services

import (
	"context"

	"github.com/SscSPs/expense_approval_app/internal/core/domain"
)

// ApprovalDecisionSvc records approver decisions.
type ApprovalDecisionSvc interface {
	// Approve records an approval on the caller's pending row and advances the workflow.
	Approve(ctx context.Context, expenseID, approverID, comments string) (*domain.Expense, error)

	// Reject records a rejection, closes every remaining row and ends the workflow.
	Reject(ctx context.Context, expenseID, approverID, comments string) (*domain.Expense, error)
}

// ApprovalInboxSvc lists the work waiting on an approver.
type ApprovalInboxSvc interface {
	// ListPendingApprovals returns the caller's actionable rows, oldest first.
	ListPendingApprovals(ctx context.Context, approverID string) ([]domain.PendingApproval, error)
}

// ApprovalSvcFacade combines all approval service interfaces
type ApprovalSvcFacade interface {
	ApprovalDecisionSvc
	ApprovalInboxSvc
}

// WorkflowEvent names a workflow milestone published to analytics.
type WorkflowEvent string

const (
	EventExpenseSubmitted WorkflowEvent = "expense_submitted"
	EventExpenseAdvanced  WorkflowEvent = "expense_advanced"
	EventExpenseApproved  WorkflowEvent = "expense_approved"
	EventExpenseRejected  WorkflowEvent = "expense_rejected"
)

// WorkflowEventPublisher receives workflow milestones. Publishing must not block
// or fail the request that produced the event.
type WorkflowEventPublisher interface {
	Publish(ctx context.Context, actorID string, event WorkflowEvent, expense domain.Expense)
}
