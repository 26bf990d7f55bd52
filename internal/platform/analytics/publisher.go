package analytics

import (
	"context"

	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_approval_app/internal/core/ports/services"
	"github.com/SscSPs/expense_approval_app/internal/middleware"
)

// WorkflowPublisher forwards workflow milestones to PostHog.
type WorkflowPublisher struct {
	client *Client
}

// NewWorkflowPublisher creates a publisher on top of client.
func NewWorkflowPublisher(client *Client) *WorkflowPublisher {
	return &WorkflowPublisher{client: client}
}

var _ portssvc.WorkflowEventPublisher = (*WorkflowPublisher)(nil)

func (p *WorkflowPublisher) Publish(ctx context.Context, actorID string, event portssvc.WorkflowEvent, expense domain.Expense) {
	if !p.client.IsInitialized() {
		middleware.GetLoggerFromCtx(ctx).Debug("Analytics disabled, dropping workflow event", "event", string(event))
		return
	}
	p.client.Enqueue(actorID, string(event), map[string]any{
		"expense_id":     expense.ExpenseID,
		"company_id":     expense.CompanyID,
		"submitter_id":   expense.UserID,
		"status":         string(expense.Status),
		"approval_level": expense.CurrentApprovalLevel,
		"amount":         expense.Amount.StringFixed(2),
		"currency_code":  expense.CurrencyCode,
		"category":       string(expense.Category),
	})
}
