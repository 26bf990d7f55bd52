package services

import (
	"context"

	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	"github.com/SscSPs/expense_approval_app/internal/dto"
	"github.com/shopspring/decimal"
)

// FlowSelectorSvc picks the approval flow that governs an amount.
type FlowSelectorSvc interface {
	// SelectFlow returns the active flow of the company covering amount, or nil when none does.
	SelectFlow(ctx context.Context, companyID string, amount decimal.Decimal) (*domain.ApprovalFlow, error)
}

// ApprovalFlowReaderSvc defines read operations for approval flows
type ApprovalFlowReaderSvc interface {
	// ListFlows returns every flow of the actor's company ordered by min amount.
	ListFlows(ctx context.Context, actorID string) ([]domain.ApprovalFlow, error)
}

// ApprovalFlowWriterSvc defines write operations for approval flows. Only admins may call them.
type ApprovalFlowWriterSvc interface {
	// CreateFlow validates and persists a new active flow.
	CreateFlow(ctx context.Context, actorID string, req dto.CreateApprovalFlowRequest) (*domain.ApprovalFlow, error)

	// UpdateFlow applies a partial update. In-flight expenses are not affected.
	UpdateFlow(ctx context.Context, actorID, flowID string, req dto.UpdateApprovalFlowRequest) (*domain.ApprovalFlow, error)

	// DeactivateFlow marks a flow inactive. Flows are never hard-deleted.
	DeactivateFlow(ctx context.Context, actorID, flowID string) error
}

// ApprovalFlowSvcFacade combines all approval flow service interfaces
type ApprovalFlowSvcFacade interface {
	ApprovalFlowReaderSvc
	ApprovalFlowWriterSvc
}
