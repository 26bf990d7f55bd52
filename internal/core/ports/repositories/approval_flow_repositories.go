package repositories

import (
	"context"

	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApprovalFlowReader defines read operations for approval flows
type ApprovalFlowReader interface {
	// FindFlowByID retrieves a flow of the company by its ID.
	FindFlowByID(ctx context.Context, companyID, flowID string) (*domain.ApprovalFlow, error)

	// ListFlowsByCompany returns every flow of the company, active or not, ordered by min amount.
	ListFlowsByCompany(ctx context.Context, companyID string) ([]domain.ApprovalFlow, error)

	// ListActiveFlows returns the active flows of the company ordered by min amount.
	ListActiveFlows(ctx context.Context, companyID string) ([]domain.ApprovalFlow, error)

	// FindActiveFlowsCovering returns the active flows whose range contains amount,
	// largest min amount first.
	FindActiveFlowsCovering(ctx context.Context, companyID string, amount decimal.Decimal) ([]domain.ApprovalFlow, error)
}

// ApprovalFlowWriter defines write operations for approval flows
type ApprovalFlowWriter interface {
	// SaveFlow persists a new flow.
	SaveFlow(ctx context.Context, flow domain.ApprovalFlow) error

	// UpdateFlow persists changes to a flow. flow.Version must hold the version
	// that was read; the stored version is incremented on success.
	UpdateFlow(ctx context.Context, flow domain.ApprovalFlow) error
}

// ApprovalFlowRepositoryFacade combines all approval flow repository interfaces
type ApprovalFlowRepositoryFacade interface {
	ApprovalFlowReader
	ApprovalFlowWriter
}
