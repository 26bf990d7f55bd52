package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_approval_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_approval_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type flowSelector struct {
	BaseService
	flowRepo portsrepo.ApprovalFlowReader
}

// NewFlowSelector creates a selector backed by the flow repository.
func NewFlowSelector(flowRepo portsrepo.ApprovalFlowReader) portssvc.FlowSelectorSvc {
	return &flowSelector{flowRepo: flowRepo}
}

var _ portssvc.FlowSelectorSvc = (*flowSelector)(nil)

// SelectFlow returns the active flow covering amount with the largest min amount.
// No match is not an error.
func (s *flowSelector) SelectFlow(ctx context.Context, companyID string, amount decimal.Decimal) (*domain.ApprovalFlow, error) {
	candidates, err := s.flowRepo.FindActiveFlowsCovering(ctx, companyID, amount)
	if err != nil {
		s.LogError(ctx, err, "Failed to load candidate approval flows", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to select approval flow: %w", err)
	}

	flow := domain.SelectFlow(candidates, amount)
	if flow == nil {
		s.LogDebug(ctx, "No approval flow covers amount",
			slog.String("company_id", companyID),
			slog.String("amount", amount.String()))
		return nil, nil
	}
	return flow, nil
}
