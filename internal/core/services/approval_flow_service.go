package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_approval_app/internal/apperrors"
	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_approval_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_approval_app/internal/core/ports/services"
	"github.com/SscSPs/expense_approval_app/internal/dto"
	"github.com/google/uuid"
)

// approvalFlowService manages the approval flow configuration of a company.
type approvalFlowService struct {
	BaseService
	flowRepo portsrepo.ApprovalFlowRepositoryFacade
}

// NewApprovalFlowService creates a new approval flow service.
func NewApprovalFlowService(flowRepo portsrepo.ApprovalFlowRepositoryFacade, userReader portsrepo.UserReader) portssvc.ApprovalFlowSvcFacade {
	return &approvalFlowService{
		BaseService: BaseService{UserReader: userReader},
		flowRepo:    flowRepo,
	}
}

var _ portssvc.ApprovalFlowSvcFacade = (*approvalFlowService)(nil)

func (s *approvalFlowService) loadAdmin(ctx context.Context, actorID string) (*domain.User, error) {
	actor, err := s.LoadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeRole(ctx, actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return actor, nil
}

// checkOverlap rejects flow when its range meets another active flow of the company.
func (s *approvalFlowService) checkOverlap(ctx context.Context, flow domain.ApprovalFlow) error {
	active, err := s.flowRepo.ListActiveFlows(ctx, flow.CompanyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active flows", slog.String("company_id", flow.CompanyID))
		return fmt.Errorf("failed to check flow ranges: %w", err)
	}
	for _, other := range active {
		if other.FlowID == flow.FlowID {
			continue
		}
		if flow.Overlaps(other) {
			s.LogWarn(ctx, "Approval flow range overlaps an active flow",
				slog.String("flow_name", flow.Name),
				slog.String("conflicting_flow_id", other.FlowID))
			return fmt.Errorf("%w: conflicts with %q", apperrors.ErrOverlappingRange, other.Name)
		}
	}
	return nil
}

func (s *approvalFlowService) CreateFlow(ctx context.Context, actorID string, req dto.CreateApprovalFlowRequest) (*domain.ApprovalFlow, error) {
	actor, err := s.loadAdmin(ctx, actorID)
	if err != nil {
		return nil, err
	}

	flow := domain.ApprovalFlow{
		FlowID:         uuid.NewString(),
		CompanyID:      actor.CompanyID,
		Name:           strings.TrimSpace(req.Name),
		MinAmount:      req.MinAmount,
		MaxAmount:      req.MaxAmount,
		ApprovalLevels: req.ApprovalLevels,
		IsActive:       true,
		AuditFields:    domain.NewAuditFields(actorID, time.Now().UTC()),
	}
	if err := flow.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkOverlap(ctx, flow); err != nil {
		return nil, err
	}

	if err := s.flowRepo.SaveFlow(ctx, flow); err != nil {
		s.LogError(ctx, err, "Failed to save approval flow", slog.String("flow_name", flow.Name))
		return nil, fmt.Errorf("failed to create approval flow: %w", err)
	}

	s.LogInfo(ctx, "Approval flow created",
		slog.String("flow_id", flow.FlowID),
		slog.String("company_id", flow.CompanyID),
		slog.Int("approval_levels", flow.ApprovalLevels))
	return &flow, nil
}

func (s *approvalFlowService) UpdateFlow(ctx context.Context, actorID, flowID string, req dto.UpdateApprovalFlowRequest) (*domain.ApprovalFlow, error) {
	actor, err := s.loadAdmin(ctx, actorID)
	if err != nil {
		return nil, err
	}

	flow, err := s.flowRepo.FindFlowByID(ctx, actor.CompanyID, flowID)
	if err != nil {
		return nil, fmt.Errorf("failed to load approval flow %s: %w", flowID, err)
	}

	updated := *flow
	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.MinAmount != nil {
		updated.MinAmount = *req.MinAmount
	}
	if req.RemoveMaxAmount {
		updated.MaxAmount = nil
	} else if req.MaxAmount != nil {
		updated.MaxAmount = req.MaxAmount
	}
	if req.ApprovalLevels != nil {
		updated.ApprovalLevels = *req.ApprovalLevels
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if updated.IsActive {
		if err := s.checkOverlap(ctx, updated); err != nil {
			return nil, err
		}
	}

	updated.LastUpdatedAt = time.Now().UTC()
	updated.LastUpdatedBy = actorID
	if err := s.flowRepo.UpdateFlow(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update approval flow", slog.String("flow_id", flowID))
		return nil, fmt.Errorf("failed to update approval flow %s: %w", flowID, err)
	}
	updated.Version++

	s.LogInfo(ctx, "Approval flow updated", slog.String("flow_id", flowID))
	return &updated, nil
}

func (s *approvalFlowService) DeactivateFlow(ctx context.Context, actorID, flowID string) error {
	actor, err := s.loadAdmin(ctx, actorID)
	if err != nil {
		return err
	}

	flow, err := s.flowRepo.FindFlowByID(ctx, actor.CompanyID, flowID)
	if err != nil {
		return fmt.Errorf("failed to load approval flow %s: %w", flowID, err)
	}
	if !flow.IsActive {
		return nil
	}

	flow.IsActive = false
	flow.LastUpdatedAt = time.Now().UTC()
	flow.LastUpdatedBy = actorID
	if err := s.flowRepo.UpdateFlow(ctx, *flow); err != nil {
		s.LogError(ctx, err, "Failed to deactivate approval flow", slog.String("flow_id", flowID))
		return fmt.Errorf("failed to deactivate approval flow %s: %w", flowID, err)
	}

	s.LogInfo(ctx, "Approval flow deactivated", slog.String("flow_id", flowID))
	return nil
}

// ListFlows is open to every active member of the company.
func (s *approvalFlowService) ListFlows(ctx context.Context, actorID string) ([]domain.ApprovalFlow, error) {
	actor, err := s.LoadActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	flows, err := s.flowRepo.ListFlowsByCompany(ctx, actor.CompanyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list approval flows", slog.String("company_id", actor.CompanyID))
		return nil, fmt.Errorf("failed to list approval flows: %w", err)
	}
	return flows, nil
}
