package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_approval_app/internal/apperrors"
	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_approval_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_approval_app/internal/core/ports/services"
)

// nopPublisher drops every event.
type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, portssvc.WorkflowEvent, domain.Expense) {}

// approvalService drives an expense through its approval levels.
type approvalService struct {
	BaseService
	ledgerRepo portsrepo.ApprovalLedgerRepositoryFacade
	publisher  portssvc.WorkflowEventPublisher
}

// NewApprovalService creates a new approval service. A nil publisher disables events.
func NewApprovalService(ledgerRepo portsrepo.ApprovalLedgerRepositoryFacade, userReader portsrepo.UserReader, publisher portssvc.WorkflowEventPublisher) portssvc.ApprovalSvcFacade {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &approvalService{
		BaseService: BaseService{UserReader: userReader},
		ledgerRepo:  ledgerRepo,
		publisher:   publisher,
	}
}

var _ portssvc.ApprovalSvcFacade = (*approvalService)(nil)

func (s *approvalService) Approve(ctx context.Context, expenseID, approverID, comments string) (*domain.Expense, error) {
	return s.decide(ctx, expenseID, approverID, domain.Decision{Action: domain.ActionApproved, Comments: comments})
}

func (s *approvalService) Reject(ctx context.Context, expenseID, approverID, comments string) (*domain.Expense, error) {
	if strings.TrimSpace(comments) == "" {
		return nil, apperrors.ErrMissingComments
	}
	return s.decide(ctx, expenseID, approverID, domain.Decision{Action: domain.ActionRejected, Comments: comments})
}

// loadApprover fetches the caller and checks that their role may act on approvals.
func (s *approvalService) loadApprover(ctx context.Context, approverID string) (*domain.User, error) {
	actor, err := s.LoadActor(ctx, approverID)
	if err != nil {
		return nil, err
	}
	if !actor.CanApprove() {
		s.LogWarn(ctx, "Caller may not act on approvals",
			slog.String("user_id", actor.UserID),
			slog.String("role", string(actor.Role)))
		return nil, fmt.Errorf("%w: role %s may not act on approvals", apperrors.ErrForbidden, actor.Role)
	}
	return actor, nil
}

func (s *approvalService) decide(ctx context.Context, expenseID, approverID string, d domain.Decision) (*domain.Expense, error) {
	logger := s.GetLogger(ctx).With(
		slog.String("expense_id", expenseID),
		slog.String("approver_id", approverID),
		slog.String("action", string(d.Action)))

	if _, err := s.loadApprover(ctx, approverID); err != nil {
		return nil, err
	}

	pending, err := s.ledgerRepo.FindPendingFor(ctx, expenseID, approverID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFoundOrNotAuthorized) {
			logger.Warn("No pending approval for caller")
			return nil, err
		}
		logger.Error("Failed to load pending approval", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load pending approval: %w", err)
	}

	expense := pending.Expense
	entry := pending.Entry

	nextLevelPending := false
	if d.Action == domain.ActionApproved {
		nextLevelPending, err = s.ledgerRepo.HasPendingAtLevel(ctx, expenseID, entry.Level+1)
		if err != nil {
			logger.Error("Failed to check next approval level", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to check next approval level: %w", err)
		}
	}

	transition, err := domain.DecideTransition(expense.State(), entry, d, nextLevelPending)
	if err != nil {
		logger.Warn("Decision refused", slog.String("error", err.Error()),
			slog.Int("row_level", entry.Level),
			slog.Int("current_level", expense.CurrentApprovalLevel))
		return nil, err
	}

	expectedVersion := expense.Version
	expense.Apply(transition, approverID, time.Now().UTC())

	if err := s.ledgerRepo.ApplyTransition(ctx, expense, expectedVersion, transition); err != nil {
		if errors.Is(err, apperrors.ErrStaleApprovalLevel) || errors.Is(err, apperrors.ErrNotFoundOrNotAuthorized) {
			logger.Warn("Decision lost a concurrent update", slog.String("error", err.Error()))
			return nil, err
		}
		logger.Error("Failed to apply approval transition", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to record decision: %w", err)
	}

	logger.Info("Approval decision recorded",
		slog.String("from", transition.From.String()),
		slog.String("to", transition.To.String()))
	s.publisher.Publish(ctx, approverID, eventFor(transition.To), expense)

	return &expense, nil
}

func eventFor(state domain.WorkflowState) portssvc.WorkflowEvent {
	switch state.Phase {
	case domain.PhaseApproved:
		return portssvc.EventExpenseApproved
	case domain.PhaseRejected:
		return portssvc.EventExpenseRejected
	default:
		return portssvc.EventExpenseAdvanced
	}
}

func (s *approvalService) ListPendingApprovals(ctx context.Context, approverID string) ([]domain.PendingApproval, error) {
	if _, err := s.loadApprover(ctx, approverID); err != nil {
		return nil, err
	}

	pending, err := s.ledgerRepo.ListPendingForApprover(ctx, approverID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pending approvals", slog.String("approver_id", approverID))
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}
	return pending, nil
}
