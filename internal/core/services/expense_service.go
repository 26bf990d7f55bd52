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
	"github.com/SscSPs/expense_approval_app/internal/dto"
	"github.com/google/uuid"
)

// expenseService owns expense submission and the pre-routing lifecycle of an expense.
type expenseService struct {
	BaseService
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	ledgerRepo   portsrepo.ApprovalLedgerReader
	companyRepo  portsrepo.CompanyReader
	userRepo     portsrepo.UserReader
	flowSelector portssvc.FlowSelectorSvc
	chainBuilder portssvc.ChainBuilderSvc
	publisher    portssvc.WorkflowEventPublisher
}

// ExpenseServiceOption is a functional option for configuring the expense service
type ExpenseServiceOption func(*expenseService)

// WithExpenseEventPublisher sets the publisher notified after a submission.
func WithExpenseEventPublisher(p portssvc.WorkflowEventPublisher) ExpenseServiceOption {
	return func(s *expenseService) {
		s.publisher = p
	}
}

// NewExpenseService creates a new expense service.
func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	ledgerRepo portsrepo.ApprovalLedgerReader,
	companyRepo portsrepo.CompanyReader,
	userRepo portsrepo.UserReader,
	flowSelector portssvc.FlowSelectorSvc,
	chainBuilder portssvc.ChainBuilderSvc,
	options ...ExpenseServiceOption,
) portssvc.ExpenseSvcFacade {
	s := &expenseService{
		BaseService:  BaseService{UserReader: userRepo},
		expenseRepo:  expenseRepo,
		ledgerRepo:   ledgerRepo,
		companyRepo:  companyRepo,
		userRepo:     userRepo,
		flowSelector: flowSelector,
		chainBuilder: chainBuilder,
		publisher:    nopPublisher{},
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func validateExpenseFields(e domain.Expense) error {
	if strings.TrimSpace(e.Title) == "" {
		return apperrors.NewValidationFailedError("title is required")
	}
	if !e.Amount.IsPositive() {
		return apperrors.NewValidationFailedError("amount must be greater than 0")
	}
	if err := domain.ValidateAmount("amount", e.Amount); err != nil {
		return err
	}
	if !e.Category.IsValid() {
		return apperrors.NewValidationFailedError(fmt.Sprintf("unknown category %q", e.Category))
	}
	if e.ExpenseDate.IsZero() {
		return apperrors.NewValidationFailedError("expense date is required")
	}
	return nil
}

// CreateExpense submits an expense. The flow and chain are resolved before
// anything is written, so a routing failure leaves no trace.
func (s *expenseService) CreateExpense(ctx context.Context, submitterID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	submitter, err := s.LoadActor(ctx, submitterID)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, submitter.CompanyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load submitter company", slog.String("company_id", submitter.CompanyID))
		return nil, fmt.Errorf("failed to load company: %w", err)
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:    uuid.NewString(),
		CompanyID:    submitter.CompanyID,
		UserID:       submitter.UserID,
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Amount:       req.Amount,
		CurrencyCode: company.CurrencyCode,
		Category:     req.Category,
		ExpenseDate:  req.ExpenseDate,
		Receipt:      req.Receipt,
		Status:       domain.StatusPending,
		AuditFields:  domain.NewAuditFields(submitterID, now),
	}
	if err := validateExpenseFields(expense); err != nil {
		return nil, err
	}

	flow, err := s.flowSelector.SelectFlow(ctx, expense.CompanyID, expense.Amount)
	if err != nil {
		return nil, err
	}

	var chain []string
	if flow != nil {
		chain, err = s.chainBuilder.BuildChain(ctx, *submitter, flow.ApprovalLevels)
		if err != nil {
			s.LogWarn(ctx, "Could not build approval chain",
				slog.String("flow_id", flow.FlowID),
				slog.String("error", err.Error()))
			return nil, err
		}
	}

	state := domain.SubmitTransition(len(chain)).To
	expense.Status = state.Status()
	expense.CurrentApprovalLevel = state.Level
	entries := domain.NewLedgerEntries(expense.ExpenseID, chain, now)

	if err := s.expenseRepo.SubmitExpense(ctx, expense, entries); err != nil {
		s.LogError(ctx, err, "Failed to persist submitted expense", slog.String("expense_id", expense.ExpenseID))
		return nil, fmt.Errorf("failed to submit expense: %w", err)
	}

	logArgs := []any{
		slog.String("expense_id", expense.ExpenseID),
		slog.String("status", string(expense.Status)),
		slog.Int("levels", len(chain)),
	}
	if flow != nil {
		logArgs = append(logArgs, slog.String("flow_id", flow.FlowID))
	}
	s.LogInfo(ctx, "Expense submitted", logArgs...)
	s.publisher.Publish(ctx, submitterID, portssvc.EventExpenseSubmitted, expense)

	return &expense, nil
}

// loadVisible returns the expense if actor may see it. Expenses of other
// companies are reported as not found.
func (s *expenseService) loadVisible(ctx context.Context, actor *domain.User, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("expense not found")
		}
		s.LogError(ctx, err, "Failed to load expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to load expense %s: %w", expenseID, err)
	}
	if expense.CompanyID != actor.CompanyID {
		return nil, apperrors.NewNotFoundError("expense not found")
	}
	if actor.Role == domain.RoleEmployee && expense.UserID != actor.UserID {
		return nil, fmt.Errorf("%w: expense belongs to another user", apperrors.ErrForbidden)
	}
	return expense, nil
}

// loadOwnedPending returns the expense if actor owns it and it was never routed.
func (s *expenseService) loadOwnedPending(ctx context.Context, actor *domain.User, expenseID string) (*domain.Expense, error) {
	expense, err := s.loadVisible(ctx, actor, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.UserID != actor.UserID {
		return nil, fmt.Errorf("%w: only the submitter may change an expense", apperrors.ErrForbidden)
	}
	if expense.Status != domain.StatusPending {
		return nil, apperrors.NewValidationFailedError("only pending expenses can be changed")
	}
	return expense, nil
}

func (s *expenseService) GetExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, []domain.ApprovalLedgerEntry, error) {
	actor, err := s.LoadActor(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	expense, err := s.loadVisible(ctx, actor, expenseID)
	if err != nil {
		return nil, nil, err
	}

	ledger, err := s.ledgerRepo.FindLedgerByExpense(ctx, expenseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load approval history", slog.String("expense_id", expenseID))
		return nil, nil, fmt.Errorf("failed to load approval history: %w", err)
	}
	return expense, ledger, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, userID string, params dto.ListExpensesParams) ([]domain.Expense, *string, error) {
	actor, err := s.LoadActor(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	filter := domain.ExpenseFilter{
		CompanyID: actor.CompanyID,
		Status:    params.Status,
		Category:  params.Category,
		From:      params.From,
		To:        params.To,
		Limit:     params.Limit,
	}
	if params.NextToken != "" {
		filter.NextToken = &params.NextToken
	}

	switch actor.Role {
	case domain.RoleEmployee:
		filter.UserIDs = []string{actor.UserID}
	case domain.RoleManager:
		reports, err := s.userRepo.ListSubordinateIDs(ctx, actor.UserID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list direct reports", slog.String("manager_id", actor.UserID))
			return nil, nil, fmt.Errorf("failed to list direct reports: %w", err)
		}
		filter.UserIDs = append([]string{actor.UserID}, reports...)
	}

	expenses, nextToken, err := s.expenseRepo.ListExpenses(ctx, filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, nil, err
		}
		s.LogError(ctx, err, "Failed to list expenses", slog.String("company_id", actor.CompanyID))
		return nil, nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nextToken, nil
}

// UpdateExpense edits a pending expense. Routing is not re-evaluated.
func (s *expenseService) UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	actor, err := s.LoadActor(ctx, userID)
	if err != nil {
		return nil, err
	}
	expense, err := s.loadOwnedPending(ctx, actor, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		expense.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	}
	if req.Receipt != nil {
		expense.Receipt = req.Receipt
	}
	if err := validateExpenseFields(*expense); err != nil {
		return nil, err
	}

	expense.LastUpdatedAt = time.Now().UTC()
	expense.LastUpdatedBy = userID
	if err := s.expenseRepo.UpdatePendingExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}
	expense.Version++

	s.LogInfo(ctx, "Expense updated", slog.String("expense_id", expenseID))
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	actor, err := s.LoadActor(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.loadOwnedPending(ctx, actor, expenseID); err != nil {
		return err
	}

	if err := s.expenseRepo.DeletePendingExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}

	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}
