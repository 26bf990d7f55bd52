package services

import (
	"context"

	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	"github.com/SscSPs/expense_approval_app/internal/dto"
)

// ChainBuilderSvc resolves the ordered approvers for a submitter.
type ChainBuilderSvc interface {
	// BuildChain returns exactly levels approver IDs, level 1 first.
	BuildChain(ctx context.Context, submitter domain.User, levels int) ([]string, error)
}

// ExpenseReaderSvc defines read operations for expenses
type ExpenseReaderSvc interface {
	// GetExpense returns the expense and its ledger history if userID may see it.
	GetExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, []domain.ApprovalLedgerEntry, error)

	// ListExpenses returns one page of the expenses visible to userID, narrowed
	// by params, plus the token of the next page if there is one.
	ListExpenses(ctx context.Context, userID string, params dto.ListExpensesParams) ([]domain.Expense, *string, error)
}

// ExpenseWriterSvc defines write operations for expenses
type ExpenseWriterSvc interface {
	// CreateExpense submits a new expense and routes it into its approval workflow.
	CreateExpense(ctx context.Context, submitterID string, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// UpdateExpense edits an expense of the caller that has not been routed yet.
	UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes an expense of the caller that has not been routed yet.
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

// ExpenseSvcFacade combines all expense service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
