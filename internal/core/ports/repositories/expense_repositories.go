package repositories

import (
	"context"

	"github.com/SscSPs/expense_approval_app/internal/core/domain"
)

// ExpenseReader defines read operations for expenses
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense by its ID.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses returns one page of the expenses matching filter, newest
	// first, and a token for the next page when more rows exist.
	ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, *string, error)
}

// ExpenseWriter defines write operations for expenses
type ExpenseWriter interface {
	// SubmitExpense stores the expense and its ledger rows in one transaction.
	SubmitExpense(ctx context.Context, expense domain.Expense, entries []domain.ApprovalLedgerEntry) error

	// UpdatePendingExpense updates the editable fields of an expense still in pending status.
	UpdatePendingExpense(ctx context.Context, expense domain.Expense) error

	// DeletePendingExpense removes an expense still in pending status.
	DeletePendingExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
