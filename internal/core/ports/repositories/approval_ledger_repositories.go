package repositories

import (
	"context"

	"github.com/SscSPs/expense_approval_app/internal/core/domain"
)

// ApprovalLedgerReader defines read operations for ledger rows
type ApprovalLedgerReader interface {
	// FindPendingFor returns the pending row of approverID on the expense, joined
	// with the expense. Returns apperrors.ErrNotFoundOrNotAuthorized when absent.
	FindPendingFor(ctx context.Context, expenseID, approverID string) (*domain.PendingApproval, error)

	// FindLedgerByExpense returns every row of the expense ordered by level.
	FindLedgerByExpense(ctx context.Context, expenseID string) ([]domain.ApprovalLedgerEntry, error)

	// HasPendingAtLevel reports whether the expense has a pending row at level.
	HasPendingAtLevel(ctx context.Context, expenseID string, level int) (bool, error)

	// ListPendingForApprover returns pending rows of approverID whose expense is processing.
	ListPendingForApprover(ctx context.Context, approverID string) ([]domain.PendingApproval, error)
}

// ApprovalLedgerWriter defines write operations for ledger rows
type ApprovalLedgerWriter interface {
	// ApplyTransition applies the ledger mutations of t and moves the expense to
	// t.To in one transaction. The expense update only succeeds when its stored
	// version still equals expectedVersion.
	ApplyTransition(ctx context.Context, expense domain.Expense, expectedVersion int64, t domain.Transition) error
}

// ApprovalLedgerRepositoryFacade combines all ledger repository interfaces
type ApprovalLedgerRepositoryFacade interface {
	ApprovalLedgerReader
	ApprovalLedgerWriter
}
