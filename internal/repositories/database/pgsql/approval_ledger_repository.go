package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/expense_approval_app/internal/apperrors"
	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_approval_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxApprovalLedgerRepository struct {
	BaseRepository
}

func newPgxApprovalLedgerRepository(pool *pgxpool.Pool) portsrepo.ApprovalLedgerRepositoryFacade {
	return &PgxApprovalLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxApprovalLedgerRepository implements portsrepo.ApprovalLedgerRepositoryFacade
var _ portsrepo.ApprovalLedgerRepositoryFacade = (*PgxApprovalLedgerRepository)(nil)

const ledgerColumns = `
	l.entry_id, l.expense_id, l.approver_id, l.level, l.action, l.comments, l.action_date, l.created_at`

func ledgerScanTargets(l *domain.ApprovalLedgerEntry) []any {
	return []any{
		&l.EntryID,
		&l.ExpenseID,
		&l.ApproverID,
		&l.Level,
		&l.Action,
		&l.Comments,
		&l.ActionDate,
		&l.CreatedAt,
	}
}

func scanPendingApproval(row pgx.CollectableRow) (domain.PendingApproval, error) {
	var p domain.PendingApproval
	targets := append(ledgerScanTargets(&p.Entry), expenseScanTargets(&p.Expense)...)
	err := row.Scan(targets...)
	return p, err
}

func (r *PgxApprovalLedgerRepository) getPending(ctx context.Context, filterQuery string, args ...any) ([]domain.PendingApproval, error) {
	query := "SELECT " + ledgerColumns + ", " + expenseColumns + `
		FROM approval_ledger l
		JOIN expenses e ON e.expense_id = l.expense_id
		` + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query pending approvals", err)
	}
	defer rows.Close()
	pending, err := pgx.CollectRows(rows, scanPendingApproval)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.PendingApproval{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect pending approval rows", err)
	}
	return pending, nil
}

// FindPendingFor returns the lowest pending row of the approver. The admin
// fallback can give one approver several levels of the same expense.
func (r *PgxApprovalLedgerRepository) FindPendingFor(ctx context.Context, expenseID, approverID string) (*domain.PendingApproval, error) {
	pending, err := r.getPending(ctx, `
		WHERE l.expense_id = $1 AND l.approver_id = $2 AND l.action = 'pending'
		ORDER BY l.level
		LIMIT 1`, expenseID, approverID)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return nil, apperrors.ErrNotFoundOrNotAuthorized
	}
	return &pending[0], nil
}

func (r *PgxApprovalLedgerRepository) FindLedgerByExpense(ctx context.Context, expenseID string) ([]domain.ApprovalLedgerEntry, error) {
	query := "SELECT " + ledgerColumns + " FROM approval_ledger l WHERE l.expense_id = $1 ORDER BY l.level"
	rows, err := r.Pool.Query(ctx, query, expenseID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger of expense "+expenseID, err)
	}
	defer rows.Close()
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ApprovalLedgerEntry, error) {
		var l domain.ApprovalLedgerEntry
		err := row.Scan(ledgerScanTargets(&l)...)
		return l, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.ApprovalLedgerEntry{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect ledger rows", err)
	}
	return entries, nil
}

func (r *PgxApprovalLedgerRepository) HasPendingAtLevel(ctx context.Context, expenseID string, level int) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM approval_ledger WHERE expense_id = $1 AND level = $2 AND action = 'pending'
		)`, expenseID, level).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, fmt.Sprintf("failed to check level %d of expense %s", level, expenseID), err)
	}
	return exists, nil
}

// ListPendingForApprover returns only rows at the expense's current level, so
// approvers further up the chain do not see expenses before their turn.
func (r *PgxApprovalLedgerRepository) ListPendingForApprover(ctx context.Context, approverID string) ([]domain.PendingApproval, error) {
	return r.getPending(ctx, `
		WHERE l.approver_id = $1
			AND l.action = 'pending'
			AND e.status = 'processing'
			AND e.current_approval_level = l.level
		ORDER BY e.created_at`, approverID)
}

// ApplyTransition writes the ledger mutations and the new expense state in
// one transaction. The expense update is a compare-and-swap on version.
func (r *PgxApprovalLedgerRepository) ApplyTransition(ctx context.Context, expense domain.Expense, expectedVersion int64, t domain.Transition) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		for _, m := range t.Mutations {
			switch m.Kind {
			case domain.MutationRecordDecision:
				cmdTag, err := tx.Exec(ctx, `
					UPDATE approval_ledger
					SET action = $1, comments = $2, action_date = $3
					WHERE entry_id = $4 AND action = 'pending';`,
					m.Action, m.Comments, expense.LastUpdatedAt, m.EntryID)
				if err != nil {
					return apperrors.NewAppError(500, "failed to record decision on "+m.EntryID, err)
				}
				if cmdTag.RowsAffected() == 0 {
					return apperrors.ErrNotFoundOrNotAuthorized
				}
			case domain.MutationRejectAllPending:
				_, err := tx.Exec(ctx, `
					UPDATE approval_ledger
					SET action = 'rejected', action_date = $1
					WHERE expense_id = $2 AND action = 'pending';`,
					expense.LastUpdatedAt, expense.ExpenseID)
				if err != nil {
					return apperrors.NewAppError(500, "failed to reject pending rows of "+expense.ExpenseID, err)
				}
			default:
				return apperrors.NewAppError(500, fmt.Sprintf("unknown ledger mutation %q", m.Kind), nil)
			}
		}

		cmdTag, err := tx.Exec(ctx, `
			UPDATE expenses
			SET status = $1, current_approval_level = $2, remarks = $3,
				last_updated_at = $4, last_updated_by = $5, version = $6
			WHERE expense_id = $7 AND version = $8;`,
			expense.Status,
			expense.CurrentApprovalLevel,
			expense.Remarks,
			expense.LastUpdatedAt,
			expense.LastUpdatedBy,
			expense.Version,
			expense.ExpenseID,
			expectedVersion,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update expense "+expense.ExpenseID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("%w: expense %s moved past version %d",
				apperrors.ErrStaleApprovalLevel, expense.ExpenseID, expectedVersion)
		}
		return nil
	})
}
