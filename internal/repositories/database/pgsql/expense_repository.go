package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/expense_approval_app/internal/apperrors"
	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_approval_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_approval_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// expenseColumns is shared with the ledger repository, which joins expenses as e.
const expenseColumns = `
	e.expense_id, e.company_id, e.user_id, e.title, e.description, e.amount, e.currency_code,
	e.category, e.expense_date, e.receipt, e.status, e.current_approval_level, e.remarks,
	e.created_at, e.created_by, e.last_updated_at, e.last_updated_by, e.version`

// expenseScanTargets returns the destinations for expenseColumns, in order.
func expenseScanTargets(e *domain.Expense) []any {
	return []any{
		&e.ExpenseID,
		&e.CompanyID,
		&e.UserID,
		&e.Title,
		&e.Description,
		&e.Amount,
		&e.CurrencyCode,
		&e.Category,
		&e.ExpenseDate,
		&e.Receipt,
		&e.Status,
		&e.CurrentApprovalLevel,
		&e.Remarks,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
		&e.Version,
	}
}

func scanExpense(row pgx.CollectableRow) (domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(expenseScanTargets(&e)...)
	return e, err
}

func (r *PgxExpenseRepository) getExpenses(ctx context.Context, filterQuery string, args ...any) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, "SELECT "+expenseColumns+" FROM expenses e "+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expenses", err)
	}
	defer rows.Close()
	expenses, err := pgx.CollectRows(rows, scanExpense)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Expense{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect expense rows", err)
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expenses, err := r.getExpenses(ctx, `WHERE e.expense_id = $1`, expenseID)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, apperrors.NewNotFoundError("expense " + expenseID + " not found")
	}
	return &expenses[0], nil
}

// ListExpenses uses keyset pagination on (created_at DESC, expense_id). One
// extra row is fetched to tell whether a next page exists.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, *string, error) {
	limit := pagination.NormalizeLimit(filter.Limit)

	conditions := []string{"e.company_id = $1"}
	args := []any{filter.CompanyID}

	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if len(filter.UserIDs) > 0 {
		add("e.user_id = ANY($%d)", filter.UserIDs)
	}
	if filter.Status != nil {
		add("e.status = $%d", *filter.Status)
	}
	if filter.Category != nil {
		add("e.category = $%d", *filter.Category)
	}
	if filter.From != nil {
		add("e.expense_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("e.expense_date <= $%d", *filter.To)
	}

	if filter.NextToken != nil && *filter.NextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.NewValidationFailedError("invalid nextToken"), err)
		}
		args = append(args, lastCreatedAt, lastID)
		conditions = append(conditions, fmt.Sprintf(
			"(e.created_at < $%d OR (e.created_at = $%d AND e.expense_id > $%d))", len(args)-1, len(args)-1, len(args)))
	}

	args = append(args, limit+1)
	query := "WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY e.created_at DESC, e.expense_id" +
		" LIMIT $" + strconv.Itoa(len(args))

	expenses, err := r.getExpenses(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(expenses) > limit {
		last := expenses[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ExpenseID)
		nextToken = &token
		expenses = expenses[:limit]
	}
	return expenses, nextToken, nil
}

// SubmitExpense inserts the expense and its approval chain atomically. The
// ledger rows are sent as one batch inside the transaction.
func (r *PgxExpenseRepository) SubmitExpense(ctx context.Context, expense domain.Expense, entries []domain.ApprovalLedgerEntry) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		expenseQuery := `
			INSERT INTO expenses (
				expense_id, company_id, user_id, title, description, amount, currency_code,
				category, expense_date, receipt, status, current_approval_level, remarks,
				created_at, created_by, last_updated_at, last_updated_by, version
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
		`
		_, err := tx.Exec(ctx, expenseQuery,
			expense.ExpenseID,
			expense.CompanyID,
			expense.UserID,
			expense.Title,
			expense.Description,
			expense.Amount,
			expense.CurrencyCode,
			expense.Category,
			expense.ExpenseDate,
			expense.Receipt,
			expense.Status,
			expense.CurrentApprovalLevel,
			expense.Remarks,
			expense.CreatedAt,
			expense.CreatedBy,
			expense.LastUpdatedAt,
			expense.LastUpdatedBy,
			expense.Version,
		)
		if err != nil {
			return expenseWriteError(expense.ExpenseID, err)
		}

		if len(entries) == 0 {
			return nil
		}

		ledgerQuery := `
			INSERT INTO approval_ledger (entry_id, expense_id, approver_id, level, action, comments, action_date, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
		`
		batch := &pgx.Batch{}
		for _, entry := range entries {
			batch.Queue(ledgerQuery,
				entry.EntryID,
				entry.ExpenseID,
				entry.ApproverID,
				entry.Level,
				entry.Action,
				entry.Comments,
				entry.ActionDate,
				entry.CreatedAt,
			)
		}

		br := tx.SendBatch(ctx, batch)
		for _, entry := range entries {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return apperrors.NewAppError(500, fmt.Sprintf("failed to insert approval level %d of expense %s", entry.Level, expense.ExpenseID), err)
			}
		}
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to close ledger batch", err)
		}
		return nil
	})
}

func (r *PgxExpenseRepository) UpdatePendingExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		UPDATE expenses
		SET title = $1, description = $2, amount = $3, category = $4, expense_date = $5, receipt = $6,
			last_updated_at = $7, last_updated_by = $8, version = version + 1
		WHERE expense_id = $9 AND status = 'pending' AND version = $10;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		expense.Title,
		expense.Description,
		expense.Amount,
		expense.Category,
		expense.ExpenseDate,
		expense.Receipt,
		expense.LastUpdatedAt,
		expense.LastUpdatedBy,
		expense.ExpenseID,
		expense.Version,
	)
	if err != nil {
		return expenseWriteError(expense.ExpenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewConflictError("expense " + expense.ExpenseID + " changed concurrently or is no longer pending")
	}
	return nil
}

func (r *PgxExpenseRepository) DeletePendingExpense(ctx context.Context, expenseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1 AND status = 'pending';`, expenseID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete expense "+expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewConflictError("expense " + expenseID + " is no longer pending")
	}
	return nil
}

func expenseWriteError(expenseID string, err error) error {
	switch code, constraint := pgErrorCode(err); code {
	case pgUniqueViolation:
		return apperrors.NewConflictError("expense ID " + expenseID + " already exists")
	case pgForeignKeyViolation:
		return apperrors.NewValidationFailedError("expense references a missing record (" + constraint + ")")
	case pgCheckViolation:
		return apperrors.NewValidationFailedError("expense violates constraint " + constraint)
	}
	return apperrors.NewAppError(500, "failed to write expense "+expenseID, err)
}
