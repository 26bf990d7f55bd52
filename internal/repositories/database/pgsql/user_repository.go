package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/expense_approval_app/internal/apperrors"
	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_approval_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUserRepository reads the organisation chart. Users are provisioned
// outside this service.
type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `
	u.user_id, u.company_id, u.name, u.email, u.role, u.manager_id, u.is_active,
	u.created_at, u.created_by, u.last_updated_at, u.last_updated_by, u.version`

func scanUser(row pgx.CollectableRow) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UserID,
		&u.CompanyID,
		&u.Name,
		&u.Email,
		&u.Role,
		&u.ManagerID,
		&u.IsActive,
		&u.CreatedAt,
		&u.CreatedBy,
		&u.LastUpdatedAt,
		&u.LastUpdatedBy,
		&u.Version,
	)
	return u, err
}

// getUsers runs a user select with the given tail (joins, filters, ordering).
func (r *PgxUserRepository) getUsers(ctx context.Context, tail string, args ...any) ([]domain.User, error) {
	rows, err := r.Pool.Query(ctx, "SELECT "+userColumns+" FROM users u "+tail, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()
	users, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect user rows", err)
	}
	return users, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	users, err := r.getUsers(ctx, `WHERE u.user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &users[0], nil
}

// GetManager returns nil when the user has no manager.
func (r *PgxUserRepository) GetManager(ctx context.Context, userID string) (*domain.User, error) {
	managers, err := r.getUsers(ctx, `
		JOIN users s ON s.manager_id = u.user_id
		WHERE s.user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	if len(managers) == 0 {
		return nil, nil
	}
	return &managers[0], nil
}

// FindActiveAdmin returns the longest-standing active admin of the company, or nil.
func (r *PgxUserRepository) FindActiveAdmin(ctx context.Context, companyID string) (*domain.User, error) {
	admins, err := r.getUsers(ctx, `
		WHERE u.company_id = $1 AND u.role = $2 AND u.is_active = true
		ORDER BY u.created_at, u.user_id
		LIMIT 1`, companyID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		return nil, nil
	}
	return &admins[0], nil
}

func (r *PgxUserRepository) ListSubordinateIDs(ctx context.Context, managerID string) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT user_id FROM users WHERE manager_id = $1 ORDER BY user_id`, managerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query subordinates of "+managerID, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []string{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect subordinate rows", err)
	}
	return ids, nil
}
