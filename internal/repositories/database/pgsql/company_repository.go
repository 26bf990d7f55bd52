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

type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
		SELECT company_id, name, currency_code, country, is_active,
			created_at, created_by, last_updated_at, last_updated_by, version
		FROM companies
		WHERE company_id = $1;
	`
	var c domain.Company
	err := r.Pool.QueryRow(ctx, query, companyID).Scan(
		&c.CompanyID,
		&c.Name,
		&c.CurrencyCode,
		&c.Country,
		&c.IsActive,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
		&c.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("company " + companyID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find company "+companyID, err)
	}
	return &c, nil
}
