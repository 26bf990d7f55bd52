package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/expense_approval_app/internal/apperrors"
	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_approval_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxApprovalFlowRepository struct {
	BaseRepository
}

func newPgxApprovalFlowRepository(pool *pgxpool.Pool) portsrepo.ApprovalFlowRepositoryFacade {
	return &PgxApprovalFlowRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxApprovalFlowRepository implements portsrepo.ApprovalFlowRepositoryFacade
var _ portsrepo.ApprovalFlowRepositoryFacade = (*PgxApprovalFlowRepository)(nil)

var FULL_APPROVAL_FLOW_SELECT_QUERY = `
SELECT
	f.flow_id, f.company_id, f.name, f.min_amount, f.max_amount, f.approval_levels, f.is_active,
	f.created_at, f.created_by, f.last_updated_at, f.last_updated_by, f.version
FROM approval_flows f
`

func scanApprovalFlow(row pgx.CollectableRow) (domain.ApprovalFlow, error) {
	var f domain.ApprovalFlow
	err := row.Scan(
		&f.FlowID,
		&f.CompanyID,
		&f.Name,
		&f.MinAmount,
		&f.MaxAmount,
		&f.ApprovalLevels,
		&f.IsActive,
		&f.CreatedAt,
		&f.CreatedBy,
		&f.LastUpdatedAt,
		&f.LastUpdatedBy,
		&f.Version,
	)
	return f, err
}

func (r *PgxApprovalFlowRepository) getFlows(ctx context.Context, filterQuery string, args ...any) ([]domain.ApprovalFlow, error) {
	rows, err := r.Pool.Query(ctx, FULL_APPROVAL_FLOW_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query approval flows", err)
	}
	defer rows.Close()
	flows, err := pgx.CollectRows(rows, scanApprovalFlow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.ApprovalFlow{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect approval flow rows", err)
	}
	return flows, nil
}

func (r *PgxApprovalFlowRepository) FindFlowByID(ctx context.Context, companyID, flowID string) (*domain.ApprovalFlow, error) {
	flows, err := r.getFlows(ctx, `WHERE f.company_id = $1 AND f.flow_id = $2`, companyID, flowID)
	if err != nil {
		return nil, err
	}
	if len(flows) == 0 {
		return nil, apperrors.NewNotFoundError("approval flow " + flowID + " not found")
	}
	return &flows[0], nil
}

func (r *PgxApprovalFlowRepository) ListFlowsByCompany(ctx context.Context, companyID string) ([]domain.ApprovalFlow, error) {
	return r.getFlows(ctx, `WHERE f.company_id = $1 ORDER BY f.min_amount, f.created_at`, companyID)
}

func (r *PgxApprovalFlowRepository) ListActiveFlows(ctx context.Context, companyID string) ([]domain.ApprovalFlow, error) {
	return r.getFlows(ctx, `WHERE f.company_id = $1 AND f.is_active = true ORDER BY f.min_amount`, companyID)
}

func (r *PgxApprovalFlowRepository) FindActiveFlowsCovering(ctx context.Context, companyID string, amount decimal.Decimal) ([]domain.ApprovalFlow, error) {
	return r.getFlows(ctx, `
		WHERE f.company_id = $1
			AND f.is_active = true
			AND f.min_amount <= $2
			AND (f.max_amount IS NULL OR f.max_amount >= $2)
		ORDER BY f.min_amount DESC`, companyID, amount)
}

func (r *PgxApprovalFlowRepository) SaveFlow(ctx context.Context, flow domain.ApprovalFlow) error {
	query := `
		INSERT INTO approval_flows (
			flow_id, company_id, name, min_amount, max_amount, approval_levels, is_active,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		flow.FlowID,
		flow.CompanyID,
		flow.Name,
		flow.MinAmount,
		flow.MaxAmount,
		flow.ApprovalLevels,
		flow.IsActive,
		flow.CreatedAt,
		flow.CreatedBy,
		flow.LastUpdatedAt,
		flow.LastUpdatedBy,
		1,
	)
	if err != nil {
		return flowWriteError(flow, err)
	}
	return nil
}

func (r *PgxApprovalFlowRepository) UpdateFlow(ctx context.Context, flow domain.ApprovalFlow) error {
	query := `
		UPDATE approval_flows
		SET name = $1, min_amount = $2, max_amount = $3, approval_levels = $4, is_active = $5,
			last_updated_at = $6, last_updated_by = $7, version = version + 1
		WHERE flow_id = $8 AND company_id = $9 AND version = $10;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		flow.Name,
		flow.MinAmount,
		flow.MaxAmount,
		flow.ApprovalLevels,
		flow.IsActive,
		flow.LastUpdatedAt,
		flow.LastUpdatedBy,
		flow.FlowID,
		flow.CompanyID,
		flow.Version,
	)
	if err != nil {
		return flowWriteError(flow, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewConflictError("approval flow " + flow.FlowID + " was modified concurrently or no longer exists")
	}
	return nil
}

// flowWriteError maps constraint violations raised by the flow table.
// The exclusion constraint backs the in-service overlap check under concurrency.
func flowWriteError(flow domain.ApprovalFlow, err error) error {
	switch code, _ := pgErrorCode(err); code {
	case pgExclusionViolation:
		return apperrors.ErrOverlappingRange
	case pgUniqueViolation:
		return apperrors.NewConflictError("approval flow ID " + flow.FlowID + " already exists")
	case pgCheckViolation:
		return apperrors.NewValidationFailedError("approval flow violates a table constraint")
	}
	return apperrors.NewAppError(500, "failed to save approval flow "+flow.FlowID, err)
}
