package pgsql

import (
	portsrepo "github.com/SscSPs/expense_approval_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:           newPgxUserRepository(dbPool),
		CompanyRepo:        newPgxCompanyRepository(dbPool),
		ApprovalFlowRepo:   newPgxApprovalFlowRepository(dbPool),
		ExpenseRepo:        newPgxExpenseRepository(dbPool),
		ApprovalLedgerRepo: newPgxApprovalLedgerRepository(dbPool),
	}
}
