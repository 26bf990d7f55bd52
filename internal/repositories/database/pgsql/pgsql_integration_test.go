//go:build integration

package pgsql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/expense_approval_app/internal/apperrors"
	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_approval_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_approval_app/internal/repositories/database/pgsql"
	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	companyID  = "c-acme"
	adminID    = "u-admin"
	directorID = "u-director"
	managerID  = "u-manager"
	employeeID = "u-employee"
)

type RepositoryIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
	repos     portsrepo.RepositoryProvider
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("expense_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err, "failed to start postgres container")
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	m, err := migrate.New("file://../../../../migrations", connStr)
	s.Require().NoError(err)
	s.Require().NoError(m.Up())
	sourceErr, dbErr := m.Close()
	s.Require().NoError(errors.Join(sourceErr, dbErr))

	s.pool, err = pgxpool.New(s.ctx, connStr)
	s.Require().NoError(err)
	s.repos = pgsql.NewRepositoryProvider(s.pool)
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

// SetupTest resets the tables and seeds one company with a three deep
// reporting line: employee -> manager -> director, plus an admin.
func (s *RepositoryIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE approval_ledger, expenses, approval_flows, users, companies CASCADE`)
	s.Require().NoError(err)

	_, err = s.pool.Exec(s.ctx, `
		INSERT INTO companies (company_id, name, currency_code, created_by, last_updated_by)
		VALUES ($1, 'Acme', 'USD', 'seed', 'seed')`, companyID)
	s.Require().NoError(err)

	users := []struct {
		id      string
		role    domain.UserRole
		manager *string
	}{
		{adminID, domain.RoleAdmin, nil},
		{directorID, domain.RoleManager, nil},
		{managerID, domain.RoleManager, strPtr(directorID)},
		{employeeID, domain.RoleEmployee, strPtr(managerID)},
	}
	for _, u := range users {
		_, err := s.pool.Exec(s.ctx, `
			INSERT INTO users (user_id, company_id, name, email, role, manager_id, created_by, last_updated_by)
			VALUES ($1, $2, $1, $1 || '@acme.test', $3, $4, 'seed', 'seed')`,
			u.id, companyID, u.role, u.manager)
		s.Require().NoError(err)
	}
}

func strPtr(v string) *string { return &v }

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func (s *RepositoryIntegrationSuite) newFlow(name, min string, max *string, levels int) domain.ApprovalFlow {
	f := domain.ApprovalFlow{
		FlowID:         uuid.NewString(),
		CompanyID:      companyID,
		Name:           name,
		MinAmount:      dec(min),
		ApprovalLevels: levels,
		IsActive:       true,
		AuditFields:    domain.NewAuditFields(adminID, time.Now().UTC()),
	}
	if max != nil {
		m := dec(*max)
		f.MaxAmount = &m
	}
	return f
}

func (s *RepositoryIntegrationSuite) submit(amount string, chain []string, createdAt time.Time) domain.Expense {
	e := domain.Expense{
		ExpenseID:    uuid.NewString(),
		CompanyID:    companyID,
		UserID:       employeeID,
		Title:        "Conference",
		Amount:       dec(amount),
		CurrencyCode: "USD",
		Category:     domain.CategoryTravel,
		ExpenseDate:  time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Status:       domain.StatusPending,
		AuditFields:  domain.NewAuditFields(employeeID, createdAt),
	}
	to := domain.SubmitTransition(len(chain)).To
	e.Status = to.Status()
	e.CurrentApprovalLevel = to.Level

	s.Require().NoError(s.repos.ExpenseRepo.SubmitExpense(s.ctx, e, domain.NewLedgerEntries(e.ExpenseID, chain, createdAt)))
	return e
}

func (s *RepositoryIntegrationSuite) TestDirectory() {
	manager, err := s.repos.UserRepo.GetManager(s.ctx, employeeID)
	s.Require().NoError(err)
	s.Require().NotNil(manager)
	s.Equal(managerID, manager.UserID)

	top, err := s.repos.UserRepo.GetManager(s.ctx, directorID)
	s.Require().NoError(err)
	s.Nil(top)

	admin, err := s.repos.UserRepo.FindActiveAdmin(s.ctx, companyID)
	s.Require().NoError(err)
	s.Require().NotNil(admin)
	s.Equal(adminID, admin.UserID)

	reports, err := s.repos.UserRepo.ListSubordinateIDs(s.ctx, managerID)
	s.Require().NoError(err)
	s.Equal([]string{employeeID}, reports)
}

func (s *RepositoryIntegrationSuite) TestFlows_ExclusionConstraintRejectsOverlap() {
	small := s.newFlow("small", "0", strPtr("499.99"), 1)
	large := s.newFlow("large", "500", nil, 3)
	s.Require().NoError(s.repos.ApprovalFlowRepo.SaveFlow(s.ctx, small))
	s.Require().NoError(s.repos.ApprovalFlowRepo.SaveFlow(s.ctx, large))

	overlapping := s.newFlow("overlap", "400", strPtr("600"), 2)
	err := s.repos.ApprovalFlowRepo.SaveFlow(s.ctx, overlapping)
	s.ErrorIs(err, apperrors.ErrOverlappingRange)

	inactive := overlapping
	inactive.FlowID = uuid.NewString()
	inactive.IsActive = false
	s.NoError(s.repos.ApprovalFlowRepo.SaveFlow(s.ctx, inactive), "inactive flows may overlap")

	covering, err := s.repos.ApprovalFlowRepo.FindActiveFlowsCovering(s.ctx, companyID, dec("500"))
	s.Require().NoError(err)
	s.Require().Len(covering, 1)
	s.Equal(large.FlowID, covering[0].FlowID)
	s.Nil(covering[0].MaxAmount)
}

func (s *RepositoryIntegrationSuite) TestFlows_UpdateIsVersioned() {
	flow := s.newFlow("small", "0", strPtr("100"), 1)
	s.Require().NoError(s.repos.ApprovalFlowRepo.SaveFlow(s.ctx, flow))

	flow.ApprovalLevels = 2
	s.Require().NoError(s.repos.ApprovalFlowRepo.UpdateFlow(s.ctx, flow))

	stale := flow
	stale.Name = "renamed"
	err := s.repos.ApprovalFlowRepo.UpdateFlow(s.ctx, stale)
	s.ErrorIs(err, apperrors.ErrConflict)

	stored, err := s.repos.ApprovalFlowRepo.FindFlowByID(s.ctx, companyID, flow.FlowID)
	s.Require().NoError(err)
	s.Equal(2, stored.ApprovalLevels)
	s.Equal(int64(2), stored.Version)
}

func (s *RepositoryIntegrationSuite) TestLedger_ApproveAdvancesThenStaleVersionLoses() {
	expense := s.submit("750", []string{managerID, directorID}, time.Now().UTC())

	pending, err := s.repos.ApprovalLedgerRepo.FindPendingFor(s.ctx, expense.ExpenseID, managerID)
	s.Require().NoError(err)
	s.Equal(1, pending.Entry.Level)
	s.Equal(domain.StatusProcessing, pending.Expense.Status)

	next, err := s.repos.ApprovalLedgerRepo.HasPendingAtLevel(s.ctx, expense.ExpenseID, 2)
	s.Require().NoError(err)
	s.True(next)

	current := pending.Expense
	tr, err := domain.DecideTransition(current.State(), pending.Entry, domain.Decision{Action: domain.ActionApproved}, next)
	s.Require().NoError(err)
	readVersion := current.Version
	current.Apply(tr, managerID, time.Now().UTC())
	s.Require().NoError(s.repos.ApprovalLedgerRepo.ApplyTransition(s.ctx, current, readVersion, tr))

	// Replaying the same decision finds no pending row.
	err = s.repos.ApprovalLedgerRepo.ApplyTransition(s.ctx, current, current.Version, tr)
	s.ErrorIs(err, apperrors.ErrNotFoundOrNotAuthorized)

	// A level 2 decision computed against the old version must not land.
	level2, err := s.repos.ApprovalLedgerRepo.FindPendingFor(s.ctx, expense.ExpenseID, directorID)
	s.Require().NoError(err)
	staleTr, err := domain.DecideTransition(domain.InProgress(2), level2.Entry, domain.Decision{Action: domain.ActionApproved}, false)
	s.Require().NoError(err)
	staleExpense := level2.Expense
	staleExpense.Apply(staleTr, directorID, time.Now().UTC())
	err = s.repos.ApprovalLedgerRepo.ApplyTransition(s.ctx, staleExpense, readVersion, staleTr)
	s.ErrorIs(err, apperrors.ErrStaleApprovalLevel)

	history, err := s.repos.ApprovalLedgerRepo.FindLedgerByExpense(s.ctx, expense.ExpenseID)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal(domain.ActionApproved, history[0].Action)
	s.NotNil(history[0].ActionDate)
	s.Equal(domain.ActionPending, history[1].Action, "rolled back with the failed swap")

	inbox, err := s.repos.ApprovalLedgerRepo.ListPendingForApprover(s.ctx, directorID)
	s.Require().NoError(err)
	s.Require().Len(inbox, 1)
	s.Equal(2, inbox[0].Expense.CurrentApprovalLevel)
}

func (s *RepositoryIntegrationSuite) TestLedger_RejectClosesEveryPendingRow() {
	expense := s.submit("9000", []string{managerID, directorID, adminID}, time.Now().UTC())

	pending, err := s.repos.ApprovalLedgerRepo.FindPendingFor(s.ctx, expense.ExpenseID, managerID)
	s.Require().NoError(err)

	current := pending.Expense
	tr, err := domain.DecideTransition(current.State(), pending.Entry,
		domain.Decision{Action: domain.ActionRejected, Comments: "no receipt"}, true)
	s.Require().NoError(err)
	readVersion := current.Version
	current.Apply(tr, managerID, time.Now().UTC())
	s.Require().NoError(s.repos.ApprovalLedgerRepo.ApplyTransition(s.ctx, current, readVersion, tr))

	stored, err := s.repos.ExpenseRepo.FindExpenseByID(s.ctx, expense.ExpenseID)
	s.Require().NoError(err)
	s.Equal(domain.StatusRejected, stored.Status)
	s.Require().NotNil(stored.Remarks)
	s.Equal("no receipt", *stored.Remarks)

	history, err := s.repos.ApprovalLedgerRepo.FindLedgerByExpense(s.ctx, expense.ExpenseID)
	s.Require().NoError(err)
	for _, row := range history {
		s.Equal(domain.ActionRejected, row.Action, "level %d", row.Level)
	}

	_, err = s.repos.ApprovalLedgerRepo.FindPendingFor(s.ctx, expense.ExpenseID, directorID)
	s.ErrorIs(err, apperrors.ErrNotFoundOrNotAuthorized)
}

func (s *RepositoryIntegrationSuite) TestExpenses_PendingLifecycle() {
	expense := s.submit("20", nil, time.Now().UTC())
	s.Equal(domain.StatusPending, expense.Status)

	history, err := s.repos.ApprovalLedgerRepo.FindLedgerByExpense(s.ctx, expense.ExpenseID)
	s.Require().NoError(err)
	s.Empty(history)

	expense.Title = "Conference lunch"
	s.Require().NoError(s.repos.ExpenseRepo.UpdatePendingExpense(s.ctx, expense))
	s.ErrorIs(s.repos.ExpenseRepo.UpdatePendingExpense(s.ctx, expense), apperrors.ErrConflict, "version moved on")

	s.Require().NoError(s.repos.ExpenseRepo.DeletePendingExpense(s.ctx, expense.ExpenseID))
	_, err = s.repos.ExpenseRepo.FindExpenseByID(s.ctx, expense.ExpenseID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestExpenses_KeysetPagination() {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 5; i++ {
		ids = append(ids, s.submit("10", nil, base.Add(time.Duration(i)*time.Minute)).ExpenseID)
	}

	var seen []string
	filter := domain.ExpenseFilter{CompanyID: companyID, Limit: 2}
	for page := 0; page < 5; page++ {
		expenses, next, err := s.repos.ExpenseRepo.ListExpenses(s.ctx, filter)
		s.Require().NoError(err)
		for _, e := range expenses {
			seen = append(seen, e.ExpenseID)
		}
		if next == nil {
			break
		}
		filter.NextToken = next
	}

	s.Equal([]string{ids[4], ids[3], ids[2], ids[1], ids[0]}, seen, "newest first, no gaps or repeats")

	_, _, err := s.repos.ExpenseRepo.ListExpenses(s.ctx, domain.ExpenseFilter{CompanyID: companyID, NextToken: strPtr("%%%")})
	s.ErrorIs(err, apperrors.ErrValidation)
}
