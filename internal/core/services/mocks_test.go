package services_test

import (
	"context"

	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_approval_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_approval_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetManager(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindActiveAdmin(ctx context.Context, companyID string) (*domain.User, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListSubordinateIDs(ctx context.Context, managerID string) ([]string, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

// --- Mock ApprovalFlowRepository ---
type MockApprovalFlowRepository struct {
	mock.Mock
}

func (m *MockApprovalFlowRepository) FindFlowByID(ctx context.Context, companyID, flowID string) (*domain.ApprovalFlow, error) {
	args := m.Called(ctx, companyID, flowID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalFlow), args.Error(1)
}

func (m *MockApprovalFlowRepository) ListFlowsByCompany(ctx context.Context, companyID string) ([]domain.ApprovalFlow, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalFlow), args.Error(1)
}

func (m *MockApprovalFlowRepository) ListActiveFlows(ctx context.Context, companyID string) ([]domain.ApprovalFlow, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalFlow), args.Error(1)
}

func (m *MockApprovalFlowRepository) FindActiveFlowsCovering(ctx context.Context, companyID string, amount decimal.Decimal) ([]domain.ApprovalFlow, error) {
	args := m.Called(ctx, companyID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalFlow), args.Error(1)
}

func (m *MockApprovalFlowRepository) SaveFlow(ctx context.Context, flow domain.ApprovalFlow) error {
	args := m.Called(ctx, flow)
	return args.Error(0)
}

func (m *MockApprovalFlowRepository) UpdateFlow(ctx context.Context, flow domain.ApprovalFlow) error {
	args := m.Called(ctx, flow)
	return args.Error(0)
}

var _ portsrepo.ApprovalFlowRepositoryFacade = (*MockApprovalFlowRepository)(nil)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, *string, error) {
	args := m.Called(ctx, filter)
	var next *string
	if v := args.Get(1); v != nil {
		next = v.(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Expense), next, args.Error(2)
}

func (m *MockExpenseRepository) SubmitExpense(ctx context.Context, expense domain.Expense, entries []domain.ApprovalLedgerEntry) error {
	args := m.Called(ctx, expense, entries)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdatePendingExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeletePendingExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

// --- Mock ApprovalLedgerRepository ---
type MockApprovalLedgerRepository struct {
	mock.Mock
}

func (m *MockApprovalLedgerRepository) FindPendingFor(ctx context.Context, expenseID, approverID string) (*domain.PendingApproval, error) {
	args := m.Called(ctx, expenseID, approverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingApproval), args.Error(1)
}

func (m *MockApprovalLedgerRepository) FindLedgerByExpense(ctx context.Context, expenseID string) ([]domain.ApprovalLedgerEntry, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalLedgerEntry), args.Error(1)
}

func (m *MockApprovalLedgerRepository) HasPendingAtLevel(ctx context.Context, expenseID string, level int) (bool, error) {
	args := m.Called(ctx, expenseID, level)
	return args.Bool(0), args.Error(1)
}

func (m *MockApprovalLedgerRepository) ListPendingForApprover(ctx context.Context, approverID string) ([]domain.PendingApproval, error) {
	args := m.Called(ctx, approverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingApproval), args.Error(1)
}

func (m *MockApprovalLedgerRepository) ApplyTransition(ctx context.Context, expense domain.Expense, expectedVersion int64, t domain.Transition) error {
	args := m.Called(ctx, expense, expectedVersion, t)
	return args.Error(0)
}

var _ portsrepo.ApprovalLedgerRepositoryFacade = (*MockApprovalLedgerRepository)(nil)

// --- Mock WorkflowEventPublisher ---
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, actorID string, event portssvc.WorkflowEvent, expense domain.Expense) {
	m.Called(ctx, actorID, event, expense)
}

var _ portssvc.WorkflowEventPublisher = (*MockPublisher)(nil)

// --- Fixtures ---

const testCompanyID = "company-1"

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func newUser(id string, role domain.UserRole, managerID *string) *domain.User {
	return &domain.User{
		UserID:    id,
		CompanyID: testCompanyID,
		Name:      id,
		Email:     id + "@example.com",
		Role:      role,
		ManagerID: managerID,
		IsActive:  true,
	}
}
