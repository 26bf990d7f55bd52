package services

import (
	portsrepo "github.com/SscSPs/expense_approval_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_approval_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, publisher portssvc.WorkflowEventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Routing collaborators are shared by submission only
	selector := NewFlowSelector(repos.ApprovalFlowRepo)
	builder := NewChainBuilder(repos.UserRepo)

	container.ApprovalFlow = NewApprovalFlowService(repos.ApprovalFlowRepo, repos.UserRepo)

	expenseOpts := []ExpenseServiceOption{}
	if publisher != nil {
		expenseOpts = append(expenseOpts, WithExpenseEventPublisher(publisher))
	}
	container.Expense = NewExpenseService(
		repos.ExpenseRepo,
		repos.ApprovalLedgerRepo,
		repos.CompanyRepo,
		repos.UserRepo,
		selector,
		builder,
		expenseOpts...,
	)

	container.Approval = NewApprovalService(repos.ApprovalLedgerRepo, repos.UserRepo, publisher)

	return container
}
