package dto

import (
	"time"

	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Expense DTOs ---

// CreateExpenseRequest defines data for submitting an expense.
type CreateExpenseRequest struct {
	Title       string                 `json:"title" binding:"required,max=200"`
	Description string                 `json:"description" binding:"max=2000"`
	Amount      decimal.Decimal        `json:"amount" binding:"positive_amount"`
	Category    domain.ExpenseCategory `json:"category" binding:"required,expense_category"`
	ExpenseDate time.Time              `json:"expenseDate" binding:"required"`
	Receipt     *string                `json:"receipt,omitempty" binding:"omitempty,url"`
}

// UpdateExpenseRequest defines the editable fields of a pending expense.
type UpdateExpenseRequest struct {
	Title       *string                 `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Description *string                 `json:"description,omitempty" binding:"omitempty,max=2000"`
	Amount      *decimal.Decimal        `json:"amount,omitempty" binding:"omitempty,positive_amount"`
	Category    *domain.ExpenseCategory `json:"category,omitempty" binding:"omitempty,expense_category"`
	ExpenseDate *time.Time              `json:"expenseDate,omitempty"`
	Receipt     *string                 `json:"receipt,omitempty" binding:"omitempty,url"`
}

// ListExpensesParams defines the query filters for listing expenses.
type ListExpensesParams struct {
	Status    *domain.ExpenseStatus   `form:"status" binding:"omitempty,oneof=pending processing approved rejected"`
	Category  *domain.ExpenseCategory `form:"category" binding:"omitempty,expense_category"`
	From      *time.Time              `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To        *time.Time              `form:"to" time_format:"2006-01-02" time_utc:"1"`
	Limit     int                     `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken string                  `form:"nextToken"`
}

// ExpenseResponse defines data returned for an expense.
type ExpenseResponse struct {
	ExpenseID            string                 `json:"expenseID"`
	CompanyID            string                 `json:"companyID"`
	UserID               string                 `json:"userID"`
	Title                string                 `json:"title"`
	Description          string                 `json:"description"`
	Amount               decimal.Decimal        `json:"amount"`
	CurrencyCode         string                 `json:"currencyCode"`
	Category             domain.ExpenseCategory `json:"category"`
	ExpenseDate          time.Time              `json:"expenseDate"`
	Receipt              *string                `json:"receipt,omitempty"`
	Status               domain.ExpenseStatus   `json:"status"`
	CurrentApprovalLevel int                    `json:"currentApprovalLevel"`
	Remarks              *string                `json:"remarks,omitempty"`
	CreatedAt            time.Time              `json:"createdAt"`
	LastUpdatedAt        time.Time              `json:"lastUpdatedAt"`
	Version              int64                  `json:"version"`
	Approvals            []LedgerEntryResponse  `json:"approvals,omitempty"`
}

// ToExpenseResponse converts domain.Expense to DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:            e.ExpenseID,
		CompanyID:            e.CompanyID,
		UserID:               e.UserID,
		Title:                e.Title,
		Description:          e.Description,
		Amount:               e.Amount,
		CurrencyCode:         e.CurrencyCode,
		Category:             e.Category,
		ExpenseDate:          e.ExpenseDate,
		Receipt:              e.Receipt,
		Status:               e.Status,
		CurrentApprovalLevel: e.CurrentApprovalLevel,
		Remarks:              e.Remarks,
		CreatedAt:            e.CreatedAt,
		LastUpdatedAt:        e.LastUpdatedAt,
		Version:              e.Version,
	}
}

// ToExpenseDetailResponse converts an expense and its ledger history to DTO.
func ToExpenseDetailResponse(e *domain.Expense, ledger []domain.ApprovalLedgerEntry) ExpenseResponse {
	resp := ToExpenseResponse(e)
	resp.Approvals = make([]LedgerEntryResponse, len(ledger))
	for i, entry := range ledger {
		resp.Approvals[i] = ToLedgerEntryResponse(entry)
	}
	return resp
}

// ListExpensesResponse wraps a list of expenses.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListExpensesResponse converts a page of domain.Expense to DTO.
func ToListExpensesResponse(es []domain.Expense, nextToken *string) ListExpensesResponse {
	list := make([]ExpenseResponse, len(es))
	for i := range es {
		list[i] = ToExpenseResponse(&es[i])
	}
	return ListExpensesResponse{Expenses: list, NextToken: nextToken}
}
