package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus is the externally visible status of an expense.
type ExpenseStatus string

const (
	StatusPending    ExpenseStatus = "pending"    // not routed into a workflow
	StatusProcessing ExpenseStatus = "processing" // waiting on an approval level
	StatusApproved   ExpenseStatus = "approved"
	StatusRejected   ExpenseStatus = "rejected"
)

// IsTerminal reports whether no further workflow mutation is allowed.
func (s ExpenseStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ExpenseCategory classifies a spend request.
type ExpenseCategory string

const (
	CategoryTravel         ExpenseCategory = "travel"
	CategoryFood           ExpenseCategory = "food"
	CategoryAccommodation  ExpenseCategory = "accommodation"
	CategoryTransportation ExpenseCategory = "transportation"
	CategorySupplies       ExpenseCategory = "supplies"
	CategoryOther          ExpenseCategory = "other"
)

var validCategories = map[ExpenseCategory]bool{
	CategoryTravel:         true,
	CategoryFood:           true,
	CategoryAccommodation:  true,
	CategoryTransportation: true,
	CategorySupplies:       true,
	CategoryOther:          true,
}

// IsValid reports whether c is a known category.
func (c ExpenseCategory) IsValid() bool {
	return validCategories[c]
}

// Expense is one spend request submitted by an employee.
type Expense struct {
	ExpenseID            string          `json:"expenseID"`
	CompanyID            string          `json:"companyID"`
	UserID               string          `json:"userID"` // Submitter
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	Amount               decimal.Decimal `json:"amount"`
	CurrencyCode         string          `json:"currencyCode"`
	Category             ExpenseCategory `json:"category"`
	ExpenseDate          time.Time       `json:"expenseDate"`
	Receipt              *string         `json:"receipt,omitempty"`
	Status               ExpenseStatus   `json:"status"`
	CurrentApprovalLevel int             `json:"currentApprovalLevel"`
	Remarks              *string         `json:"remarks,omitempty"` // Rejection reason
	AuditFields
}

// State derives the workflow state from the persisted status and level.
func (e Expense) State() WorkflowState {
	switch e.Status {
	case StatusProcessing:
		return InProgress(e.CurrentApprovalLevel)
	case StatusApproved:
		return Approved(e.CurrentApprovalLevel)
	case StatusRejected:
		return Rejected(e.CurrentApprovalLevel)
	default:
		return NotStarted()
	}
}

// Apply writes the target state of t onto the expense and bumps its revision.
func (e *Expense) Apply(t Transition, actorID string, now time.Time) {
	e.Status = t.To.Status()
	e.CurrentApprovalLevel = t.To.Level
	if t.Remarks != nil {
		e.Remarks = t.Remarks
	}
	e.LastUpdatedAt = now
	e.LastUpdatedBy = actorID
	e.Version++
}

// ExpenseFilter narrows ListExpenses results.
type ExpenseFilter struct {
	CompanyID string
	UserIDs   []string // empty means every user of the company
	Status    *ExpenseStatus
	Category  *ExpenseCategory
	From      *time.Time
	To        *time.Time
	Limit     int     // page size; 0 means the default
	NextToken *string // continues after the last row of the previous page
}
