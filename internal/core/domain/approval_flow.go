package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/expense_approval_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	MinApprovalLevels = 1
	MaxApprovalLevels = 5
)

// ApprovalFlow is a company-scoped rule mapping an amount range to a number of
// sequential approval levels. Flows are deactivated, never deleted.
type ApprovalFlow struct {
	FlowID         string           `json:"flowID"`
	CompanyID      string           `json:"companyID"`
	Name           string           `json:"name"`
	MinAmount      decimal.Decimal  `json:"minAmount"`           // Inclusive
	MaxAmount      *decimal.Decimal `json:"maxAmount,omitempty"` // Inclusive, nil = unbounded
	ApprovalLevels int              `json:"approvalLevels"`
	IsActive       bool             `json:"isActive"`
	AuditFields
}

// Contains reports whether amount falls in [MinAmount, MaxAmount].
func (f ApprovalFlow) Contains(amount decimal.Decimal) bool {
	if amount.LessThan(f.MinAmount) {
		return false
	}
	return f.MaxAmount == nil || amount.LessThanOrEqual(*f.MaxAmount)
}

// Overlaps reports whether the two closed ranges share at least one amount.
func (f ApprovalFlow) Overlaps(other ApprovalFlow) bool {
	if f.MaxAmount != nil && f.MaxAmount.LessThan(other.MinAmount) {
		return false
	}
	if other.MaxAmount != nil && other.MaxAmount.LessThan(f.MinAmount) {
		return false
	}
	return true
}

// Validate checks the static invariants of a flow. Range disjointness needs the
// other flows of the company and is checked by the flow service.
func (f ApprovalFlow) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return apperrors.NewValidationFailedError("approval flow name is required")
	}
	if f.MinAmount.IsNegative() {
		return apperrors.NewValidationFailedError("minimum amount must be 0 or greater")
	}
	if err := ValidateAmount("minimum amount", f.MinAmount); err != nil {
		return err
	}
	if f.MaxAmount != nil {
		if err := ValidateAmount("maximum amount", *f.MaxAmount); err != nil {
			return err
		}
	}
	if f.MaxAmount != nil && f.MaxAmount.LessThan(f.MinAmount) {
		return apperrors.NewValidationFailedError(
			fmt.Sprintf("maximum amount %s is below minimum amount %s", f.MaxAmount.String(), f.MinAmount.String()))
	}
	if f.ApprovalLevels < MinApprovalLevels || f.ApprovalLevels > MaxApprovalLevels {
		return fmt.Errorf("%w: got %d", apperrors.ErrInvalidLevels, f.ApprovalLevels)
	}
	return nil
}

// SelectFlow picks the flow covering amount with the largest lower bound.
// Inactive flows and flows that do not contain amount are ignored.
func SelectFlow(candidates []ApprovalFlow, amount decimal.Decimal) *ApprovalFlow {
	var best *ApprovalFlow
	for i := range candidates {
		c := candidates[i]
		if !c.IsActive || !c.Contains(amount) {
			continue
		}
		if best == nil || c.MinAmount.GreaterThan(best.MinAmount) {
			best = &candidates[i]
		}
	}
	return best
}
