package domain

import (
	"fmt"

	"github.com/SscSPs/expense_approval_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Amounts are stored as NUMERIC(12, 2).
const AmountScale = 2

// MaxAmountValue is the largest magnitude an amount column holds.
var MaxAmountValue = decimal.RequireFromString("9999999999.99")

// FitsAmountColumn reports whether amount is stored without rounding or overflow.
func FitsAmountColumn(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(AmountScale)) && amount.Abs().LessThanOrEqual(MaxAmountValue)
}

// ValidateAmount returns a validation error naming field when amount does not
// fit an amount column. Routing compares the same value that gets persisted.
func ValidateAmount(field string, amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return apperrors.NewValidationFailedError(
			fmt.Sprintf("%s must have at most %d decimal places", field, AmountScale))
	}
	if amount.Abs().GreaterThan(MaxAmountValue) {
		return apperrors.NewValidationFailedError(
			fmt.Sprintf("%s must not exceed %s", field, MaxAmountValue.String()))
	}
	return nil
}
