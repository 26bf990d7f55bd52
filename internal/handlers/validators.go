package handlers

import (
	"errors"
	"reflect"
	"sync"

	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// RegisterValidators installs the custom binding tags used by the request DTOs
// on gin's validator engine. Safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}

	var err error
	registerValidatorsOnce.Do(func() {
		// Decimals are validated through their string form.
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

		if err = v.RegisterValidation("positive_amount", positiveAmount); err != nil {
			return
		}
		if err = v.RegisterValidation("non_negative_amount", nonNegativeAmount); err != nil {
			return
		}
		err = v.RegisterValidation("expense_category", expenseCategory)
	})
	return err
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func parseDecimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	if fl.Field().Kind() != reflect.String {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func positiveAmount(fl validator.FieldLevel) bool {
	d, ok := parseDecimalField(fl)
	return ok && d.IsPositive() && domain.FitsAmountColumn(d)
}

func nonNegativeAmount(fl validator.FieldLevel) bool {
	d, ok := parseDecimalField(fl)
	return ok && !d.IsNegative() && domain.FitsAmountColumn(d)
}

func expenseCategory(fl validator.FieldLevel) bool {
	return domain.ExpenseCategory(fl.Field().String()).IsValid()
}
