package dto

import (
	"sync"

	"github.com/SscSPs/aba_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidations adds the custom tags used by request DTOs to gin's
// validator. It is safe to call more than once.
func RegisterValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("ulid", validateULID)
		_ = v.RegisterValidation("statement", validateStatement)
	})
}

func validateULID(fl validator.FieldLevel) bool {
	_, err := domain.ParseID(fl.Field().String())
	return err == nil
}

func validateStatement(fl validator.FieldLevel) bool {
	_, err := domain.ParseFinancialStatement(fl.Field().String())
	return err == nil
}
