// Package validator adapts go-playground/validator to echo.
package validator

import (
	domainerrors "mallconsole/internal/domain/errors"
	"mallconsole/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator honoring the `validate` struct tags
func New() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks i and reports tag failures as a validation AppError
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	if invalid, ok := errors.AsType[validator.ValidationErrors](err); ok {
		return domainerrors.ErrValidationFailed.WithDetails(invalid.Error())
	}

	return errors.WithStack(err)
}
