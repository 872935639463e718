package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrValidation       = errors.New("invalid input")
)

// Field errors. All of them wrap ErrValidation.
var (
	ErrAmountNotPositive = fmt.Errorf("%w: amount must be larger than zero", ErrValidation)
	ErrAmountPrecision   = fmt.Errorf("%w: amount must have at most 12 digits before and 8 digits after the decimal point", ErrValidation)
	ErrDateMissing       = fmt.Errorf("%w: date is required", ErrValidation)
	ErrCategoryMissing   = fmt.Errorf("%w: category is required", ErrValidation)
	ErrCategoryUnknown   = fmt.Errorf("%w: category is not one of the configured categories", ErrValidation)
	ErrMonthMissing      = fmt.Errorf("%w: month is required", ErrValidation)
)
