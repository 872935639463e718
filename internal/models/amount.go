package models

import "github.com/shopspring/decimal"

// Amounts are stored as text so that SQLite does not convert them to
// floating point. The limits match a DECIMAL(20,8) column.
const amountPlaces = 8

var amountLimit = decimal.New(1, 12)

// validateAmount checks that an amount is positive and fits 12 integer
// and 8 fraction digits.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if amount.GreaterThanOrEqual(amountLimit) || !amount.Equal(amount.Truncate(amountPlaces)) {
		return ErrAmountPrecision
	}

	return nil
}
