package models

import (
	"strings"

	"github.com/lovesh85/Personal-Finance-Visualizer/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single dated expense.
type Transaction struct {
	DefaultModel
	Amount      decimal.Decimal `json:"amount" gorm:"type:TEXT" example:"14.03"` // Amount spent, always positive
	Date        types.Date      `json:"date" gorm:"index" example:"2024-05-12"`  // Calendar date of the transaction
	Description string          `json:"description" example:"Lunch with Mara"`   // Free text, may be empty
	Category    Category        `json:"category" gorm:"index" example:"Food"`    // One of the configured categories
}

// Validate checks the fields that are required for every transaction.
// Category membership is checked against a CategorySet by the caller.
func (t Transaction) Validate() error {
	if err := validateAmount(t.Amount); err != nil {
		return err
	}

	if t.Date.IsZero() {
		return ErrDateMissing
	}

	if strings.TrimSpace(string(t.Category)) == "" {
		return ErrCategoryMissing
	}

	return nil
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.Category = Category(strings.TrimSpace(string(t.Category)))
	return nil
}
