package models

import (
	"strings"

	"github.com/lovesh85/Personal-Finance-Visualizer/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the planned spending for one category in one month.
//
// Category and month form the primary key, so there can only
// ever be one budget per pair.
type Budget struct {
	Timestamps
	Category Category        `json:"category" gorm:"primaryKey" example:"Food"`
	Month    types.Month     `json:"month" gorm:"primaryKey" example:"2024-05"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:TEXT" example:"250"`
}

func (b Budget) Validate() error {
	if strings.TrimSpace(string(b.Category)) == "" {
		return ErrCategoryMissing
	}

	if b.Month.IsZero() {
		return ErrMonthMissing
	}

	if err := validateAmount(b.Amount); err != nil {
		return err
	}

	return nil
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = Category(strings.TrimSpace(string(b.Category)))
	return nil
}
