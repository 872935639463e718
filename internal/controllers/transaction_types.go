package controllers

import (
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/models"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/types"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters.
type TransactionEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"14.03" swaggertype:"string"`    // Positive amount, as number or string
	Date        types.Date      `json:"date" example:"2024-05-12" swaggertype:"string"` // Date in YYYY-MM-DD or RFC3339 format
	Description string          `json:"description" example:"Lunch with Mara"`          // Optional description
	Category    models.Category `json:"category" example:"Food"`                        // One of the configured categories
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Amount:      editable.Amount,
		Date:        editable.Date,
		Description: editable.Description,
		Category:    editable.Category,
	}
}

// TransactionQueryFilter contains the filters for the transaction list.
type TransactionQueryFilter struct {
	Month       types.Month `form:"month"`       // Only transactions in this month, YYYY-MM
	Category    string      `form:"category"`    // Only transactions of this category
	Description string      `form:"description"` // Glob pattern the description must match
}
