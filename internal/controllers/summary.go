package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/aggregate"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/httputil"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/models"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/types"
	"github.com/shopspring/decimal"
)

// recentCount is the number of transactions in the recent list of the summary.
const recentCount = 5

// Summary contains all data shown on the dashboard.
type Summary struct {
	Month            types.Month               `json:"month" example:"2024-05" swaggertype:"string"` // Month the budget comparison is calculated for
	Total            decimal.Decimal           `json:"total" example:"1520.34" swaggertype:"string"` // Sum of all transactions
	CategoryTotals   []aggregate.CategoryTotal `json:"categoryTotals"`                               // Sum per category over all transactions
	MonthlyTotals    []aggregate.MonthlyTotal  `json:"monthlyTotals"`                                // Sum per month, oldest first
	Recent           []models.Transaction      `json:"recent"`                                       // The most recent transactions
	CurrentMonth     []aggregate.CategoryTotal `json:"currentMonth"`                                 // Sum per category for the current month
	BudgetComparison []aggregate.Comparison    `json:"budgetComparison"`                             // Budget and actual spending per category for the month
}

func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsSummary)
	r.GET("", co.GetSummary)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/summary [options]
func (co Controller) OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns totals, recent transactions and the budget comparison for a month
// @Tags			Summary
// @Produce		json
// @Success		200		{object}	Summary
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	query		string	false	"Month for the budget comparison in YYYY-MM format, defaults to the current month"
// @Router			/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	month, ok := co.queryMonth(c)
	if !ok {
		return
	}

	transactions, err := co.Store.ListTransactions(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	budgets, err := co.Store.ListBudgets(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, Summary{
		Month:            month,
		Total:            aggregate.Total(transactions),
		CategoryTotals:   aggregate.CategoryTotals(transactions),
		MonthlyTotals:    aggregate.MonthlyTotals(transactions),
		Recent:           aggregate.MostRecent(transactions, recentCount),
		CurrentMonth:     aggregate.CurrentMonthActuals(transactions, co.now()),
		BudgetComparison: aggregate.BudgetComparison(month, budgets, transactions),
	})
}

// queryMonth binds the month query parameter. If it is not set, the current
// month is returned. On errors, the response is written and ok is false.
func (co Controller) queryMonth(c *gin.Context) (month types.Month, ok bool) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		abort(c, err)
		return types.Month{}, false
	}

	if query.Month.IsZero() {
		return types.MonthOf(co.now()), true
	}

	return query.Month, true
}
