package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/aggregate"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/charts"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/httputil"
	"github.com/rs/zerolog/log"
)

func (co Controller) RegisterChartRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/categories.png", co.OptionsChart)
	r.GET("/categories.png", co.GetCategoryChart)

	r.OPTIONS("/monthly.png", co.OptionsChart)
	r.GET("/monthly.png", co.GetMonthlyChart)

	r.OPTIONS("/budgets.png", co.OptionsChart)
	r.GET("/budgets.png", co.GetBudgetChart)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Charts
// @Success		204
// @Router			/charts/categories.png [options]
// @Router			/charts/monthly.png [options]
// @Router			/charts/budgets.png [options]
func (co Controller) OptionsChart(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Category chart
// @Description	Renders a pie chart of the spending per category
// @Tags			Charts
// @Produce		png
// @Success		200
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	query		string	false	"Only use transactions in this month, YYYY-MM"
// @Router			/charts/categories.png [get]
func (co Controller) GetCategoryChart(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		abort(c, err)
		return
	}

	transactions, err := co.Store.ListTransactions(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	if !query.Month.IsZero() {
		transactions = aggregate.InMonth(transactions, query.Month)
	}

	png(c)(co.Charts.CategoryPie(aggregate.CategoryTotals(transactions)))
}

// @Summary		Monthly chart
// @Description	Renders a bar chart of the spending per month
// @Tags			Charts
// @Produce		png
// @Success		200
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/charts/monthly.png [get]
func (co Controller) GetMonthlyChart(c *gin.Context) {
	transactions, err := co.Store.ListTransactions(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	png(c)(co.Charts.MonthlyBar(aggregate.MonthlyTotals(transactions)))
}

// @Summary		Budget chart
// @Description	Renders a bar chart comparing budget and actual spending per category
// @Tags			Charts
// @Produce		png
// @Success		200
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	query		string	false	"Month in YYYY-MM format, defaults to the current month"
// @Router			/charts/budgets.png [get]
func (co Controller) GetBudgetChart(c *gin.Context) {
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

	png(c)(co.Charts.BudgetComparisonBar(aggregate.BudgetComparison(month, budgets, transactions)))
}

// png returns a function that writes the result of a chart rendering.
func png(c *gin.Context) func([]byte, error) {
	return func(b []byte, err error) {
		if errors.Is(err, charts.ErrNoData) {
			abort(c, err)
			return
		}

		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			c.JSON(http.StatusInternalServerError, httpError{
				Error: "the chart could not be rendered",
			})
			return
		}

		c.Data(http.StatusOK, "image/png", b)
	}
}
