package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/httputil"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/models"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters.
type BudgetEditable struct {
	Category models.Category `json:"category" example:"Food"`                      // One of the configured categories
	Month    types.Month     `json:"month" example:"2024-05" swaggertype:"string"` // Year and month in YYYY-MM format
	Amount   decimal.Decimal `json:"amount" example:"250" swaggertype:"string"`    // Positive amount, as number or string
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Category: editable.Category,
		Month:    editable.Month,
		Amount:   editable.Amount,
	}
}

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsBudgets)
	r.GET("", co.GetBudgets)
	r.POST("", co.SetBudget)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/budgets [options]
func (co Controller) OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get budgets
// @Description	Returns all budgets, ordered by month and category
// @Tags			Budgets
// @Produce		json
// @Success		200	{array}		models.Budget
// @Failure		500	{object}	httpError
// @Router			/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	budgets, err := co.Store.ListBudgets(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// @Summary		Set budget
// @Description	Sets the budget for a category in a month. An existing budget for the same category and month is replaced.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	httpMessage
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/budgets [post]
func (co Controller) SetBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abort(c, err)
		return
	}

	_, err := co.Store.UpsertBudget(c.Request.Context(), editable.model())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, httpMessage{Message: "Budget set successfully"})
}
