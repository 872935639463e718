package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/httputil"
)

func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsCategories)
	r.GET("", co.GetCategories)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/categories [options]
func (co Controller) OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the categories transactions and budgets can use
// @Tags			Categories
// @Produce		json
// @Success		200	{array}	string
// @Router			/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, co.Store.Categories())
}
