package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/httputil"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/store"
)

type ExportResponse struct {
	Version      string       `json:"version" example:"1.2.0"`                            // Version of the backend that created the export
	CreationTime time.Time    `json:"creationTime" example:"2024-05-12T17:59:23.143527Z"` // Time the export was created
	Data         store.Export `json:"data"`                                               // All transactions and budgets
}

func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsExport)
	r.GET("", co.GetExport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/export [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports all transactions and budgets
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	httpError
// @Router			/export [get]
func (co Controller) GetExport(c *gin.Context) {
	export, err := co.Store.Export(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ExportResponse{
		Version:      co.Version,
		CreationTime: co.now().UTC(),
		Data:         export,
	})
}
