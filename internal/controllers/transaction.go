package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/aggregate"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/httputil"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/models"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTransactions)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PUT("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/transactions [options]
func (co Controller) OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get transactions
// @Description	Returns all transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{array}		models.Transaction
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			month		query		string	false	"Only transactions in this month, YYYY-MM"
// @Param			category	query		string	false	"Only transactions of this category"
// @Param			description	query		string	false	"Glob pattern for the description, e.g. *lunch*"
// @Router			/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, err)
		return
	}

	transactions, err := co.Store.ListTransactions(c.Request.Context())
	if err != nil {
		abort(c, err)
		return
	}

	if !filter.Month.IsZero() {
		transactions = aggregate.InMonth(transactions, filter.Month)
	}

	if filter.Category != "" {
		transactions = aggregate.ByCategory(transactions, models.Category(filter.Category))
	}

	if filter.Description != "" {
		transactions = aggregate.MatchDescription(transactions, filter.Description)
	}

	c.JSON(http.StatusOK, transactions)
}

// @Summary		Create transaction
// @Description	Creates a new transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	models.Transaction
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abort(c, err)
		return
	}

	transaction, err := co.Store.CreateTransaction(c.Request.Context(), editable.model())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	models.Transaction
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abort(c, err)
		return
	}

	transaction, err := co.Store.GetTransaction(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// @Summary		Update transaction
// @Description	Replaces amount, date, description and category of a transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	httpMessage
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		string				true	"ID formatted as string"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/transactions/{id} [put]
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abort(c, err)
		return
	}

	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abort(c, err)
		return
	}

	_, err := co.Store.UpdateTransaction(c.Request.Context(), uri.ID.UUID, editable.model())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, httpMessage{Message: "Transaction updated"})
}

// @Summary		Delete transaction
// @Description	Permanently deletes a transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	httpMessage
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abort(c, err)
		return
	}

	err := co.Store.DeleteTransaction(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, httpMessage{Message: "Transaction deleted"})
}
