package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/charts"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/models"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type httpMessage struct {
	Message string `json:"message" example:"Transaction updated"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, charts.ErrNoData) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// abort writes the error as response.
func abort(c *gin.Context, err error) {
	s := status(err)
	if s == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	c.JSON(s, httpError{
		Error: err.Error(),
	})
}

var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
