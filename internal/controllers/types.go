package controllers

import (
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/types"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/uuid"
)

type URIID struct {
	ID uuid.UUID `uri:"id" format:"UUID"` // ID of the resource
}

type QueryMonth struct {
	Month types.Month `form:"month" example:"2022-07"` // Year and month in YYYY-MM format
}
