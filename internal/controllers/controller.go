// Package controllers implements the HTTP handlers of the API.
package controllers

import (
	"time"

	"github.com/lovesh85/Personal-Finance-Visualizer/internal/charts"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/store"
)

// Controller holds everything the handlers need. It is passed by value,
// handlers must not modify it.
type Controller struct {
	Store   *store.Store
	Charts  charts.Renderer
	Version string

	// Now returns the current time. It decides the default month for
	// endpoints that work on a single month.
	Now func() time.Time
}

// New returns a Controller using the store s. Amounts in charts are
// prefixed with the currency symbol.
func New(s *store.Store, currencySymbol, version string) Controller {
	return Controller{
		Store:   s,
		Charts:  charts.New(currencySymbol),
		Version: version,
		Now:     time.Now,
	}
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}

	return co.Now()
}
