// Package charts renders aggregated data as PNG images.
package charts

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/lovesh85/Personal-Finance-Visualizer/internal/aggregate"
	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("there is no data to draw a chart from")

const (
	barWidth   = 50
	barSpacing = 20
	minWidth   = 600
	height     = 500
)

var (
	budgetColor = drawing.ColorFromHex("8884d8")
	actualColor = drawing.ColorFromHex("82ca9d")
)

// Renderer draws charts with amounts in a fixed currency.
type Renderer struct {
	Symbol string
}

// New returns a Renderer that prefixes amounts with symbol.
func New(symbol string) Renderer {
	return Renderer{Symbol: symbol}
}

func (r Renderer) money(d decimal.Decimal) string {
	return r.Symbol + d.StringFixed(2)
}

func background() chart.Style {
	return chart.Style{
		Padding: chart.Box{
			Top:    40,
			Left:   20,
			Right:  20,
			Bottom: 20,
		},
		FillColor: chart.ColorWhite,
	}
}

// CategoryPie draws the share of each category.
func (r Renderer) CategoryPie(totals []aggregate.CategoryTotal) ([]byte, error) {
	if len(totals) == 0 {
		return nil, ErrNoData
	}

	values := make([]chart.Value, 0, len(totals))
	for _, t := range totals {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s", t.Category, r.money(t.Total)),
			Value: t.Total.InexactFloat64(),
			Style: chart.Style{
				FontSize:  10,
				FontColor: chart.ColorBlack,
			},
		})
	}

	pie := chart.PieChart{
		Title:      "Expenses by category",
		Width:      height,
		Height:     height,
		Values:     values,
		Background: background(),
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render category pie chart: %w", err)
	}

	return buffer.Bytes(), nil
}

// MonthlyBar draws one bar per month.
func (r Renderer) MonthlyBar(totals []aggregate.MonthlyTotal) ([]byte, error) {
	if len(totals) == 0 {
		return nil, ErrNoData
	}

	bars := make([]chart.Value, 0, len(totals))
	for _, t := range totals {
		bars = append(bars, chart.Value{
			Label: t.Label,
			Value: t.Total.InexactFloat64(),
			Style: chart.Style{
				StrokeColor: budgetColor,
				FillColor:   budgetColor,
			},
		})
	}

	return r.renderBars("Monthly expenses", bars)
}

// BudgetComparisonBar draws a budget bar next to an actual bar for each category.
func (r Renderer) BudgetComparisonBar(rows []aggregate.Comparison) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	bars := make([]chart.Value, 0, 2*len(rows))
	for _, row := range rows {
		bars = append(bars,
			chart.Value{
				Label: fmt.Sprintf("%s budget", row.Category),
				Value: row.Budget.InexactFloat64(),
				Style: chart.Style{StrokeColor: budgetColor, FillColor: budgetColor},
			},
			chart.Value{
				Label: fmt.Sprintf("%s actual", row.Category),
				Value: row.Actual.InexactFloat64(),
				Style: chart.Style{StrokeColor: actualColor, FillColor: actualColor},
			},
		)
	}

	return r.renderBars("Budget vs. actual", bars)
}

func (r Renderer) renderBars(title string, bars []chart.Value) ([]byte, error) {
	// go-chart refuses to draw a value range of zero, so the axis
	// always starts at zero and ends above the highest bar
	top := 0.0
	for _, b := range bars {
		if b.Value > top {
			top = b.Value
		}
	}
	if top == 0 {
		top = 1
	}

	width := len(bars)*(barWidth+barSpacing) + 150
	if width < minWidth {
		width = minWidth
	}

	graph := chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: background(),
		XAxis: chart.Style{
			FontSize:  8,
			FontColor: chart.ColorBlack,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.1},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return r.money(decimal.NewFromFloat(f))
				}
				return ""
			},
			Style: chart.Style{
				FontSize:  10,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render bar chart: %w", err)
	}

	return buffer.Bytes(), nil
}
