// Package aggregate turns lists of transactions and budgets into the derived
// views shown on the dashboard. All functions are pure and never modify
// their input.
package aggregate

import (
	"time"

	"github.com/lovesh85/Personal-Finance-Visualizer/internal/models"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category models.Category `json:"category" example:"Food"`
	Total    decimal.Decimal `json:"total" example:"15.00"`
}

// MonthlyTotal is the summed amount of one calendar month.
type MonthlyTotal struct {
	Month types.Month     `json:"month" example:"2024-01"`
	Label string          `json:"label" example:"Jan 2024"`
	Total decimal.Decimal `json:"total" example:"148.20"`
}

// Comparison is the budgeted and actual amount of one category in a month.
type Comparison struct {
	Category models.Category `json:"category" example:"Food"`
	Budget   decimal.Decimal `json:"budget" example:"100"`
	Actual   decimal.Decimal `json:"actual" example:"40"`
}

// Total sums all transaction amounts.
func Total(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Amount)
	}

	return total
}

// CategoryTotals groups the transactions by category and sums each group.
// Categories without transactions are not part of the result.
// The result is ordered by category name.
func CategoryTotals(transactions []models.Transaction) []CategoryTotal {
	sums := categorySums(transactions)

	categories := maps.Keys(sums)
	slices.Sort(categories)

	totals := make([]CategoryTotal, 0, len(categories))
	for _, c := range categories {
		totals = append(totals, CategoryTotal{Category: c, Total: sums[c]})
	}

	return totals
}

// MonthlyTotals groups the transactions by the calendar month of their date
// and sums each group. The result is ordered chronologically.
func MonthlyTotals(transactions []models.Transaction) []MonthlyTotal {
	sums := make(map[string]decimal.Decimal)
	months := make(map[string]types.Month)

	for _, t := range transactions {
		m := t.Date.Month()
		key := m.String()

		months[key] = m
		sums[key] = sums[key].Add(t.Amount)
	}

	keys := maps.Keys(sums)
	slices.Sort(keys)

	totals := make([]MonthlyTotal, 0, len(keys))
	for _, k := range keys {
		totals = append(totals, MonthlyTotal{
			Month: months[k],
			Label: months[k].Label(),
			Total: sums[k],
		})
	}

	return totals
}

// InMonth returns the transactions with a date in the month.
func InMonth(transactions []models.Transaction, month types.Month) []models.Transaction {
	filtered := make([]models.Transaction, 0)
	for _, t := range transactions {
		if t.Date.Month().Equal(month) {
			filtered = append(filtered, t)
		}
	}

	return filtered
}

// CurrentMonthActuals returns the category totals of all transactions in the
// calendar month of now, evaluated in UTC.
func CurrentMonthActuals(transactions []models.Transaction, now time.Time) []CategoryTotal {
	return CategoryTotals(InMonth(transactions, types.MonthOf(now)))
}

// BudgetComparison compares the budgets of month with the actual spending in
// that month. There is one row for every category that has a budget or
// transactions in the month. A missing side is zero.
// The result is ordered by category name.
func BudgetComparison(month types.Month, budgets []models.Budget, transactions []models.Transaction) []Comparison {
	rows := make(map[models.Category]*Comparison)
	row := func(c models.Category) *Comparison {
		if _, ok := rows[c]; !ok {
			rows[c] = &Comparison{Category: c, Budget: decimal.Zero, Actual: decimal.Zero}
		}
		return rows[c]
	}

	for _, b := range budgets {
		if !b.Month.Equal(month) {
			continue
		}
		r := row(b.Category)
		r.Budget = r.Budget.Add(b.Amount)
	}

	for c, sum := range categorySums(InMonth(transactions, month)) {
		row(c).Actual = sum
	}

	categories := maps.Keys(rows)
	slices.Sort(categories)

	result := make([]Comparison, 0, len(categories))
	for _, c := range categories {
		result = append(result, *rows[c])
	}

	return result
}

// MostRecent returns the first n transactions. For a list as returned by the
// store, these are the n newest ones.
func MostRecent(transactions []models.Transaction, n int) []models.Transaction {
	if n < 0 {
		n = 0
	}

	if len(transactions) < n {
		n = len(transactions)
	}

	return append(make([]models.Transaction, 0, n), transactions[:n]...)
}

// ByCategory returns the transactions of one category.
func ByCategory(transactions []models.Transaction, category models.Category) []models.Transaction {
	filtered := make([]models.Transaction, 0)
	for _, t := range transactions {
		if t.Category == category {
			filtered = append(filtered, t)
		}
	}

	return filtered
}

// MatchDescription returns the transactions whose description matches the
// glob pattern. "*" matches any sequence of characters.
func MatchDescription(transactions []models.Transaction, pattern string) []models.Transaction {
	filtered := make([]models.Transaction, 0)
	for _, t := range transactions {
		if glob.Glob(pattern, t.Description) {
			filtered = append(filtered, t)
		}
	}

	return filtered
}

func categorySums(transactions []models.Transaction) map[models.Category]decimal.Decimal {
	sums := make(map[models.Category]decimal.Decimal)
	for _, t := range transactions {
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	return sums
}
