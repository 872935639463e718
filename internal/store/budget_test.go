package store_test

import (
	"time"

	"github.com/lovesh85/Personal-Finance-Visualizer/internal/models"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) upsertBudget(category string, year int, month time.Month, amount string) models.Budget {
	budget, err := suite.store.UpsertBudget(suite.ctx, models.Budget{
		Category: models.Category(category),
		Month:    types.NewMonth(year, month),
		Amount:   decimal.RequireFromString(amount),
	})
	suite.Require().Nil(err, "Budget could not be saved")

	return budget
}

func (suite *TestSuiteStandard) TestUpsertBudgetReplacesAmount() {
	suite.upsertBudget("Food", 2024, 5, "100")
	suite.upsertBudget("Rent", 2024, 5, "900")

	budgets, err := suite.store.ListBudgets(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 2)

	updated := suite.upsertBudget("Food", 2024, 5, "150.50")
	suite.Assert().True(decimal.RequireFromString("150.50").Equal(updated.Amount))

	budgets, err = suite.store.ListBudgets(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 2, "Upserting an existing pair must not create a new budget")

	for _, b := range budgets {
		if b.Category == "Food" {
			suite.Assert().True(decimal.RequireFromString("150.5").Equal(b.Amount), "amount is %s", b.Amount)
		}
	}
}

func (suite *TestSuiteStandard) TestUpsertBudgetKeepsCreatedAt() {
	first := suite.upsertBudget("Food", 2024, 5, "100")
	second := suite.upsertBudget("Food", 2024, 5, "200")

	suite.Assert().True(first.CreatedAt.Equal(second.CreatedAt), "%s != %s", first.CreatedAt, second.CreatedAt)
	suite.Assert().False(second.UpdatedAt.Before(first.UpdatedAt))
}

func (suite *TestSuiteStandard) TestUpsertBudgetNewMonthInserts() {
	suite.upsertBudget("Food", 2024, 5, "100")
	suite.upsertBudget("Food", 2024, 6, "100")

	budgets, err := suite.store.ListBudgets(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 2)

	// Ordered by month
	suite.Assert().Equal("2024-05", budgets[0].Month.String())
	suite.Assert().Equal("2024-06", budgets[1].Month.String())
}

func (suite *TestSuiteStandard) TestUpsertBudgetValidation() {
	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{"No category", models.Budget{Month: types.NewMonth(2024, 1), Amount: decimal.NewFromInt(1)}, models.ErrCategoryMissing},
		{"Unknown category", models.Budget{Category: "Travel", Month: types.NewMonth(2024, 1), Amount: decimal.NewFromInt(1)}, models.ErrCategoryUnknown},
		{"No month", models.Budget{Category: "Food", Amount: decimal.NewFromInt(1)}, models.ErrMonthMissing},
		{"No amount", models.Budget{Category: "Food", Month: types.NewMonth(2024, 1)}, models.ErrAmountNotPositive},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.store.UpsertBudget(suite.ctx, tt.budget)
			suite.Assert().ErrorIs(err, tt.err)
		})
	}

	budgets, err := suite.store.ListBudgets(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, 0)
}

func (suite *TestSuiteStandard) TestUpsertBudgetAmountIsExact() {
	budget := suite.upsertBudget("Food", 2024, 5, "99999999999.99999999")
	suite.Assert().True(decimal.RequireFromString("99999999999.99999999").Equal(budget.Amount), "amount is %s", budget.Amount)

	_, err := suite.store.UpsertBudget(suite.ctx, models.Budget{
		Category: "Food",
		Month:    types.NewMonth(2024, 5),
		Amount:   decimal.RequireFromString("1000000000000"),
	})
	suite.Assert().ErrorIs(err, models.ErrAmountPrecision)
}
