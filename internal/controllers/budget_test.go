package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/lovesh85/Personal-Finance-Visualizer/internal/controllers"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/models"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/test"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsSet() {
	r := suite.request(http.MethodPost, "http://example.com/budgets", controllers.BudgetEditable{
		Category: "Food",
		Month:    types.NewMonth(2024, 5),
		Amount:   decimal.NewFromInt(250),
	})
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().JSONEq(`{ "message": "Budget set successfully" }`, r.Body.String())

	r = suite.request(http.MethodGet, "http://example.com/budgets", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var budgets []models.Budget
	test.DecodeResponse(suite.T(), r, &budgets)
	suite.Require().Len(budgets, 1)
	suite.Assert().Equal(models.Category("Food"), budgets[0].Category)
	suite.Assert().Equal("2024-05", budgets[0].Month.String())
	suite.assertDecimal("250", budgets[0].Amount)
}

func (suite *TestSuiteStandard) TestBudgetsSetReplaces() {
	suite.createTestBudget("Food", "100", types.NewMonth(2024, 5))
	suite.createTestBudget("Rent", "800", types.NewMonth(2024, 5))

	r := suite.request(http.MethodPost, "http://example.com/budgets", `{ "category": "Food", "month": "2024-05", "amount": 120.5 }`)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	budgets, err := suite.store.ListBudgets(context.Background())
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 2)

	for _, b := range budgets {
		if b.Category == "Food" {
			suite.assertDecimal("120.5", b.Amount)
		}
	}
}

func (suite *TestSuiteStandard) TestBudgetsListEmpty() {
	r := suite.request(http.MethodGet, "http://example.com/budgets", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().JSONEq(`[]`, r.Body.String())
}

func (suite *TestSuiteStandard) TestBudgetsSetFails() {
	tests := []struct {
		name string
		body string
	}{
		{"Empty body", ""},
		{"Category missing", `{ "month": "2024-05", "amount": 100 }`},
		{"Category unknown", `{ "category": "Yachts", "month": "2024-05", "amount": 100 }`},
		{"Month missing", `{ "category": "Food", "amount": 100 }`},
		{"Month invalid", `{ "category": "Food", "month": "May 2024", "amount": 100 }`},
		{"Amount missing", `{ "category": "Food", "month": "2024-05" }`},
		{"Amount zero", `{ "category": "Food", "month": "2024-05", "amount": 0 }`},
		{"Amount not a number", `{ "category": "Food", "month": "2024-05", "amount": "a lot" }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.controller, http.MethodPost, "http://example.com/budgets", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.NotEmpty(t, test.DecodeError(t, &recorder))
		})
	}

	budgets, err := suite.store.ListBudgets(context.Background())
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, 0)
}

func (suite *TestSuiteStandard) TestBudgetsDatabaseError() {
	suite.CloseDB()

	r := suite.request(http.MethodPost, "http://example.com/budgets", `{ "category": "Food", "month": "2024-05", "amount": 100 }`)
	test.AssertHTTPStatus(suite.T(), r, http.StatusInternalServerError)
}
