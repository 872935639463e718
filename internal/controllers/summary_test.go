package controllers_test

import (
	"net/http"

	"github.com/lovesh85/Personal-Finance-Visualizer/internal/controllers"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/models"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/test"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/types"
)

func (suite *TestSuiteStandard) setupSummaryData() {
	suite.createTestTransaction("Food", "10", types.NewDate(2024, 5, 1), "Lunch")
	suite.createTestTransaction("Food", "5", types.NewDate(2024, 5, 20), "Late lunch")
	suite.createTestTransaction("Rent", "20", types.NewDate(2024, 4, 3), "Garage")
	suite.createTestBudget("Food", "100", types.NewMonth(2024, 5))
}

func (suite *TestSuiteStandard) TestSummaryCurrentMonth() {
	suite.setupSummaryData()

	r := suite.request(http.MethodGet, "http://example.com/summary", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var summary controllers.Summary
	test.DecodeResponse(suite.T(), r, &summary)

	suite.Assert().Equal("2024-05", summary.Month.String())
	suite.assertDecimal("35", summary.Total)

	suite.Require().Len(summary.CategoryTotals, 2)
	suite.Assert().Equal(models.Category("Food"), summary.CategoryTotals[0].Category)
	suite.assertDecimal("15", summary.CategoryTotals[0].Total)
	suite.Assert().Equal(models.Category("Rent"), summary.CategoryTotals[1].Category)
	suite.assertDecimal("20", summary.CategoryTotals[1].Total)

	suite.Require().Len(summary.MonthlyTotals, 2)
	suite.Assert().Equal("2024-04", summary.MonthlyTotals[0].Month.String())
	suite.Assert().Equal("Apr 2024", summary.MonthlyTotals[0].Label)
	suite.assertDecimal("15", summary.MonthlyTotals[1].Total)

	suite.Require().Len(summary.Recent, 3)
	suite.Assert().Equal("Late lunch", summary.Recent[0].Description)

	suite.Require().Len(summary.CurrentMonth, 1)
	suite.assertDecimal("15", summary.CurrentMonth[0].Total)

	suite.Require().Len(summary.BudgetComparison, 1)
	suite.Assert().Equal(models.Category("Food"), summary.BudgetComparison[0].Category)
	suite.assertDecimal("100", summary.BudgetComparison[0].Budget)
	suite.assertDecimal("15", summary.BudgetComparison[0].Actual)
}

func (suite *TestSuiteStandard) TestSummaryMonth() {
	suite.setupSummaryData()

	r := suite.request(http.MethodGet, "http://example.com/summary?month=2024-04", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var summary controllers.Summary
	test.DecodeResponse(suite.T(), r, &summary)

	suite.Assert().Equal("2024-04", summary.Month.String())

	// The current month does not depend on the query
	suite.Require().Len(summary.CurrentMonth, 1)
	suite.Assert().Equal(models.Category("Food"), summary.CurrentMonth[0].Category)

	suite.Require().Len(summary.BudgetComparison, 1)
	suite.Assert().Equal(models.Category("Rent"), summary.BudgetComparison[0].Category)
	suite.assertDecimal("0", summary.BudgetComparison[0].Budget)
	suite.assertDecimal("20", summary.BudgetComparison[0].Actual)
}

func (suite *TestSuiteStandard) TestSummaryEmpty() {
	r := suite.request(http.MethodGet, "http://example.com/summary", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var summary controllers.Summary
	test.DecodeResponse(suite.T(), r, &summary)
	suite.assertDecimal("0", summary.Total)
	suite.Assert().Len(summary.Recent, 0)
	suite.Assert().Len(summary.BudgetComparison, 0)
}

func (suite *TestSuiteStandard) TestSummaryInvalidMonth() {
	r := suite.request(http.MethodGet, "http://example.com/summary?month=2024-13", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
}
