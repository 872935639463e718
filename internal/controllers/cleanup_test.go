package controllers_test

import (
	"context"
	"net/http"

	"github.com/lovesh85/Personal-Finance-Visualizer/internal/test"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/types"
)

func (suite *TestSuiteStandard) TestCleanup() {
	suite.createTestTransaction("Food", "10", types.NewDate(2024, 5, 1), "Lunch")
	suite.createTestBudget("Food", "100", types.NewMonth(2024, 5))

	r := suite.request(http.MethodDelete, "http://example.com/?confirm=yes-please-delete-everything", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)

	export, err := suite.store.Export(context.Background())
	suite.Require().Nil(err)
	suite.Assert().Len(export.Transactions, 0)
	suite.Assert().Len(export.Budgets, 0)
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	suite.createTestTransaction("Food", "10", types.NewDate(2024, 5, 1), "Lunch")

	for _, url := range []string{"http://example.com/", "http://example.com/?confirm=yes"} {
		r := suite.request(http.MethodDelete, url, nil)
		test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
		suite.Assert().Equal("the confirmation for the cleanup API call was incorrect", test.DecodeError(suite.T(), r))
	}

	transactions, err := suite.store.ListTransactions(context.Background())
	suite.Require().Nil(err)
	suite.Assert().Len(transactions, 1)
}

func (suite *TestSuiteStandard) TestCleanupDatabaseError() {
	suite.CloseDB()

	r := suite.request(http.MethodDelete, "http://example.com/?confirm=yes-please-delete-everything", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusInternalServerError)
}
