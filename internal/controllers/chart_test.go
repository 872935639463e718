package controllers_test

import (
	"bytes"
	"net/http"

	"github.com/lovesh85/Personal-Finance-Visualizer/internal/test"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/types"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func (suite *TestSuiteStandard) TestChartsNoData() {
	for _, path := range []string{"/charts/categories.png", "/charts/monthly.png", "/charts/budgets.png"} {
		r := suite.request(http.MethodGet, "http://example.com"+path, nil)
		test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)
		suite.Assert().Equal("there is no data to draw a chart from", test.DecodeError(suite.T(), r), path)
	}
}

func (suite *TestSuiteStandard) TestCharts() {
	suite.createTestTransaction("Food", "10", types.NewDate(2024, 5, 1), "Lunch")
	suite.createTestTransaction("Rent", "20", types.NewDate(2024, 4, 3), "Garage")
	suite.createTestBudget("Food", "100", types.NewMonth(2024, 5))

	for _, path := range []string{
		"/charts/categories.png",
		"/charts/categories.png?month=2024-04",
		"/charts/monthly.png",
		"/charts/budgets.png",
		"/charts/budgets.png?month=2024-04",
	} {
		r := suite.request(http.MethodGet, "http://example.com"+path, nil)
		test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
		suite.Assert().Equal("image/png", r.Header().Get("Content-Type"), path)
		suite.Assert().True(bytes.HasPrefix(r.Body.Bytes(), pngHeader), path)
	}
}

func (suite *TestSuiteStandard) TestChartsMonthFilter() {
	suite.createTestTransaction("Rent", "20", types.NewDate(2024, 4, 3), "Garage")

	r := suite.request(http.MethodGet, "http://example.com/charts/categories.png?month=2024-05", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)

	r = suite.request(http.MethodGet, "http://example.com/charts/budgets.png?month=2024-5-32", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
}
