package controllers_test

import (
	"net/http"

	"github.com/lovesh85/Personal-Finance-Visualizer/internal/test"
)

func (suite *TestSuiteStandard) TestCategoriesGet() {
	r := suite.request(http.MethodGet, "http://example.com/categories", nil)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().JSONEq(`["Food", "Rent", "Health"]`, r.Body.String())
}
