package v1_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/ynam/backend/internal/budget"
	"github.com/ynam/backend/internal/models"
	"github.com/ynam/backend/internal/test"
	"github.com/ynam/backend/internal/types"
)

func (suite *TestSuiteStandard) TestGetMonthEmpty() {
	recorder := suite.Request("GET", "/v1/months?month=2025-11", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var status budget.Status
	test.DecodeResponse(suite.T(), &recorder, &status)

	assert.Equal(suite.T(), types.Money(0), status.TBB)
	assert.Empty(suite.T(), status.Categories)
}

func (suite *TestSuiteStandard) TestGetMonthRequiresMonth() {
	recorder := suite.Request("GET", "/v1/months", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestGetMonthInvalidMonth() {
	recorder := suite.Request("GET", "/v1/months?month=November", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestSetMonthTBB() {
	recorder := suite.Request("POST", "/v1/months/tbb", map[string]any{
		"month":  "2025-11",
		"amount": 120000,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	tbb, ok, err := models.MonthlyTBB(models.DB, types.NewMonth(2025, 11))
	suite.Require().NoError(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), types.Money(120000), tbb)
}

func (suite *TestSuiteStandard) TestSetMonthTBBEmptyBody() {
	recorder := suite.Request("POST", "/v1/months/tbb", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestSetMonthTBBMissingAmount() {
	recorder := suite.Request("POST", "/v1/months/tbb", map[string]any{"month": "2025-11"})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestGetMonthStatus() {
	suite.Require().NoError(models.SetMonthlyTBB(models.DB, types.NewMonth(2025, 11), 100000))
	suite.Require().NoError(models.SetAllocation(models.DB, types.NewMonth(2025, 11), "Groceries", 50000))

	recorder := suite.Request("GET", "/v1/months?month=2025-11", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var status budget.Status
	test.DecodeResponse(suite.T(), &recorder, &status)

	assert.Equal(suite.T(), types.Money(100000), status.TBB)
	assert.Equal(suite.T(), types.Money(50000), status.TotalAllocated)
	assert.Equal(suite.T(), types.Money(50000), status.RemainingTBB)
}

func (suite *TestSuiteStandard) TestRolloverMonth() {
	suite.Require().NoError(models.SetMonthlyTBB(models.DB, types.NewMonth(2025, 11), 5000))
	suite.Require().NoError(models.SetAllocation(models.DB, types.NewMonth(2025, 11), "Food", 20000))

	recorder := suite.Request("POST", "/v1/months/rollover", map[string]any{"month": "2025-11"})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var summary budget.RolloverSummary
	test.DecodeResponse(suite.T(), &recorder, &summary)

	assert.Equal(suite.T(), types.Money(25000), summary.NewTBB)
}

func (suite *TestSuiteStandard) TestRolloverMonthWithoutAllocations() {
	suite.Require().NoError(models.SetMonthlyTBB(models.DB, types.NewMonth(2025, 11), 5000))

	recorder := suite.Request("POST", "/v1/months/rollover", map[string]any{"month": "2025-11"})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestRolloverMonthWithoutTBB() {
	suite.Require().NoError(models.SetAllocation(models.DB, types.NewMonth(2025, 11), "Food", 20000))

	recorder := suite.Request("POST", "/v1/months/rollover", map[string]any{"month": "2025-11"})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestMonthOptions() {
	for _, path := range []string{"/v1/months", "/v1/months/tbb", "/v1/months/rollover"} {
		recorder := suite.Request("OPTIONS", path, nil)
		test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	}
}
