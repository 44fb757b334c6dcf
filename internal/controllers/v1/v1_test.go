package v1_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/ynam/backend/internal/test"
)

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := suite.Request("GET", "/v1", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response test.APIResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Contains(suite.T(), response.Links, "months")
	assert.Contains(suite.T(), response.Links, "allocations")
	assert.Contains(suite.T(), response.Links, "categories")
	assert.Contains(suite.T(), response.Links, "matchRules")
	assert.Contains(suite.T(), response.Links, "transactions")
	assert.Contains(suite.T(), response.Links, "reports")
}

func (suite *TestSuiteStandard) TestOptionsV1() {
	recorder := suite.Request("OPTIONS", "/v1", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}
