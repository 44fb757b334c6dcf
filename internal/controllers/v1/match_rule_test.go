package v1_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/ynam/backend/internal/models"
	"github.com/ynam/backend/internal/test"
)

func (suite *TestSuiteStandard) TestCreateMatchRule() {
	_, err := models.EnsureCategory(models.DB, "Groceries")
	suite.Require().NoError(err)

	recorder := suite.Request("POST", "/v1/match-rules", map[string]any{
		"priority": 10,
		"match":    "TESCO*",
		"category": "Groceries",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var rule models.MatchRule
	test.DecodeResponse(suite.T(), &recorder, &rule)

	assert.Equal(suite.T(), "TESCO*", rule.Match)
	assert.Equal(suite.T(), uint(10), rule.Priority)
}

func (suite *TestSuiteStandard) TestCreateMatchRuleUnknownCategory() {
	recorder := suite.Request("POST", "/v1/match-rules", map[string]any{
		"match":    "TESCO*",
		"category": "DoesNotExist",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestCreateMatchRuleMissingMatch() {
	recorder := suite.Request("POST", "/v1/match-rules", map[string]any{"category": "Groceries"})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestGetMatchRules() {
	groceries, err := models.EnsureCategory(models.DB, "Groceries")
	suite.Require().NoError(err)

	suite.Require().NoError(models.DB.Create(&models.MatchRule{Priority: 20, Match: "ALDI*", CategoryID: groceries.ID}).Error)
	suite.Require().NoError(models.DB.Create(&models.MatchRule{Priority: 10, Match: "TESCO*", CategoryID: groceries.ID}).Error)

	recorder := suite.Request("GET", "/v1/match-rules", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var rules []models.MatchRule
	test.DecodeResponse(suite.T(), &recorder, &rules)

	suite.Require().Len(rules, 2)
	assert.Equal(suite.T(), "TESCO*", rules[0].Match)
	assert.Equal(suite.T(), "ALDI*", rules[1].Match)
}
