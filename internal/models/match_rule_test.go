package models_test

import (
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ynam/backend/internal/models"
)

func (suite *TestSuiteStandard) TestMatchRules() {
	groceries, err := models.EnsureCategory(models.DB, "Groceries")
	suite.Require().NoError(err)
	transport, err := models.EnsureCategory(models.DB, "Transport")
	suite.Require().NoError(err)

	suite.Require().NoError(models.DB.Create(&models.MatchRule{Priority: 20, Match: "UBER*", CategoryID: transport.ID}).Error)
	suite.Require().NoError(models.DB.Create(&models.MatchRule{Priority: 10, Match: "TESCO*", CategoryID: groceries.ID}).Error)
	suite.Require().NoError(models.DB.Create(&models.MatchRule{Priority: 10, Match: "ALDI*", CategoryID: groceries.ID}).Error)

	rules, err := models.MatchRules(models.DB)
	suite.Require().NoError(err)

	// Ordered by priority, then pattern
	suite.Require().Len(rules, 3)
	assert.Equal(suite.T(), "ALDI*", rules[0].Match)
	assert.Equal(suite.T(), "TESCO*", rules[1].Match)
	assert.Equal(suite.T(), "UBER*", rules[2].Match)
}

func (suite *TestSuiteStandard) TestMatchRulePriority() {
	groceries, err := models.EnsureCategory(models.DB, "Groceries")
	suite.Require().NoError(err)
	catchAll, err := models.EnsureCategory(models.DB, "Misc")
	suite.Require().NoError(err)

	suite.Require().NoError(models.DB.Create(&models.MatchRule{Priority: 99, Match: "*", CategoryID: catchAll.ID}).Error)
	suite.Require().NoError(models.DB.Create(&models.MatchRule{Priority: 1, Match: "TESCO*", CategoryID: groceries.ID}).Error)

	transaction := models.Transaction{
		Date:        time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC),
		Description: "TESCO STORES 2041",
		Amount:      -1250,
	}
	suite.Require().NoError(models.CreateTransaction(models.DB, &transaction))

	// The lower priority number wins over the catch-all
	suite.Require().NotNil(transaction.CategoryID)
	assert.Equal(suite.T(), groceries.ID, *transaction.CategoryID)
}

func (suite *TestSuiteStandard) TestMatchRuleNoMatch() {
	groceries, err := models.EnsureCategory(models.DB, "Groceries")
	suite.Require().NoError(err)
	suite.Require().NoError(models.DB.Create(&models.MatchRule{Match: "TESCO*", CategoryID: groceries.ID}).Error)

	transaction := models.Transaction{
		Date:        time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC),
		Description: "SOMETHING ELSE",
		Amount:      -1250,
	}
	suite.Require().NoError(models.CreateTransaction(models.DB, &transaction))

	assert.Nil(suite.T(), transaction.CategoryID)
}
