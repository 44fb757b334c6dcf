package models_test

import (
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ynam/backend/internal/models"
	"github.com/ynam/backend/internal/types"
)

func (suite *TestSuiteStandard) TestCreateTransaction() {
	transaction := models.Transaction{
		Date:        time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC),
		Description: "TESCO STORES 2041",
		Amount:      -1250,
	}

	suite.Require().NoError(models.CreateTransaction(models.DB, &transaction))
	assert.NotZero(suite.T(), transaction.ID)
	assert.False(suite.T(), transaction.Reviewed)
	assert.Nil(suite.T(), transaction.CategoryID)
}

func (suite *TestSuiteStandard) TestCreateTransactionDuplicate() {
	transaction := models.Transaction{
		Date:        time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC),
		Description: "TESCO STORES 2041",
		Amount:      -1250,
	}
	suite.Require().NoError(models.CreateTransaction(models.DB, &transaction))

	duplicate := models.Transaction{
		Date:        transaction.Date,
		Description: transaction.Description,
		Amount:      transaction.Amount,
	}
	err := models.CreateTransaction(models.DB, &duplicate)
	assert.ErrorIs(suite.T(), err, models.ErrTransactionExists)

	// A different amount on the same day is not a duplicate
	other := models.Transaction{
		Date:        transaction.Date,
		Description: transaction.Description,
		Amount:      -9999,
	}
	assert.NoError(suite.T(), models.CreateTransaction(models.DB, &other))
}

func (suite *TestSuiteStandard) TestCreateTransactionSuggestsCategory() {
	category, err := models.EnsureCategory(models.DB, "Groceries")
	suite.Require().NoError(err)
	suite.Require().NoError(models.DB.Create(&models.MatchRule{
		Match:      "TESCO*",
		CategoryID: category.ID,
	}).Error)

	transaction := models.Transaction{
		Date:        time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC),
		Description: "TESCO STORES 2041",
		Amount:      -1250,
	}
	suite.Require().NoError(models.CreateTransaction(models.DB, &transaction))

	suite.Require().NotNil(transaction.CategoryID)
	assert.Equal(suite.T(), category.ID, *transaction.CategoryID)
	// A suggestion is not a review
	assert.False(suite.T(), transaction.Reviewed)
}

func (suite *TestSuiteStandard) TestTransactions() {
	older := models.Transaction{Date: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), Description: "first", Amount: -100}
	newer := models.Transaction{Date: time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC), Description: "second", Amount: -200}
	suite.Require().NoError(models.CreateTransaction(models.DB, &older))
	suite.Require().NoError(models.CreateTransaction(models.DB, &newer))

	transactions, err := models.Transactions(models.DB, false)
	suite.Require().NoError(err)

	suite.Require().Len(transactions, 2)
	assert.Equal(suite.T(), "second", transactions[0].Description)
	assert.Equal(suite.T(), "first", transactions[1].Description)
}

func (suite *TestSuiteStandard) TestTransactionsUnreviewedOnly() {
	unreviewed := models.Transaction{Date: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), Description: "needs review", Amount: -100}
	suite.Require().NoError(models.CreateTransaction(models.DB, &unreviewed))
	suite.createTestTransaction(time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC), "Groceries", -200)

	transactions, err := models.Transactions(models.DB, true)
	suite.Require().NoError(err)

	suite.Require().Len(transactions, 1)
	assert.Equal(suite.T(), "needs review", transactions[0].Description)
}

func (suite *TestSuiteStandard) TestReviewTransaction() {
	transaction := models.Transaction{Date: time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC), Description: "TESCO STORES 2041", Amount: -1250}
	suite.Require().NoError(models.CreateTransaction(models.DB, &transaction))

	reviewed, err := models.ReviewTransaction(models.DB, transaction.ID, "Groceries")
	suite.Require().NoError(err)

	assert.True(suite.T(), reviewed.Reviewed)
	assert.False(suite.T(), reviewed.Ignored)
	suite.Require().NotNil(reviewed.CategoryID)

	// The category came into existence through the review
	category, err := models.CategoryNamed(models.DB, "Groceries")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), category.ID, *reviewed.CategoryID)
}

func (suite *TestSuiteStandard) TestIgnoreTransaction() {
	transaction := models.Transaction{Date: time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC), Description: "TRANSFER TO SAVINGS", Amount: -50000}
	suite.Require().NoError(models.CreateTransaction(models.DB, &transaction))

	ignored, err := models.IgnoreTransaction(models.DB, transaction.ID)
	suite.Require().NoError(err)

	assert.True(suite.T(), ignored.Reviewed)
	assert.True(suite.T(), ignored.Ignored)
}

func (suite *TestSuiteStandard) TestCategoryBreakdown() {
	suite.createTestTransaction(time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), "Groceries", -3000)
	suite.createTestTransaction(time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC), "Groceries", -4500)
	suite.createTestTransaction(time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC), "Salary", 250000)

	// Outside the range
	suite.createTestTransaction(time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC), "Groceries", -99999)
	suite.createTestTransaction(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), "Groceries", -99999)

	since, until := types.NewMonth(2025, 11).Bounds()
	breakdown, err := models.CategoryBreakdown(models.DB, since, until)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), map[types.CategoryName]types.Money{
		"Groceries": -7500,
		"Salary":    250000,
	}, breakdown)
}

func (suite *TestSuiteStandard) TestCategoryBreakdownSkipsUnreviewedAndIgnored() {
	unreviewed := models.Transaction{Date: time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC), Description: "pending", Amount: -1000}
	suite.Require().NoError(models.CreateTransaction(models.DB, &unreviewed))

	ignored := suite.createTestTransaction(time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC), "Groceries", -2000)
	_, err := models.IgnoreTransaction(models.DB, ignored.ID)
	suite.Require().NoError(err)

	suite.createTestTransaction(time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC), "Groceries", -500)

	since, until := types.NewMonth(2025, 11).Bounds()
	breakdown, err := models.CategoryBreakdown(models.DB, since, until)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), map[types.CategoryName]types.Money{"Groceries": -500}, breakdown)
}
