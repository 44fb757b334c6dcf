package models_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/ynam/backend/internal/models"
	"github.com/ynam/backend/internal/types"
)

func (suite *TestSuiteStandard) TestMonthlyTBBUnset() {
	tbb, ok, err := models.MonthlyTBB(models.DB, types.NewMonth(2025, 11))
	suite.Require().NoError(err)

	assert.False(suite.T(), ok)
	assert.Equal(suite.T(), types.Money(0), tbb)
}

func (suite *TestSuiteStandard) TestSetMonthlyTBB() {
	month := types.NewMonth(2025, 11)

	suite.Require().NoError(models.SetMonthlyTBB(models.DB, month, 120000))

	tbb, ok, err := models.MonthlyTBB(models.DB, month)
	suite.Require().NoError(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), types.Money(120000), tbb)
}

func (suite *TestSuiteStandard) TestSetMonthlyTBBOverwrites() {
	month := types.NewMonth(2025, 11)

	suite.Require().NoError(models.SetMonthlyTBB(models.DB, month, 120000))
	suite.Require().NoError(models.SetMonthlyTBB(models.DB, month, 90000))

	tbb, _, err := models.MonthlyTBB(models.DB, month)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), types.Money(90000), tbb)

	var count int64
	suite.Require().NoError(models.DB.Model(&models.MonthConfig{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestMonthlyTBBIndependentMonths() {
	suite.Require().NoError(models.SetMonthlyTBB(models.DB, types.NewMonth(2025, 11), 120000))
	suite.Require().NoError(models.SetMonthlyTBB(models.DB, types.NewMonth(2025, 12), 50000))

	november, _, err := models.MonthlyTBB(models.DB, types.NewMonth(2025, 11))
	suite.Require().NoError(err)
	december, _, err := models.MonthlyTBB(models.DB, types.NewMonth(2025, 12))
	suite.Require().NoError(err)

	assert.Equal(suite.T(), types.Money(120000), november)
	assert.Equal(suite.T(), types.Money(50000), december)
}
