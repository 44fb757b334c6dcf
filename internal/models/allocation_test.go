package models_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/ynam/backend/internal/models"
	"github.com/ynam/backend/internal/types"
)

func (suite *TestSuiteStandard) TestSetAllocation() {
	month := types.NewMonth(2025, 11)

	suite.Require().NoError(models.SetAllocation(models.DB, month, "Groceries", 50000))

	amount, err := models.AllocationAmount(models.DB, month, "Groceries")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), types.Money(50000), amount)
}

func (suite *TestSuiteStandard) TestSetAllocationOverwrites() {
	month := types.NewMonth(2025, 11)

	suite.Require().NoError(models.SetAllocation(models.DB, month, "Groceries", 50000))
	suite.Require().NoError(models.SetAllocation(models.DB, month, "Groceries", 20000))

	amount, err := models.AllocationAmount(models.DB, month, "Groceries")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), types.Money(20000), amount)

	// The upsert must not create a second row
	var count int64
	suite.Require().NoError(models.DB.Model(&models.Allocation{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestSetAllocationNegative() {
	err := models.SetAllocation(models.DB, types.NewMonth(2025, 11), "Groceries", -1)
	assert.ErrorIs(suite.T(), err, models.ErrAllocationNegative)
}

func (suite *TestSuiteStandard) TestAllocationAmountMissing() {
	amount, err := models.AllocationAmount(models.DB, types.NewMonth(2025, 11), "Groceries")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), types.Money(0), amount)
}

func (suite *TestSuiteStandard) TestAllocations() {
	month := types.NewMonth(2025, 11)
	other := types.NewMonth(2025, 12)

	suite.Require().NoError(models.SetAllocation(models.DB, month, "Groceries", 50000))
	suite.Require().NoError(models.SetAllocation(models.DB, month, "Transport", 20000))
	suite.Require().NoError(models.SetAllocation(models.DB, other, "Groceries", 11111))

	allocations, err := models.Allocations(models.DB, month)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), map[types.CategoryName]types.Money{
		"Groceries": 50000,
		"Transport": 20000,
	}, allocations)
}

func (suite *TestSuiteStandard) TestAllocationsPerMonth() {
	// The same category can have different allocations in different months
	suite.Require().NoError(models.SetAllocation(models.DB, types.NewMonth(2025, 11), "Groceries", 50000))
	suite.Require().NoError(models.SetAllocation(models.DB, types.NewMonth(2025, 12), "Groceries", 60000))

	november, err := models.AllocationAmount(models.DB, types.NewMonth(2025, 11), "Groceries")
	suite.Require().NoError(err)
	december, err := models.AllocationAmount(models.DB, types.NewMonth(2025, 12), "Groceries")
	suite.Require().NoError(err)

	assert.Equal(suite.T(), types.Money(50000), november)
	assert.Equal(suite.T(), types.Money(60000), december)
}
