package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/ynam/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Allocation is the money earmarked for one category in one month.
//
// Rows are created on first write for a (category, month) pair and
// overwritten on every later mutation; the calculation core never deletes
// them.
type Allocation struct {
	Timestamps
	CategoryID uuid.UUID   `json:"categoryId" gorm:"primaryKey"`
	Category   Category    `json:"-"`
	Month      types.Month `json:"month" gorm:"primaryKey"`
	Amount     types.Money `json:"amount"`
}

var ErrAllocationNegative = errors.New("allocation amounts can not be negative")

func (a *Allocation) BeforeSave(_ *gorm.DB) error {
	if a.Amount < 0 {
		return ErrAllocationNegative
	}
	return nil
}

// Allocations returns the allocation map for a month, keyed by category
// name.
func Allocations(db *gorm.DB, month types.Month) (map[types.CategoryName]types.Money, error) {
	var allocations []Allocation
	err := db.
		Joins("Category").
		Where("allocations.month = ?", month).
		Find(&allocations).
		Error
	if err != nil {
		return nil, err
	}

	m := make(map[types.CategoryName]types.Money, len(allocations))
	for _, a := range allocations {
		m[a.Category.Name] = a.Amount
	}

	return m, nil
}

// AllocationAmount returns the amount allocated to a category in a month.
// A (category, month) pair without an allocation row has an allocation of
// zero.
func AllocationAmount(db *gorm.DB, month types.Month, name types.CategoryName) (types.Money, error) {
	var allocation Allocation
	err := db.
		Joins("Category").
		Where("allocations.month = ?", month).
		Where("Category.name = ?", name).
		First(&allocation).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return allocation.Amount, nil
}

// SetAllocation writes the allocation for a category in a month,
// overwriting any existing value. The category is created on first use.
func SetAllocation(db *gorm.DB, month types.Month, name types.CategoryName, amount types.Money) error {
	category, err := EnsureCategory(db, name)
	if err != nil {
		return err
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&Allocation{
		CategoryID: category.ID,
		Month:      month,
		Amount:     amount,
	}).Error
}
