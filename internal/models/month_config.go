package models

import (
	"errors"

	"github.com/ynam/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MonthConfig stores the To Be Budgeted pool for one month.
type MonthConfig struct {
	Timestamps
	Month types.Month `json:"month" gorm:"primaryKey"`
	TBB   types.Money `json:"tbb"` // The pool available to allocate in this month
}

// MonthlyTBB returns the TBB pool for a month. The second return value
// reports whether a value has been set for the month at all.
func MonthlyTBB(db *gorm.DB, month types.Month) (types.Money, bool, error) {
	var monthConfig MonthConfig
	err := db.Where("month = ?", month).First(&monthConfig).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return monthConfig.TBB, true, nil
}

// SetMonthlyTBB writes the TBB pool for a month, overwriting any existing
// value.
func SetMonthlyTBB(db *gorm.DB, month types.Month, amount types.Money) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"tbb", "updated_at"}),
	}).Create(&MonthConfig{
		Month: month,
		TBB:   amount,
	}).Error
}
