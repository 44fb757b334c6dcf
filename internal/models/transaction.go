package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ynam/backend/internal/types"
	"gorm.io/gorm"
)

// Transaction is one bank transaction. Amounts are signed: negative for
// expenses, positive for income.
//
// Only reviewed, non-ignored transactions count towards spending
// breakdowns. A transaction arrives unreviewed, possibly with a category
// suggested by a match rule, and is confirmed or ignored later.
type Transaction struct {
	DefaultModel
	Date        time.Time   `json:"date"`
	Description string      `json:"description"`
	Amount      types.Money `json:"amount"`
	CategoryID  *uuid.UUID  `json:"categoryId"`
	Category    *Category   `json:"-"`
	Reviewed    bool        `json:"reviewed"`
	Ignored     bool        `json:"ignored"`
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	return nil
}

// CreateTransaction stores a new transaction. A transaction with the same
// date, description and amount as an existing one is considered a
// duplicate import and rejected with ErrTransactionExists.
//
// When no category is given, the match rules are consulted for a
// suggestion. A suggestion does not mark the transaction as reviewed.
func CreateTransaction(db *gorm.DB, t *Transaction) error {
	var count int64
	err := db.Model(&Transaction{}).
		Where("date = ? AND description = ? AND amount = ?", t.Date, strings.TrimSpace(t.Description), t.Amount).
		Count(&count).
		Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrTransactionExists
	}

	if t.CategoryID == nil {
		categoryID, err := matchCategoryID(db, t.Description)
		if err != nil {
			return err
		}
		t.CategoryID = categoryID
	}

	return db.Create(t).Error
}

// Transactions returns transactions, newest first. With unreviewedOnly
// set, only transactions that still need review are returned.
func Transactions(db *gorm.DB, unreviewedOnly bool) ([]Transaction, error) {
	query := db.Order("date DESC")
	if unreviewedOnly {
		query = query.Where("reviewed = ?", false)
	}

	var transactions []Transaction
	err := query.Find(&transactions).Error
	return transactions, err
}

// ReviewTransaction assigns a category to a transaction and marks it as
// reviewed. The category is created on first use.
func ReviewTransaction(db *gorm.DB, id uuid.UUID, name types.CategoryName) (Transaction, error) {
	var transaction Transaction

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&transaction, "id = ?", id).Error; err != nil {
			return err
		}

		category, err := EnsureCategory(tx, name)
		if err != nil {
			return err
		}

		transaction.CategoryID = &category.ID
		transaction.Reviewed = true
		transaction.Ignored = false

		return tx.Save(&transaction).Error
	})

	return transaction, err
}

// IgnoreTransaction marks a transaction as reviewed but excluded from all
// breakdowns and reports.
func IgnoreTransaction(db *gorm.DB, id uuid.UUID) (Transaction, error) {
	var transaction Transaction
	if err := db.First(&transaction, "id = ?", id).Error; err != nil {
		return transaction, err
	}

	transaction.Reviewed = true
	transaction.Ignored = true

	err := db.Save(&transaction).Error
	return transaction, err
}

// CategoryBreakdown returns the signed spending total per category for
// the half-open date range [since, until), from reviewed, non-ignored
// transactions only.
func CategoryBreakdown(db *gorm.DB, since, until time.Time) (map[types.CategoryName]types.Money, error) {
	var rows []struct {
		Name  types.CategoryName
		Total types.Money
	}

	err := db.Model(&Transaction{}).
		Select("categories.name AS name, SUM(transactions.amount) AS total").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.reviewed = ? AND transactions.ignored = ?", true, false).
		Where("transactions.date >= ? AND transactions.date < ?", since, until).
		Group("categories.name").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}

	breakdown := make(map[types.CategoryName]types.Money, len(rows))
	for _, row := range rows {
		breakdown[row.Name] = row.Total
	}

	return breakdown, nil
}
