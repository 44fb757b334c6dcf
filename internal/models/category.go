package models

import (
	"errors"
	"strings"

	"github.com/ynam/backend/internal/types"
	"gorm.io/gorm"
)

// Category is a named spending envelope. Allocations, match rules and
// reviewed transactions reference it.
type Category struct {
	DefaultModel
	Name types.CategoryName `json:"name" gorm:"uniqueIndex"`
	Note string             `json:"note,omitempty"`
}

var ErrCategoryNameEmpty = errors.New("the category name must not be empty")

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = types.CategoryName(strings.TrimSpace(string(c.Name)))
	c.Note = strings.TrimSpace(c.Note)

	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	return nil
}

// Categories returns all categories, sorted by name.
func Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category
	err := db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// CategoryNamed returns the category with the given name.
func CategoryNamed(db *gorm.DB, name types.CategoryName) (Category, error) {
	var category Category
	err := db.Where(&Category{Name: name}).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return category, ErrCategoryNotFound
	}
	return category, err
}

// EnsureCategory returns the category with the given name, creating it if
// it does not exist yet. Categories come into existence on first use.
func EnsureCategory(db *gorm.DB, name types.CategoryName) (Category, error) {
	var category Category
	err := db.Where(&Category{Name: name}).FirstOrCreate(&category).Error
	return category, err
}
