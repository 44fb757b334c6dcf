package models

import (
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule suggests a category for incoming transactions whose
// description matches a glob pattern, e.g. "TESCO*".
type MatchRule struct {
	DefaultModel
	Priority   uint      `json:"priority"` // Rules with lower numbers are checked first
	Match      string    `json:"match"`
	CategoryID uuid.UUID `json:"categoryId"`
	Category   Category  `json:"-"`
}

// MatchRules returns all match rules in evaluation order.
func MatchRules(db *gorm.DB) ([]MatchRule, error) {
	var rules []MatchRule
	err := db.Order("priority ASC, match ASC").Find(&rules).Error
	return rules, err
}

// matchCategoryID returns the category the first matching rule points to,
// or nil when no rule matches the description.
func matchCategoryID(db *gorm.DB, description string) (*uuid.UUID, error) {
	rules, err := MatchRules(db)
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if glob.Glob(rule.Match, description) {
			id := rule.CategoryID
			return &id, nil
		}
	}

	return nil, nil
}
