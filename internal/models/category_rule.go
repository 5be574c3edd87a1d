package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// CategoryRule automatically categorizes outflow transactions whose
// label matches a glob pattern. Rules are evaluated in ascending
// priority order, the first match wins.
type CategoryRule struct {
	DefaultModel
	Owner    User      `json:"-"`
	OwnerID  uuid.UUID `gorm:"index"`
	Priority uint
	Match    string // Glob pattern matched against the transaction label
	Category string // Category name to assign on match
}

func (r *CategoryRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	r.Category = strings.TrimSpace(r.Category)

	if r.Match == "" {
		return ErrRuleMatchMissing
	}

	if r.Category == "" {
		return ErrRuleCategoryMissing
	}

	return nil
}

// BeforeCreate verifies that the owner exists.
func (r *CategoryRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	if r.Owner.ID == uuid.Nil {
		return tx.First(&User{}, "id = ?", r.OwnerID).Error
	}

	return nil
}

// CategoryRules returns the owner's rules in evaluation order.
func CategoryRules(db *gorm.DB, ownerID uuid.UUID) ([]CategoryRule, error) {
	var rules []CategoryRule

	err := db.Where(&CategoryRule{OwnerID: ownerID}).Order("priority ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}

	return rules, nil
}

// ApplyRules assigns a category to an uncategorized transaction from
// the first rule whose pattern matches the label. Transactions that
// already carry a category are left alone.
func ApplyRules(rules []CategoryRule, transaction *Transaction) {
	if transaction.Category != "" {
		return
	}

	for _, rule := range rules {
		if glob.Glob(rule.Match, transaction.Label) {
			transaction.Category = rule.Category
			return
		}
	}
}
