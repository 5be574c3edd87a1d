package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a registry entry for categorizing outflow transactions.
// The name is the join key against Transaction.Category and is
// compared case-sensitively, it must be unique per owner.
type Category struct {
	DefaultModel
	Owner   User      `json:"-"`
	OwnerID uuid.UUID `gorm:"uniqueIndex:category_owner_name"`
	Name    string    `gorm:"uniqueIndex:category_owner_name"`
	Icon    string    // Emoji or icon-font token shown with the category
}

// BeforeSave validates the entry. Both name and icon are required.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Icon = strings.TrimSpace(c.Icon)

	if c.Name == "" {
		return ErrCategoryNameMissing
	}

	if c.Icon == "" {
		return ErrCategoryIconMissing
	}

	return nil
}

// BeforeCreate verifies that the owner exists.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	if c.Owner.ID == uuid.Nil {
		return tx.First(&User{}, "id = ?", c.OwnerID).Error
	}

	return nil
}

// Transactions returns all transactions of the owner that currently
// reference this category.
func (c Category) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	err := db.Where(&Transaction{OwnerID: c.OwnerID, Category: c.Name}).Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Decategorize clears the category field on every transaction of the
// owner that references this category. The transactions themselves are
// kept.
//
// This is deliberately a separate operation from deleting the registry
// entry: removing a category from the registry does not change any
// transaction unless the caller explicitly asks for it.
func (c Category) Decategorize(db *gorm.DB) error {
	return db.Model(&Transaction{}).
		Where("owner_id = ? AND category = ?", c.OwnerID, c.Name).
		Update("category", "").Error
}
