package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is the owner of transactions, categories, goals and reminders.
// Every query against owned resources is scoped to exactly one user.
//
// Authentication is not handled here: the backend trusts the caller to
// present the right owner ID, session handling is the job of the
// authentication provider in front of the API.
type User struct {
	DefaultModel
	Name        string
	Email       string `gorm:"uniqueIndex:user_email"`
	PhoneNumber string
	BirthDate   string // Kept as entered, e.g. "02/01/2001"
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)
	u.PhoneNumber = strings.TrimSpace(u.PhoneNumber)
	u.BirthDate = strings.TrimSpace(u.BirthDate)

	return nil
}

// Transactions returns all transactions of this user, oldest first.
func (u User) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	err := db.Where(&Transaction{OwnerID: u.ID}).Order("date ASC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
