package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reminder is a dated note of one owner, shown on the calendar screen.
type Reminder struct {
	DefaultModel
	Owner   User      `json:"-"`
	OwnerID uuid.UUID `gorm:"index"`
	Text    string
	Date    time.Time // Calendar day the reminder belongs to
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (r *Reminder) AfterFind(tx *gorm.DB) (err error) {
	err = r.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	r.Date = r.Date.In(time.UTC)
	return
}

// BeforeSave validates the text and defaults the date to today.
func (r *Reminder) BeforeSave(_ *gorm.DB) error {
	r.Text = strings.TrimSpace(r.Text)

	if r.Text == "" {
		return ErrReminderTextMissing
	}

	if r.Date.IsZero() {
		r.Date = time.Now().In(time.UTC)
	} else {
		r.Date = r.Date.In(time.UTC)
	}

	return nil
}

// BeforeCreate verifies that the owner exists.
func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	if r.Owner.ID == uuid.Nil {
		return tx.First(&User{}, "id = ?", r.OwnerID).Error
	}

	return nil
}
