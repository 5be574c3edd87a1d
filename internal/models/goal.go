package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal is a savings target of one owner, shown on the dashboard.
type Goal struct {
	DefaultModel
	Owner                  User      `json:"-"`
	OwnerID                uuid.UUID `gorm:"uniqueIndex:goal_owner_name"`
	Name                   string    `gorm:"uniqueIndex:goal_owner_name"`
	Note                   string
	TargetAmountMinorUnits int64 // The target for the goal, in minor units
	Archived               bool
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	if g.TargetAmountMinorUnits <= 0 {
		return ErrGoalAmountNotPositive
	}

	return nil
}

// BeforeCreate verifies that the owner exists.
func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	if g.Owner.ID == uuid.Nil {
		return tx.First(&User{}, "id = ?", g.OwnerID).Error
	}

	return nil
}
