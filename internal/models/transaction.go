package models

import (
	"strings"
	"time"

	"github.com/centavos/backend/internal/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction represents a single financial record of one owner.
//
// The amount is stored in integer minor units (1/100 of the display
// unit) and is always non-negative, the direction is carried by the
// sector. An unrecognized sector is stored as-is: the record stays
// visible in unfiltered lists but contributes to no sum.
type Transaction struct {
	DefaultModel
	Owner            User      `json:"-"`
	OwnerID          uuid.UUID `gorm:"index"`
	Date             time.Time // Point in time the transaction occurred
	AmountMinorUnits int64
	Sector           ledger.Sector
	Label            string
	Category         string
	Description      string
	Icon             string
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - rejects negative amounts
//   - sets the timezone for the Date to UTC and defaults it to now
//   - applies the same label and category fallbacks as the normalizer
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.AmountMinorUnits < 0 {
		return ErrAmountNegative
	}

	t.Label = strings.TrimSpace(t.Label)
	t.Category = strings.TrimSpace(t.Category)
	t.Description = strings.TrimSpace(t.Description)
	t.Icon = strings.TrimSpace(t.Icon)

	if t.Label == "" {
		t.Label = ledger.FallbackLabel
	}

	if t.Category == "" && t.Sector == ledger.SectorOutflow {
		t.Category = string(t.Sector)
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// BeforeCreate verifies that the owner exists.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	if t.Owner.ID == uuid.Nil {
		return tx.First(&User{}, "id = ?", t.OwnerID).Error
	}

	return nil
}

// Record returns the canonical in-memory representation used by the
// aggregation and filtering core.
func (t Transaction) Record() ledger.Transaction {
	return ledger.Transaction{
		ID:               t.ID.String(),
		OwnerID:          t.OwnerID,
		AmountMinorUnits: t.AmountMinorUnits,
		Sector:           t.Sector,
		Timestamp:        t.Date,
		Label:            t.Label,
		Category:         t.Category,
		Description:      t.Description,
		Icon:             t.Icon,
	}
}

// Records converts a transaction list for the aggregation core.
func Records(transactions []Transaction) []ledger.Transaction {
	records := make([]ledger.Transaction, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, t.Record())
	}

	return records
}
