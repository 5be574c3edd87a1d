package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FallbackLabel is used when a record has no label.
const FallbackLabel = "Expense"

// ErrAmountNegative is returned for records with a negative amount.
// This is the only condition that rejects a record outright, since
// silently flipping or zeroing money would be data loss, not lenient
// degradation.
var ErrAmountNegative = errors.New("the amount of a record must not be negative")

// now is replaced in tests.
var now = time.Now

// RawRecord is a record as the document store delivers it: loosely
// typed, with optional fields and free-text domain terms.
type RawRecord struct {
	ID          string
	OwnerID     uuid.UUID
	Amount      int64  // Amount in minor units (1/100 of the display unit)
	Sector      string // "inflow" or "outflow"; unknown tokens are passed through
	Date        string // RFC3339 timestamp
	Label       string
	Category    string
	Description string
	Icon        string
}

// Normalize converts a raw record into a canonical Transaction.
//
// The conversion is deliberately lenient so that dashboards stay
// renderable with partially malformed upstream data: a date that does
// not parse is replaced with the current time, and an unrecognized
// sector token is kept as-is. Such transactions simply fail every
// sector-scoped filter and sum.
func Normalize(raw RawRecord) (Transaction, error) {
	if raw.Amount < 0 {
		return Transaction{}, ErrAmountNegative
	}

	timestamp, err := time.Parse(time.RFC3339, raw.Date)
	if err != nil {
		timestamp = now()
	}

	sector := Sector(raw.Sector)

	label := strings.TrimSpace(raw.Label)
	if label == "" {
		label = FallbackLabel
	}

	// Inflows carry no category. Outflows without one fall back to the
	// sector name so that category groupings have a bucket for them.
	category := strings.TrimSpace(raw.Category)
	if category == "" && sector == SectorOutflow {
		category = string(sector)
	}

	return Transaction{
		ID:               raw.ID,
		OwnerID:          raw.OwnerID,
		AmountMinorUnits: raw.Amount,
		Sector:           sector,
		Timestamp:        timestamp,
		Label:            label,
		Category:         category,
		Description:      strings.TrimSpace(raw.Description),
		Icon:             strings.TrimSpace(raw.Icon),
	}, nil
}
