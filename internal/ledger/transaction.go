// Package ledger implements the pure transaction aggregation and
// filtering core. All functions are free of I/O and operate on
// canonical transactions that have already been fetched and scoped to
// a single owner.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sector is the direction of a transaction.
type Sector string

const (
	SectorInflow  Sector = "inflow"
	SectorOutflow Sector = "outflow"
)

// Recognized reports whether the sector is one of the two known
// directions. Transactions with an unrecognized sector stay visible in
// unfiltered lists, but are excluded from all sums and fail every
// sector filter.
func (s Sector) Recognized() bool {
	return s == SectorInflow || s == SectorOutflow
}

// Transaction is the canonical in-memory representation of a financial
// record. Amounts are always non-negative, the direction is carried by
// the sector.
type Transaction struct {
	ID               string
	OwnerID          uuid.UUID
	AmountMinorUnits int64
	Sector           Sector
	Timestamp        time.Time
	Label            string
	Category         string
	Description      string
	Icon             string
}

// DisplayAmount returns the amount in display units, with two decimal
// places. The stored unit is 1/100 of the display unit.
func (t Transaction) DisplayAmount() decimal.Decimal {
	return decimal.New(t.AmountMinorUnits, -2)
}
