package v1

import (
	"fmt"
	"time"

	"github.com/centavos/backend/internal/httputil"
	"github.com/centavos/backend/internal/ledger"
	"github.com/centavos/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	OwnerID     uuid.UUID     `json:"ownerId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`    // ID of the user owning the transaction
	Date        time.Time     `json:"date" example:"2024-03-17T00:00:00Z"`                       // Point in time the transaction occurred. Defaults to the current time.
	Amount      int64         `json:"amount" example:"12999" minimum:"0"`                        // Amount in minor units, e.g. 12999 for 129.99. Must not be negative.
	Sector      ledger.Sector `json:"sector" example:"outflow" enums:"inflow,outflow"`           // Direction of the transaction
	Label       string        `json:"label" example:"Groceries" default:""`                      // Short label. Defaults to "Expense".
	Category    string        `json:"category" example:"Food" default:""`                        // Category name. Defaults to the sector name for outflows.
	Description string        `json:"description" example:"Weekly shopping run" default:""`      // A longer description
	Icon        string        `json:"icon" example:"🛒" default:""`                               // Icon shown with the transaction
}

// model returns the database resource for the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		OwnerID:          editable.OwnerID,
		Date:             editable.Date,
		AmountMinorUnits: editable.Amount,
		Sector:           editable.Sector,
		Label:            editable.Label,
		Category:         editable.Category,
		Description:      editable.Description,
		Icon:             editable.Icon,
	}
}

// TransactionImport is a raw record as exported from the document
// store: loosely typed, with the date as a string.
type TransactionImport struct {
	OwnerID     uuid.UUID `json:"ownerId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the user owning the transaction
	Amount      int64     `json:"amount" example:"12999" minimum:"0"`                     // Amount in minor units. Must not be negative.
	Sector      string    `json:"sector" example:"outflow"`                               // Sector token. Unrecognized tokens are stored as-is.
	Date        string    `json:"date" example:"2024-03-17T14:30:00Z"`                    // RFC3339 timestamp. Malformed values fall back to the current time.
	Label       string    `json:"label" example:"Groceries" default:""`                   // Short label. Defaults to "Expense".
	Category    string    `json:"category" example:"Food" default:""`                     // Category name. Defaults to the sector name for outflows.
	Description string    `json:"description" default:""`                                 // A longer description
	Icon        string    `json:"icon" example:"🛒" default:""`                            // Icon shown with the transaction
}

// raw returns the record in the shape the normalizer consumes.
func (i TransactionImport) raw() ledger.RawRecord {
	return ledger.RawRecord{
		OwnerID:     i.OwnerID,
		Amount:      i.Amount,
		Sector:      i.Sector,
		Date:        i.Date,
		Label:       i.Label,
		Category:    i.Category,
		Description: i.Description,
		Icon:        i.Icon,
	}
}

type TransactionLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Owner string `json:"owner" example:"https://example.com/api/v1/users/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`       // The user owning the transaction
}

// Transaction is the API v1 representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	DisplayAmount decimal.Decimal  `json:"displayAmount" example:"129.99"` // Amount in display units with two decimal places
	Links         TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			OwnerID:     model.OwnerID,
			Date:        model.Date,
			Amount:      model.AmountMinorUnits,
			Sector:      model.Sector,
			Label:       model.Label,
			Category:    model.Category,
			Description: model.Description,
			Icon:        model.Icon,
		},
		DisplayAmount: model.Record().DisplayAmount(),
		Links: TransactionLinks{
			Self:  fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Owner: fmt.Sprintf("%s/v1/users/%s", url, model.OwnerID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
}

type TransactionQueryFilter struct {
	OwnerID     string    `form:"owner"`                                                             // By owner ID
	Sector      string    `form:"sector"`                                                            // By sector
	Category    string    `form:"category"`                                                          // By exact category name, case-sensitive
	Label       string    `form:"label" filterField:"false"`                                         // Fuzzy filter for the label
	Description string    `form:"description" filterField:"false"`                                   // Fuzzy filter for the description
	Search      string    `form:"search" filterField:"false"`                                        // Search for this text in the label
	Date        time.Time `form:"date" filterField:"false" time_format:"2006-01-02" time_utc:"1"`    // Only transactions on this calendar day
	Offset      uint      `form:"offset" filterField:"false"`                                        // The offset of the first Transaction returned. Defaults to 0.
	Limit       int       `form:"limit" filterField:"false"`                                         // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() (models.Transaction, error) {
	ownerID, err := httputil.UUIDFromString(f.OwnerID)
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		OwnerID:  ownerID,
		Sector:   ledger.Sector(f.Sector),
		Category: f.Category,
	}, nil
}
