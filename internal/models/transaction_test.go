package models_test

import (
	"time"

	"github.com/centavos/backend/internal/ledger"
	"github.com/centavos/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionSaveDefaults() {
	user := suite.createTestUser("transaction-defaults")

	transaction := models.Transaction{
		OwnerID:          user.ID,
		AmountMinorUnits: 12999,
		Sector:           ledger.SectorOutflow,
		Label:            "  ",
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().NoError(err)

	assert.Equal(suite.T(), ledger.FallbackLabel, transaction.Label, "Blank labels must fall back")
	assert.Equal(suite.T(), "outflow", transaction.Category, "Outflows must default to the sector name")
	assert.False(suite.T(), transaction.Date.IsZero(), "Date must default to now")
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionSaveInflow() {
	user := suite.createTestUser("transaction-inflow")

	transaction := models.Transaction{
		OwnerID:          user.ID,
		AmountMinorUnits: 250000,
		Sector:           ledger.SectorInflow,
		Label:            "Salary",
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().NoError(err)

	assert.Equal(suite.T(), "", transaction.Category, "Inflows must not be categorized by default")
}

func (suite *TestSuiteStandard) TestTransactionNegativeAmount() {
	user := suite.createTestUser("transaction-negative")

	transaction := models.Transaction{
		OwnerID:          user.ID,
		AmountMinorUnits: -1,
		Sector:           ledger.SectorOutflow,
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestTransactionMissingOwner() {
	transaction := models.Transaction{
		OwnerID:          uuid.New(),
		AmountMinorUnits: 100,
		Sector:           ledger.SectorOutflow,
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionRecord() {
	user := suite.createTestUser("transaction-record")

	date := time.Date(2024, 3, 17, 14, 30, 0, 0, time.UTC)
	transaction := models.Transaction{
		OwnerID:          user.ID,
		AmountMinorUnits: 12999,
		Sector:           ledger.SectorOutflow,
		Label:            "Groceries",
		Category:         "Food",
		Date:             date,
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().NoError(err)

	record := transaction.Record()
	assert.Equal(suite.T(), transaction.ID.String(), record.ID)
	assert.Equal(suite.T(), user.ID, record.OwnerID)
	assert.Equal(suite.T(), int64(12999), record.AmountMinorUnits)
	assert.Equal(suite.T(), date, record.Timestamp)
	assert.Equal(suite.T(), "Food", record.Category)
}

func (suite *TestSuiteStandard) TestUserTransactionsSorted() {
	user := suite.createTestUser("transaction-sorting")

	for _, date := range []time.Time{
		time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
	} {
		transaction := models.Transaction{OwnerID: user.ID, AmountMinorUnits: 100, Sector: ledger.SectorOutflow, Date: date}
		suite.Assert().NoError(models.DB.Create(&transaction).Error)
	}

	transactions, err := user.Transactions(models.DB)
	suite.Assert().NoError(err)
	suite.Assert().Len(transactions, 3)

	assert.True(suite.T(), transactions[0].Date.Before(transactions[1].Date))
	assert.True(suite.T(), transactions[1].Date.Before(transactions[2].Date))
}
