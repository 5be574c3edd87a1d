package models_test

import (
	"time"

	"github.com/centavos/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestReminderValidation() {
	user := suite.createTestUser("reminder-validation")

	err := models.DB.Create(&models.Reminder{OwnerID: user.ID, Text: "   "}).Error
	suite.Assert().ErrorIs(err, models.ErrReminderTextMissing)
}

func (suite *TestSuiteStandard) TestReminderDateDefault() {
	user := suite.createTestUser("reminder-default")

	reminder := models.Reminder{OwnerID: user.ID, Text: "Pay the electricity bill"}
	suite.Assert().NoError(models.DB.Create(&reminder).Error)

	assert.False(suite.T(), reminder.Date.IsZero(), "Date must default to now")
	assert.Equal(suite.T(), time.UTC, reminder.Date.Location())
}
