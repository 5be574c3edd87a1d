package models_test

import (
	"github.com/centavos/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	suite.createTestUser("email-unique")

	err := models.DB.Create(&models.User{Name: "Someone else", Email: "email-unique@example.com"}).Error
	suite.Assert().ErrorIs(err, models.ErrUserEmailNotUnique)
}

func (suite *TestSuiteStandard) TestUserTrimsFields() {
	user := models.User{Name: "  Ana  ", Email: " ana@example.com ", PhoneNumber: " 555 "}
	suite.Assert().NoError(models.DB.Create(&user).Error)

	assert.Equal(suite.T(), "Ana", user.Name)
	assert.Equal(suite.T(), "ana@example.com", user.Email)
	assert.Equal(suite.T(), "555", user.PhoneNumber)
}

// The "no record" error carries the de-pluralized resource name.
func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	err := models.DB.First(&models.User{}, "id = ?", uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no user matching your query", err.Error())

	err = models.DB.First(&models.Category{}, "id = ?", uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no category matching your query", err.Error())
}
