package v1

import (
	"fmt"

	"github.com/centavos/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type UserEditable struct {
	Name        string `json:"name" example:"Maria Souza" default:""`              // Display name of the user
	Email       string `json:"email" example:"maria@example.com" default:""`       // Email address, unique across all users
	PhoneNumber string `json:"phoneNumber" example:"+55 11 91234-5678" default:""` // Phone number as entered
	BirthDate   string `json:"birthDate" example:"02/01/2001" default:""`          // Birth date as entered
}

// model returns the database resource for the editable fields
func (editable UserEditable) model() models.User {
	return models.User{
		Name:        editable.Name,
		Email:       editable.Email,
		PhoneNumber: editable.PhoneNumber,
		BirthDate:   editable.BirthDate,
	}
}

type UserLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/users/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // The user itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?owner=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions owned by the user
	Summary      string `json:"summary" example:"https://example.com/api/v1/owners/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2/summary"`          // Account totals for the user
	Dashboard    string `json:"dashboard" example:"https://example.com/api/v1/owners/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2/dashboard"`      // Period view for the user
	Analysis     string `json:"analysis" example:"https://example.com/api/v1/owners/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2/analysis"`        // Monthly analysis for the user
	Categories   string `json:"categories" example:"https://example.com/api/v1/owners/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2/categories"`    // Categories available to the user
}

// User is the API v1 representation of a User.
type User struct {
	models.DefaultModel
	UserEditable
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			Name:        model.Name,
			Email:       model.Email,
			PhoneNumber: model.PhoneNumber,
			BirthDate:   model.BirthDate,
		},
		Links: UserLinks{
			Self:         fmt.Sprintf("%s/v1/users/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?owner=%s", url, model.ID),
			Summary:      fmt.Sprintf("%s/v1/owners/%s/summary", url, model.ID),
			Dashboard:    fmt.Sprintf("%s/v1/owners/%s/dashboard", url, model.ID),
			Analysis:     fmt.Sprintf("%s/v1/owners/%s/analysis", url, model.ID),
			Categories:   fmt.Sprintf("%s/v1/owners/%s/categories", url, model.ID),
		},
	}
}

type UserListResponse struct {
	Data       []User      `json:"data"`                                                          // List of users
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type UserCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []UserResponse `json:"data"`                                                          // List of created Users
}

func (u *UserCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	u.Data = append(u.Data, UserResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                          // Data for the user
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this user
}

type UserQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Fuzzy filter for the name
	Email  string `form:"email"`                      // Exact filter for the email address
	Search string `form:"search" filterField:"false"` // Search for this text in the name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first User returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Users to return. Defaults to 50.
}

func (f UserQueryFilter) model() models.User {
	return models.User{
		Email: f.Email,
	}
}
