package v1

import (
	"fmt"

	"github.com/centavos/backend/internal/httputil"
	"github.com/centavos/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	OwnerID      uuid.UUID `json:"ownerId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the user owning the goal
	Name         string    `json:"name" example:"New bicycle" default:""`                  // Name of the goal, unique per owner
	Note         string    `json:"note" example:"Saving up for the commute" default:""`    // A longer description
	TargetAmount int64     `json:"targetAmount" example:"150000" minimum:"1"`              // The target amount in minor units. Must be positive.
	Archived     bool      `json:"archived" example:"true" default:"false"`                // Is the goal archived?
}

// model returns the database resource for the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		OwnerID:                editable.OwnerID,
		Name:                   editable.Name,
		Note:                   editable.Note,
		TargetAmountMinorUnits: editable.TargetAmount,
		Archived:               editable.Archived,
	}
}

type GoalLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/goals/f81566d9-af4d-4f13-9e22-c355c0ff4a65"` // The goal itself
	Owner string `json:"owner" example:"https://example.com/api/v1/users/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The user owning the goal
}

// Goal is the API v1 representation of a Goal.
type Goal struct {
	models.DefaultModel
	GoalEditable
	DisplayTargetAmount decimal.Decimal `json:"displayTargetAmount" example:"1500.00"` // Target amount in display units with two decimal places
	Links               GoalLinks       `json:"links"`
}

func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			OwnerID:      model.OwnerID,
			Name:         model.Name,
			Note:         model.Note,
			TargetAmount: model.TargetAmountMinorUnits,
			Archived:     model.Archived,
		},
		DisplayTargetAmount: decimal.New(model.TargetAmountMinorUnits, -2),
		Links: GoalLinks{
			Self:  fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Owner: fmt.Sprintf("%s/v1/users/%s", url, model.OwnerID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created Goals
}

func (t *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                                          // Data for the goal
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this goal
}

type GoalQueryFilter struct {
	OwnerID  string `form:"owner"`                      // By owner ID
	Name     string `form:"name" filterField:"false"`   // Fuzzy filter for the name
	Note     string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Archived bool   `form:"archived"`                   // Is the goal archived?
	Search   string `form:"search" filterField:"false"` // Search for this text in name and note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Goal returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() (models.Goal, error) {
	ownerID, err := httputil.UUIDFromString(f.OwnerID)
	if err != nil {
		return models.Goal{}, err
	}

	return models.Goal{
		OwnerID:  ownerID,
		Archived: f.Archived,
	}, nil
}
