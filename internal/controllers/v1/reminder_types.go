package v1

import (
	"fmt"
	"time"

	"github.com/centavos/backend/internal/httputil"
	"github.com/centavos/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReminderEditable struct {
	OwnerID uuid.UUID `json:"ownerId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the user owning the reminder
	Text    string    `json:"text" example:"Pay the electricity bill" default:""`     // The reminder text
	Date    time.Time `json:"date" example:"2024-03-17T00:00:00Z"`                    // Calendar day the reminder belongs to. Defaults to today.
}

// model returns the database resource for the editable fields
func (editable ReminderEditable) model() models.Reminder {
	return models.Reminder{
		OwnerID: editable.OwnerID,
		Text:    editable.Text,
		Date:    editable.Date,
	}
}

type ReminderLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/reminders/c8230ef5-bc47-4b98-b186-06cb83fff1d5"` // The reminder itself
	Owner string `json:"owner" example:"https://example.com/api/v1/users/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The user owning the reminder
}

// Reminder is the API v1 representation of a Reminder.
type Reminder struct {
	models.DefaultModel
	ReminderEditable
	Links ReminderLinks `json:"links"`
}

func newReminder(c *gin.Context, model models.Reminder) Reminder {
	url := c.GetString(string(models.DBContextURL))

	return Reminder{
		DefaultModel: model.DefaultModel,
		ReminderEditable: ReminderEditable{
			OwnerID: model.OwnerID,
			Text:    model.Text,
			Date:    model.Date,
		},
		Links: ReminderLinks{
			Self:  fmt.Sprintf("%s/v1/reminders/%s", url, model.ID),
			Owner: fmt.Sprintf("%s/v1/users/%s", url, model.OwnerID),
		},
	}
}

type ReminderListResponse struct {
	Data       []Reminder  `json:"data"`                                                          // List of reminders
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ReminderCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ReminderResponse `json:"data"`                                                          // List of created Reminders
}

func (t *ReminderCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ReminderResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ReminderResponse struct {
	Data  *Reminder `json:"data"`                                                          // Data for the reminder
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this reminder
}

type ReminderQueryFilter struct {
	OwnerID string    `form:"owner"`                                                           // By owner ID
	Text    string    `form:"text" filterField:"false"`                                        // Fuzzy filter for the text
	Date    time.Time `form:"date" filterField:"false" time_format:"2006-01-02" time_utc:"1"`  // Only reminders on this calendar day
	Month   time.Time `form:"month" filterField:"false" time_format:"2006-01" time_utc:"1"`    // Only reminders in this month
	Offset  uint      `form:"offset" filterField:"false"`                                      // The offset of the first Reminder returned. Defaults to 0.
	Limit   int       `form:"limit" filterField:"false"`                                       // Maximum number of Reminders to return. Defaults to 50.
}

func (f ReminderQueryFilter) model() (models.Reminder, error) {
	ownerID, err := httputil.UUIDFromString(f.OwnerID)
	if err != nil {
		return models.Reminder{}, err
	}

	return models.Reminder{
		OwnerID: ownerID,
	}, nil
}
