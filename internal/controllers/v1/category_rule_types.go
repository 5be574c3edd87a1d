package v1

import (
	"fmt"

	"github.com/centavos/backend/internal/httputil"
	"github.com/centavos/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryRuleEditable struct {
	OwnerID  uuid.UUID `json:"ownerId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the user owning the rule
	Priority uint      `json:"priority" example:"1"`                                   // The priority of the rule. Lower number means higher priority.
	Match    string    `json:"match" example:"Uber*" default:""`                       // The glob pattern matched against the transaction label
	Category string    `json:"category" example:"Transport" default:""`                // The category name to assign on match
}

// model returns the database resource for the editable fields
func (editable CategoryRuleEditable) model() models.CategoryRule {
	return models.CategoryRule{
		OwnerID:  editable.OwnerID,
		Priority: editable.Priority,
		Match:    editable.Match,
		Category: editable.Category,
	}
}

type CategoryRuleLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/category-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The rule itself
	Owner string `json:"owner" example:"https://example.com/api/v1/users/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`         // The user owning the rule
}

// CategoryRule is the API v1 representation of a CategoryRule.
type CategoryRule struct {
	models.DefaultModel
	CategoryRuleEditable
	Links CategoryRuleLinks `json:"links"`
}

func newCategoryRule(c *gin.Context, model models.CategoryRule) CategoryRule {
	url := c.GetString(string(models.DBContextURL))

	return CategoryRule{
		DefaultModel: model.DefaultModel,
		CategoryRuleEditable: CategoryRuleEditable{
			OwnerID:  model.OwnerID,
			Priority: model.Priority,
			Match:    model.Match,
			Category: model.Category,
		},
		Links: CategoryRuleLinks{
			Self:  fmt.Sprintf("%s/v1/category-rules/%s", url, model.ID),
			Owner: fmt.Sprintf("%s/v1/users/%s", url, model.OwnerID),
		},
	}
}

type CategoryRuleListResponse struct {
	Data       []CategoryRule `json:"data"`                                                          // List of rules
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type CategoryRuleCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryRuleResponse `json:"data"`                                                          // List of created CategoryRules
}

func (t *CategoryRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, CategoryRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryRuleResponse struct {
	Data  *CategoryRule `json:"data"`                                                          // Data for the rule
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this rule
}

type CategoryRuleQueryFilter struct {
	OwnerID  string `form:"owner"`                      // By owner ID
	Priority uint   `form:"priority"`                   // By priority
	Match    string `form:"match" filterField:"false"`  // Fuzzy filter for the match pattern
	Category string `form:"category"`                   // By exact category name
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first rule returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of rules to return. Defaults to 50.
}

func (f CategoryRuleQueryFilter) model() (models.CategoryRule, error) {
	ownerID, err := httputil.UUIDFromString(f.OwnerID)
	if err != nil {
		return models.CategoryRule{}, err
	}

	return models.CategoryRule{
		OwnerID:  ownerID,
		Priority: f.Priority,
		Category: f.Category,
	}, nil
}
