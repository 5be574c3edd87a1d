package v1

import (
	"fmt"

	"github.com/centavos/backend/internal/httputil"
	"github.com/centavos/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryEditable struct {
	OwnerID uuid.UUID `json:"ownerId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the user owning the category
	Name    string    `json:"name" example:"Food" default:""`                         // Name of the category, unique per owner
	Icon    string    `json:"icon" example:"🍔" default:""`                            // Icon shown with the category
}

// model returns the database resource for the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		OwnerID: editable.OwnerID,
		Name:    editable.Name,
		Icon:    editable.Icon,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91f71defe"`                        // The category itself
	Owner        string `json:"owner" example:"https://example.com/api/v1/users/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                            // The user owning the category
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?owner=550dc009-cea6-4c12-b2a5-03446eb7b7cf&category=Food"` // Transactions referencing the category
}

// Category is the API v1 representation of a Category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			OwnerID: model.OwnerID,
			Name:    model.Name,
			Icon:    model.Icon,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Owner:        fmt.Sprintf("%s/v1/users/%s", url, model.OwnerID),
			Transactions: fmt.Sprintf("%s/v1/transactions?owner=%s&category=%s", url, model.OwnerID, model.Name),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`                                                          // List of created Categories
}

func (t *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this category
}

type CategoryQueryFilter struct {
	OwnerID string `form:"owner"`                      // By owner ID
	Name    string `form:"name" filterField:"false"`   // Fuzzy filter for the name
	Search  string `form:"search" filterField:"false"` // Search for this text in the name
	Offset  uint   `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit   int    `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() (models.Category, error) {
	ownerID, err := httputil.UUIDFromString(f.OwnerID)
	if err != nil {
		return models.Category{}, err
	}

	return models.Category{
		OwnerID: ownerID,
	}, nil
}
