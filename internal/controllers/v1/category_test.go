package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/centavos/backend/internal/controllers/v1"
	"github.com/centavos/backend/internal/ledger"
	"github.com/centavos/backend/internal/models"
	"github.com/centavos/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestCategoriesCreateValidation verifies the required fields.
func (suite *TestSuiteStandard) TestCategoriesCreateValidation() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Validation"})

	tests := []struct {
		name     string
		editable v1.CategoryEditable
		err      error
	}{
		{"No name", v1.CategoryEditable{OwnerID: owner.Data.ID, Icon: "🍔"}, models.ErrCategoryNameMissing},
		{"No icon", v1.CategoryEditable{OwnerID: owner.Data.ID, Name: "Food"}, models.ErrCategoryIconMissing},
		{"Blank name", v1.CategoryEditable{OwnerID: owner.Data.ID, Name: "   ", Icon: "🍔"}, models.ErrCategoryNameMissing},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{tt.editable})
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.CategoryCreateResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
		})
	}
}

// TestCategoriesCreateDuplicate verifies that names are unique per
// owner and compared case-sensitively.
func (suite *TestSuiteStandard) TestCategoriesCreateDuplicate() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Duplicates"})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{OwnerID: owner.Data.ID, Name: "Food", Icon: "🍔"})

	// Same name with a different icon is still a duplicate
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{
		{OwnerID: owner.Data.ID, Name: "Food", Icon: "🏠"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.ErrCategoryNameNotUnique.Error(), *response.Data[0].Error)

	// Different case is a different category
	_ = createTestCategory(suite.T(), v1.CategoryEditable{OwnerID: owner.Data.ID, Name: "food", Icon: "🍟"})

	// Another owner can use the same name
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food", Icon: "🍔"})
}

// TestCategoriesDelete verifies that deleting a registry entry does
// not touch transactions unless decategorize is requested.
func (suite *TestSuiteStandard) TestCategoriesDelete() {
	tests := []struct {
		name         string
		decategorize string
		category     string // Expected category on the transaction afterwards
	}{
		{"Keep transactions", "", "Food"},
		{"Decategorize", "?decategorize=true", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			owner := createTestUser(t, v1.UserEditable{Name: "Delete " + tt.name})
			category := createTestCategory(t, v1.CategoryEditable{OwnerID: owner.Data.ID, Name: "Food", Icon: "🍔"})
			transaction := createTestTransaction(t, v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 1299, Sector: ledger.SectorOutflow, Category: "Food"})

			recorder := test.Request(t, http.MethodDelete, category.Data.Links.Self+tt.decategorize, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)

			// The registry entry is gone either way
			recorder = test.Request(t, http.MethodGet, category.Data.Links.Self, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)

			// The transaction still exists, its category depends on the request
			recorder = test.Request(t, http.MethodGet, transaction.Data.Links.Self, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.TransactionResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, tt.category, response.Data.Category)
		})
	}
}

// TestCategoriesDecategorizeScoped verifies that decategorization only
// touches the transactions of the category's owner.
func (suite *TestSuiteStandard) TestCategoriesDecategorizeScoped() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Scoped"})
	category := createTestCategory(suite.T(), v1.CategoryEditable{OwnerID: owner.Data.ID, Name: "Food", Icon: "🍔"})
	other := createTestTransaction(suite.T(), v1.TransactionEditable{Amount: 1299, Sector: ledger.SectorOutflow, Category: "Food"})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("%s?decategorize=true", category.Data.Links.Self), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, other.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Food", response.Data.Category, "Transactions of other owners must not be decategorized")
}
