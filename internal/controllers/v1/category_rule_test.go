package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/centavos/backend/internal/controllers/v1"
	"github.com/centavos/backend/internal/models"
	"github.com/centavos/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestCategoryRulesCreateValidation verifies the required fields.
func (suite *TestSuiteStandard) TestCategoryRulesCreateValidation() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Rule validation"})

	tests := []struct {
		name     string
		editable v1.CategoryRuleEditable
		err      error
	}{
		{"No match", v1.CategoryRuleEditable{OwnerID: owner.Data.ID, Category: "Transport"}, models.ErrRuleMatchMissing},
		{"No category", v1.CategoryRuleEditable{OwnerID: owner.Data.ID, Match: "Uber*"}, models.ErrRuleCategoryMissing},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/category-rules", []v1.CategoryRuleEditable{tt.editable})
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.CategoryRuleCreateResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
		})
	}
}

// TestCategoryRulesSorted verifies that the list is sorted by priority
// with the most important rule first.
func (suite *TestSuiteStandard) TestCategoryRulesSorted() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Rule sorting"})

	second := createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{OwnerID: owner.Data.ID, Priority: 10, Match: "Market*", Category: "Food"})
	first := createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{OwnerID: owner.Data.ID, Priority: 1, Match: "Uber*", Category: "Transport"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/category-rules?owner=%s", owner.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), first.Data.ID, response.Data[0].ID)
	assert.Equal(suite.T(), second.Data.ID, response.Data[1].ID)
}

// TestCategoryRulesGetFilter verifies the query string filters on the
// rule list.
func (suite *TestSuiteStandard) TestCategoryRulesGetFilter() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Rule filter"})

	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{OwnerID: owner.Data.ID, Priority: 1, Match: "Uber*", Category: "Transport"})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{OwnerID: owner.Data.ID, Priority: 2, Match: "99*", Category: "Transport"})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{OwnerID: owner.Data.ID, Priority: 3, Match: "iFood*", Category: "Food"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Owner", fmt.Sprintf("owner=%s", owner.Data.ID), 3},
		{"Category", fmt.Sprintf("owner=%s&category=Transport", owner.Data.ID), 2},
		{"Match", fmt.Sprintf("owner=%s&match=Uber", owner.Data.ID), 1},
		{"Priority", fmt.Sprintf("owner=%s&priority=3", owner.Data.ID), 1},
		{"Limit", fmt.Sprintf("owner=%s&limit=2", owner.Data.ID), 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/category-rules?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.CategoryRuleListResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Len(t, response.Data, tt.len)
		})
	}
}

// TestCategoryRulesUpdate verifies partial updates.
func (suite *TestSuiteStandard) TestCategoryRulesUpdate() {
	rule := createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Match: "Uber*", Category: "Transport"})

	recorder := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{
		"category": "Travel",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryRuleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "Travel", response.Data.Category)
	assert.Equal(suite.T(), "Uber*", response.Data.Match)
}

// TestCategoryRulesDelete verifies that deleting a rule does not touch
// transactions it categorized earlier.
func (suite *TestSuiteStandard) TestCategoryRulesDelete() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Rule delete"})
	rule := createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{OwnerID: owner.Data.ID, Match: "Uber*", Category: "Transport"})
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 2350, Sector: "outflow", Label: "Uber ride"})

	recorder := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Transport", response.Data.Category, "Assigned categories must survive rule deletion")
}
