package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/centavos/backend/internal/controllers/v1"
	"github.com/centavos/backend/internal/ledger"
	"github.com/centavos/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Cleanup"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 1000, Sector: ledger.SectorOutflow})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{OwnerID: owner.Data.ID})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{OwnerID: owner.Data.ID})
	_ = createTestGoal(suite.T(), v1.GoalEditable{OwnerID: owner.Data.ID})
	_ = createTestReminder(suite.T(), v1.ReminderEditable{OwnerID: owner.Data.ID})

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Verify that all resources are deleted
	for _, path := range []string{"users", "transactions", "categories", "category-rules", "goals", "reminders"} {
		suite.T().Run(path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/%s", path), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0, "Resources are left over in %s", path)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"no confirmation", ""},
		{"wrong confirmation", "?confirm=on-second-thought-no"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1%s", tt.path), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response struct {
				Error string `json:"error"`
			}
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, "the confirmation for the cleanup API call was incorrect", response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
