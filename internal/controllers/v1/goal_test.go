package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/centavos/backend/internal/controllers/v1"
	"github.com/centavos/backend/internal/models"
	"github.com/centavos/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestGoalsCreate verifies goal creation and the display amount.
func (suite *TestSuiteStandard) TestGoalsCreate() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{
		Name:         "New bicycle",
		Note:         "Saving up for the commute",
		TargetAmount: 150000,
	})

	assert.Equal(suite.T(), "New bicycle", goal.Data.Name)
	assert.False(suite.T(), goal.Data.Archived)
	assert.True(suite.T(), goal.Data.DisplayTargetAmount.Equal(decimal.RequireFromString("1500.00")))
}

// TestGoalsCreateValidation verifies that the target amount must be
// positive.
func (suite *TestSuiteStandard) TestGoalsCreateValidation() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Goal validation"})

	tests := []struct {
		name   string
		amount int64
	}{
		{"Zero target", 0},
		{"Negative target", -100},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{
				{OwnerID: owner.Data.ID, Name: tt.name, TargetAmount: tt.amount},
			})
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.GoalCreateResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Equal(t, models.ErrGoalAmountNotPositive.Error(), *response.Data[0].Error)
		})
	}
}

// TestGoalsCreateDuplicate verifies that names are unique per owner.
func (suite *TestSuiteStandard) TestGoalsCreateDuplicate() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Goal duplicates"})
	_ = createTestGoal(suite.T(), v1.GoalEditable{OwnerID: owner.Data.ID, Name: "Emergency fund", TargetAmount: 1000000})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{
		{OwnerID: owner.Data.ID, Name: "Emergency fund", TargetAmount: 500000},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.GoalCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.ErrGoalNameNotUnique.Error(), *response.Data[0].Error)

	// Another owner can use the same name
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Emergency fund", TargetAmount: 1000000})
}

// TestGoalsGetFilter verifies the query string filters on the goal
// list, most importantly the archived flag.
func (suite *TestSuiteStandard) TestGoalsGetFilter() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Goal filter"})

	_ = createTestGoal(suite.T(), v1.GoalEditable{OwnerID: owner.Data.ID, Name: "New bicycle", Note: "For the commute", TargetAmount: 150000})
	_ = createTestGoal(suite.T(), v1.GoalEditable{OwnerID: owner.Data.ID, Name: "Emergency fund", TargetAmount: 1000000})
	_ = createTestGoal(suite.T(), v1.GoalEditable{OwnerID: owner.Data.ID, Name: "Old laptop", TargetAmount: 300000, Archived: true})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Owner", fmt.Sprintf("owner=%s", owner.Data.ID), 3},
		{"Active", fmt.Sprintf("owner=%s&archived=false", owner.Data.ID), 2},
		{"Archived", fmt.Sprintf("owner=%s&archived=true", owner.Data.ID), 1},
		{"Name", fmt.Sprintf("owner=%s&name=bicycle", owner.Data.ID), 1},
		{"Note", fmt.Sprintf("owner=%s&note=commute", owner.Data.ID), 1},
		{"Search matches name", fmt.Sprintf("owner=%s&search=laptop", owner.Data.ID), 1},
		{"Search matches note", fmt.Sprintf("owner=%s&search=commute", owner.Data.ID), 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.GoalListResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Len(t, response.Data, tt.len)
		})
	}
}

// TestGoalsUpdate verifies partial updates, most importantly archiving.
func (suite *TestSuiteStandard) TestGoalsUpdate() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Name: "New bicycle", TargetAmount: 150000})

	recorder := test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{
		"archived": true,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.True(suite.T(), response.Data.Archived)
	assert.Equal(suite.T(), int64(150000), response.Data.TargetAmount)
}

// TestGoalsDelete verifies that deletion is immediate and final.
func (suite *TestSuiteStandard) TestGoalsDelete() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Name: "Short-lived", TargetAmount: 100})

	recorder := test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
