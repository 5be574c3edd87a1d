package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/centavos/backend/internal/controllers/v1"
	"github.com/centavos/backend/internal/ledger"
	"github.com/centavos/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestOwnerViewsNotFound verifies that the derived views 404 for
// unknown owners instead of returning empty data.
func (suite *TestSuiteStandard) TestOwnerViewsNotFound() {
	for _, view := range []string{"summary", "dashboard", "analysis"} {
		suite.T().Run(view, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/owners/%s/%s", uuid.New(), view), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
		})
	}
}

// TestOwnerSummary verifies the account totals.
func (suite *TestSuiteStandard) TestOwnerSummary() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Summary"})

	salary := createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 250000, Sector: ledger.SectorInflow, Label: "Salary", Date: time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 50000, Sector: ledger.SectorOutflow, Label: "Groceries", Date: time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)})
	rent := createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 50000, Sector: ledger.SectorOutflow, Label: "Rent", Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)})

	// Unrecognized sectors contribute to neither total
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 700, Sector: ledger.Sector("transferencia"), Date: time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC)})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/owners/%s/summary", owner.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.OwnerSummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), int64(250000), response.Data.TotalInflow)
	assert.Equal(suite.T(), int64(100000), response.Data.TotalOutflow)
	assert.Equal(suite.T(), int64(150000), response.Data.Balance)
	assert.True(suite.T(), response.Data.ExpensePercentage.Equal(decimal.RequireFromString("40")),
		"expected 40, got %s", response.Data.ExpensePercentage)

	assert.Equal(suite.T(), salary.Data.ID, response.Data.LastInflow.ID)
	assert.Equal(suite.T(), rent.Data.ID, response.Data.LastOutflow.ID)
}

// TestOwnerSummaryEmpty verifies the summary of an owner without any
// transactions.
func (suite *TestSuiteStandard) TestOwnerSummaryEmpty() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Empty summary"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/owners/%s/summary", owner.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.OwnerSummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), int64(0), response.Data.Balance)
	assert.True(suite.T(), response.Data.ExpensePercentage.IsZero(), "No inflow must yield a zero percentage")
	assert.Nil(suite.T(), response.Data.LastInflow)
	assert.Nil(suite.T(), response.Data.LastOutflow)
}

// TestOwnerDashboard verifies the period views. The dashboard is
// computed relative to the current time, so the test data is too.
func (suite *TestSuiteStandard) TestOwnerDashboard() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Dashboard"})

	now := time.Now()
	threeDaysAgo := now.AddDate(0, 0, -3)

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 1500, Sector: ledger.SectorOutflow, Label: "Coffee", Category: "Food", Date: now})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 2700, Sector: ledger.SectorOutflow, Label: "Lunch", Category: "Food", Date: now})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 8000, Sector: ledger.SectorOutflow, Label: "Pharmacy", Category: "Health", Date: threeDaysAgo})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 50000, Sector: ledger.SectorOutflow, Label: "Old rent", Category: "Housing", Date: now.AddDate(0, 0, -60)})

	// Three days ago may fall into the previous month
	monthLen := 2
	if ledger.SameCalendarMonth(threeDaysAgo, now) {
		monthLen = 3
	}

	tests := []struct {
		name         string
		query        string
		len          int
		expenseTotal int64
	}{
		{"Default is today", "", 2, 4200},
		{"Today", "?period=today", 2, 4200},
		{"Week", "?period=week", 3, 12200},
		{"Month", "?period=month", monthLen, 4200 + int64(monthLen-2)*8000},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/owners/%s/dashboard%s", owner.Data.ID, tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.OwnerDashboardResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Len(t, response.Data.Transactions, tt.len)
			assert.Equal(t, tt.expenseTotal, response.Data.ExpenseTotal)
		})
	}
}

// TestOwnerDashboardCategories verifies the per-category sums of the
// dashboard.
func (suite *TestSuiteStandard) TestOwnerDashboardCategories() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Dashboard categories"})

	now := time.Now()
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 1500, Sector: ledger.SectorOutflow, Label: "Coffee", Category: "Food", Date: now})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 8000, Sector: ledger.SectorOutflow, Label: "Pharmacy", Category: "Health", Date: now})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 2700, Sector: ledger.SectorOutflow, Label: "Lunch", Category: "Food", Date: now})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 99999, Sector: ledger.SectorInflow, Label: "Salary", Date: now})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/owners/%s/dashboard", owner.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.OwnerDashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Categories appear in the order they are first seen, inflows do
	// not contribute
	assert.Equal(suite.T(), []v1.CategorySum{
		{Category: "Food", Outflow: 4200},
		{Category: "Health", Outflow: 8000},
	}, response.Data.Categories)
}

// TestOwnerDashboardSearch verifies the label search on the dashboard.
func (suite *TestSuiteStandard) TestOwnerDashboardSearch() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Dashboard search"})

	now := time.Now()
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 1500, Sector: ledger.SectorOutflow, Label: "Coffee", Category: "Food", Date: now})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 8000, Sector: ledger.SectorOutflow, Label: "Pharmacy", Category: "Health", Date: now})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/owners/%s/dashboard?search=COFF", owner.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.OwnerDashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data.Transactions, 1)
	assert.Equal(suite.T(), int64(1500), response.Data.ExpenseTotal, "Sums must follow the search filter")
	assert.Equal(suite.T(), []v1.CategorySum{{Category: "Food", Outflow: 1500}}, response.Data.Categories)
}

// TestOwnerCategories verifies that the category list merges registry
// entries with categories observed on transactions.
func (suite *TestSuiteStandard) TestOwnerCategories() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Owner categories"})

	_ = createTestCategory(suite.T(), v1.CategoryEditable{OwnerID: owner.Data.ID, Name: "Food", Icon: "🍔"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 100, Sector: ledger.SectorOutflow, Category: "Food", Icon: "🍕"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 200, Sector: ledger.SectorOutflow, Category: "Health", Icon: "💊"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/owners/%s/categories", owner.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.OwnerCategoriesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// The registry entry wins over the inferred "Food", the icon proves it
	assert.Equal(suite.T(), []v1.CategoryEntry{
		{Name: "Food", Icon: "🍔"},
		{Name: "Health", Icon: "💊"},
	}, response.Data)
}

// TestOwnerDashboardInvalidPeriod verifies the error for unknown
// periods.
func (suite *TestSuiteStandard) TestOwnerDashboardInvalidPeriod() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Invalid period"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/owners/%s/dashboard?period=year", owner.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "the period query parameter must be one of 'today', 'week' or 'month'", response.Error)
}

// TestOwnerAnalysis verifies the month and week-of-month buckets.
func (suite *TestSuiteStandard) TestOwnerAnalysis() {
	owner := createTestUser(suite.T(), v1.UserEditable{Name: "Analysis"})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 100000, Sector: ledger.SectorInflow, Label: "Salary", Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 20000, Sector: ledger.SectorOutflow, Label: "Groceries", Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 30000, Sector: ledger.SectorOutflow, Label: "Trip", Date: time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)})

	// A March one year later lands in the existing bucket
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 5000, Sector: ledger.SectorOutflow, Label: "Cinema", Date: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)})

	// Unrecognized sectors never open a bucket
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: owner.Data.ID, Amount: 700, Sector: ledger.Sector("transferencia"), Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/owners/%s/analysis", owner.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.OwnerAnalysisResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), []v1.AnalysisMonth{
		{
			Month: "Março",
			Weeks: []v1.PeriodSums{
				{Period: "Week 1", Inflow: 100000, Outflow: 0},
				{Period: "Week 2", Inflow: 0, Outflow: 20000},
				{Period: "Week 3", Inflow: 0, Outflow: 5000},
			},
		},
		{
			Month: "Abril",
			Weeks: []v1.PeriodSums{
				{Period: "Week 1", Inflow: 0, Outflow: 30000},
			},
		},
	}, response.Data)
}
