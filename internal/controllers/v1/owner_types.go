package v1

import (
	"github.com/centavos/backend/internal/ledger"
	"github.com/shopspring/decimal"
)

// OwnerSummary holds the account totals of one owner.
type OwnerSummary struct {
	TotalInflow       int64           `json:"totalInflow" example:"250000"`   // Sum of all inflows in minor units
	TotalOutflow      int64           `json:"totalOutflow" example:"100000"`  // Sum of all outflows in minor units
	Balance           int64           `json:"balance" example:"150000"`       // Inflow minus outflow in minor units
	ExpensePercentage decimal.Decimal `json:"expensePercentage" example:"40"` // Outflow as percentage of inflow, one decimal place. 0 when there is no inflow.
	LastInflow        *Transaction    `json:"lastInflow"`                     // The most recent inflow, if any
	LastOutflow       *Transaction    `json:"lastOutflow"`                    // The most recent outflow, if any
}

type OwnerSummaryResponse struct {
	Data  *OwnerSummary `json:"data"`                                                          // The summary
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// CategorySum is the API representation of a per-category outflow sum.
type CategorySum struct {
	Category string `json:"category" example:"Food"`    // Name of the category
	Outflow  int64  `json:"outflow" example:"12999"`    // Outflow total in minor units
}

func newCategorySums(sums []ledger.CategorySum) []CategorySum {
	data := make([]CategorySum, 0, len(sums))
	for _, s := range sums {
		data = append(data, CategorySum{Category: s.Category, Outflow: s.Outflow})
	}

	return data
}

// PeriodSums is the API representation of the sector sums of one
// period bucket.
type PeriodSums struct {
	Period  string `json:"period" example:"Week 1"`   // Name of the period bucket
	Inflow  int64  `json:"inflow" example:"250000"`   // Inflow total in minor units
	Outflow int64  `json:"outflow" example:"100000"`  // Outflow total in minor units
}

func newPeriodSums(sums []ledger.PeriodSums) []PeriodSums {
	data := make([]PeriodSums, 0, len(sums))
	for _, s := range sums {
		data = append(data, PeriodSums{Period: s.Period, Inflow: s.Inflow, Outflow: s.Outflow})
	}

	return data
}

// CategoryEntry is one category as shown in the record entry form.
type CategoryEntry struct {
	Name string `json:"name" example:"Food"` // Name of the category
	Icon string `json:"icon" example:"🍔"`   // Icon shown with the category
}

type OwnerCategoriesResponse struct {
	Data  []CategoryEntry `json:"data"`                                                          // Registry entries followed by inferred categories
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// OwnerDashboard is the period view of one owner's transactions.
type OwnerDashboard struct {
	Period       string        `json:"period" example:"today" enums:"today,week,month"` // The period the view was computed for
	Transactions []Transaction `json:"transactions"`                                    // Transactions inside the period, oldest first
	ExpenseTotal int64         `json:"expenseTotal" example:"4200"`                     // Sum of outflows inside the period in minor units
	Categories   []CategorySum `json:"categories"`                                      // Outflow sums per category, in discovery order
}

type OwnerDashboardResponse struct {
	Data  *OwnerDashboard `json:"data"`                                                          // The dashboard
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// AnalysisMonth holds the weekly sums of one calendar month.
type AnalysisMonth struct {
	Month string       `json:"month" example:"Março"` // Localized month name
	Weeks []PeriodSums `json:"weeks"`                 // Inflow and outflow per week of the month, in discovery order
}

type OwnerAnalysisResponse struct {
	Data  []AnalysisMonth `json:"data"`                                                          // Month buckets in discovery order
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
