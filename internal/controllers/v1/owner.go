package v1

import (
	"net/http"
	"time"

	"github.com/centavos/backend/internal/httputil"
	"github.com/centavos/backend/internal/ledger"
	"github.com/centavos/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterOwnerRoutes registers the routes for the derived per-owner
// views with the RouterGroup that is passed.
func RegisterOwnerRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id/summary", OptionsOwnerView)
	r.GET("/:id/summary", GetOwnerSummary)

	r.OPTIONS("/:id/dashboard", OptionsOwnerView)
	r.GET("/:id/dashboard", GetOwnerDashboard)

	r.OPTIONS("/:id/analysis", OptionsOwnerView)
	r.GET("/:id/analysis", GetOwnerAnalysis)

	r.OPTIONS("/:id/categories", OptionsOwnerView)
	r.GET("/:id/categories", GetOwnerCategories)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Owners
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/owners/{id}/summary [options]
func OptionsOwnerView(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.User{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// ownerTransactions loads the owner and their transactions, oldest
// first. A missing owner is a 404, not an empty list.
func ownerTransactions(c *gin.Context) ([]models.Transaction, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return nil, false
	}

	var user models.User
	err = models.DB.First(&user, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return nil, false
	}

	transactions, err := user.Transactions(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return nil, false
	}

	return transactions, true
}

// @Summary		Get account summary
// @Description	Returns the account totals of the owner
// @Tags			Owners
// @Produce		json
// @Success		200	{object}	OwnerSummaryResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/owners/{id}/summary [get]
func GetOwnerSummary(c *gin.Context) {
	transactions, ok := ownerTransactions(c)
	if !ok {
		return
	}

	summary := ledger.Summarize(models.Records(transactions))

	data := OwnerSummary{
		TotalInflow:       summary.TotalInflow,
		TotalOutflow:      summary.TotalOutflow,
		Balance:           summary.Balance(),
		ExpensePercentage: summary.ExpensePercentage(),
	}

	// Transactions are ordered by date, so the last hit per sector wins
	for _, transaction := range transactions {
		switch transaction.Sector {
		case ledger.SectorInflow:
			t := newTransaction(c, transaction)
			data.LastInflow = &t
		case ledger.SectorOutflow:
			t := newTransaction(c, transaction)
			data.LastOutflow = &t
		}
	}

	c.JSON(http.StatusOK, OwnerSummaryResponse{Data: &data})
}

// @Summary		Get dashboard
// @Description	Returns the owner's transactions and expense sums for the requested period
// @Tags			Owners
// @Produce		json
// @Success		200		{object}	OwnerDashboardResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			period	query		string	false	"The period to compute the view for. One of 'today', 'week' or 'month'. Defaults to 'today'."
// @Param			search	query		string	false	"Only transactions whose label contains this text, case-insensitive"
// @Router			/v1/owners/{id}/dashboard [get]
func GetOwnerDashboard(c *gin.Context) {
	var params struct {
		Period string `form:"period,default=today"`
		Search string `form:"search"`
	}
	if err := c.Bind(&params); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	var inPeriod func(t, ref time.Time) bool
	switch params.Period {
	case "today":
		inPeriod = ledger.SameDay
	case "week":
		inPeriod = ledger.InWeekWindow
	case "month":
		inPeriod = ledger.SameCalendarMonth
	default:
		c.JSON(http.StatusBadRequest, httpError{
			Error: errPeriodInvalid.Error(),
		})
		return
	}

	transactions, ok := ownerTransactions(c)
	if !ok {
		return
	}

	ref := time.Now()
	data := OwnerDashboard{
		Period:       params.Period,
		Transactions: make([]Transaction, 0),
	}

	filter := ledger.Filter{SearchText: params.Search}

	matched := make([]ledger.Transaction, 0)
	for _, transaction := range transactions {
		if !inPeriod(transaction.Date, ref) {
			continue
		}

		record := transaction.Record()
		if !filter.Matches(record) {
			continue
		}

		matched = append(matched, record)
		data.Transactions = append(data.Transactions, newTransaction(c, transaction))
	}

	data.ExpenseTotal = ledger.Summarize(matched).TotalOutflow
	data.Categories = newCategorySums(ledger.SumByCategory(matched))

	c.JSON(http.StatusOK, OwnerDashboardResponse{Data: &data})
}

// @Summary		Get categories
// @Description	Returns the owner's categories: the registry entries plus categories observed on transactions
// @Tags			Owners
// @Produce		json
// @Success		200	{object}	OwnerCategoriesResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/owners/{id}/categories [get]
func GetOwnerCategories(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var categories []models.Category
	err = models.DB.Where(&models.Category{OwnerID: user.ID}).Order("created_at ASC").Find(&categories).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	transactions, err := user.Transactions(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// The entry form shows registry entries first, then categories only
	// seen on transactions. Explicit entries win per name.
	registry := ledger.NewRegistry(user.ID)
	for _, category := range categories {
		_, _ = registry.Add(category.Name, category.Icon)
	}

	data := make([]CategoryEntry, 0)
	for _, entry := range registry.List(models.Records(transactions)) {
		data = append(data, CategoryEntry{Name: entry.Name, Icon: entry.Icon})
	}

	c.JSON(http.StatusOK, OwnerCategoriesResponse{Data: data})
}

// @Summary		Get analysis
// @Description	Returns the owner's inflow and outflow sums per month and week of month
// @Tags			Owners
// @Produce		json
// @Success		200	{object}	OwnerAnalysisResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/owners/{id}/analysis [get]
func GetOwnerAnalysis(c *gin.Context) {
	transactions, ok := ownerTransactions(c)
	if !ok {
		return
	}

	// Bucket by localized month name in discovery order. Two Marches a
	// year apart share one bucket, exactly like the chart this feeds.
	buckets := make([][]ledger.Transaction, 0)
	index := make(map[string]int)
	names := make([]string, 0)

	for _, transaction := range transactions {
		record := transaction.Record()
		if !record.Sector.Recognized() {
			continue
		}

		name := ledger.MonthName(record.Timestamp)
		i, seen := index[name]
		if !seen {
			i = len(buckets)
			index[name] = i
			names = append(names, name)
			buckets = append(buckets, nil)
		}

		buckets[i] = append(buckets[i], record)
	}

	data := make([]AnalysisMonth, 0, len(buckets))
	for i, bucket := range buckets {
		data = append(data, AnalysisMonth{
			Month: names[i],
			Weeks: newPeriodSums(ledger.SumByPeriod(bucket, ledger.WeekOfMonth)),
		})
	}

	c.JSON(http.StatusOK, OwnerAnalysisResponse{Data: data})
}
