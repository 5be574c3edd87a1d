package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/centavos/backend/internal/httputil"
	"github.com/centavos/backend/internal/models"
	"github.com/centavos/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterReminderRoutes registers the routes for reminders with
// the RouterGroup that is passed.
func RegisterReminderRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsReminderList)
		r.GET("", GetReminders)
		r.POST("", CreateReminders)
	}

	// Reminder with ID
	{
		r.OPTIONS("/:id", OptionsReminderDetail)
		r.GET("/:id", GetReminder)
		r.PATCH("/:id", UpdateReminder)
		r.DELETE("/:id", DeleteReminder)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reminders
// @Success		204
// @Router			/v1/reminders [options]
func OptionsReminderList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reminders
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reminders/{id} [options]
func OptionsReminderDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Reminder{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Creates reminders
// @Description	Creates new reminders
// @Tags			Reminders
// @Produce		json
// @Success		201			{object}	ReminderCreateResponse
// @Failure		400			{object}	ReminderCreateResponse
// @Failure		404			{object}	ReminderCreateResponse
// @Failure		500			{object}	ReminderCreateResponse
// @Param			reminders	body		[]ReminderEditable	true	"Reminders"
// @Router			/v1/reminders [post]
func CreateReminders(c *gin.Context) {
	var editables []ReminderEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderCreateResponse{
			Error: &e,
		})
		return
	}
	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ReminderCreateResponse{}

	for _, editable := range editables {
		reminder := editable.model()
		err = models.DB.Create(&reminder).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newReminder(c, reminder)
		r.Data = append(r.Data, ReminderResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List reminders
// @Description	Returns a list of reminders
// @Tags			Reminders
// @Produce		json
// @Success		200	{object}	ReminderListResponse
// @Failure		400	{object}	ReminderListResponse
// @Failure		500	{object}	ReminderListResponse
// @Router			/v1/reminders [get]
// @Param			owner	query	string	false	"Filter by owner ID"
// @Param			text	query	string	false	"Filter by text"
// @Param			date	query	string	false	"Only reminders on this calendar day, e.g. 2024-03-17"
// @Param			month	query	string	false	"Only reminders in this month, e.g. 2024-03"
// @Param			offset	query	uint	false	"The offset of the first Reminder returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Reminders to return. Defaults to 50."
func GetReminders(c *gin.Context) {
	var filter ReminderQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReminderListResponse{
			Error: &s,
		})
		return
	}

	// Get the set parameters in the query string
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	model, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("date ASC").
		Where(&model, queryFields...)

	if filter.Text != "" {
		q = q.Where("text LIKE ?", fmt.Sprintf("%%%s%%", filter.Text))
	} else if slices.Contains(setFields, "Text") {
		q = q.Where("text = ''")
	}

	if slices.Contains(setFields, "Date") {
		day := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, time.UTC)
		q = q.Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1))
	}

	if slices.Contains(setFields, "Month") {
		month := types.MonthOf(filter.Month)
		q = q.Where("date >= ? AND date < ?", month.FirstDay(), month.AddDate(0, 1).FirstDay())
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Reminders and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var reminders []models.Reminder
	err = q.Find(&reminders).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReminderListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Reminder, 0)
	for _, reminder := range reminders {
		data = append(data, newReminder(c, reminder))
	}

	c.JSON(http.StatusOK, ReminderListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get reminder
// @Description	Returns a specific reminder
// @Tags			Reminders
// @Produce		json
// @Success		200	{object}	ReminderResponse
// @Failure		400	{object}	ReminderResponse
// @Failure		404	{object}	ReminderResponse
// @Failure		500	{object}	ReminderResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reminders/{id} [get]
func GetReminder(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	var reminder models.Reminder
	err = models.DB.First(&reminder, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	data := newReminder(c, reminder)
	c.JSON(http.StatusOK, ReminderResponse{Data: &data})
}

// @Summary		Update reminder
// @Description	Updates a reminder. Only values to be updated need to be specified.
// @Tags			Reminders
// @Produce		json
// @Success		200			{object}	ReminderResponse
// @Failure		400			{object}	ReminderResponse
// @Failure		404			{object}	ReminderResponse
// @Failure		500			{object}	ReminderResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			reminder	body		ReminderEditable	true	"Reminder"
// @Router			/v1/reminders/{id} [patch]
func UpdateReminder(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	var reminder models.Reminder
	err = models.DB.First(&reminder, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ReminderEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	var data ReminderEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&reminder).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	apiResource := newReminder(c, reminder)
	c.JSON(http.StatusOK, ReminderResponse{Data: &apiResource})
}

// @Summary		Delete reminder
// @Description	Deletes a reminder
// @Tags			Reminders
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reminders/{id} [delete]
func DeleteReminder(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var reminder models.Reminder
	err = models.DB.First(&reminder, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&reminder).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
