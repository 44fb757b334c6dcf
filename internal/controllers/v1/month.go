package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ynam/backend/internal/httputil"
	"github.com/ynam/backend/internal/models"
	"github.com/ynam/backend/internal/types"
)

// RegisterMonthRoutes registers the routes for months with the
// RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMonth)
		r.GET("", GetMonth)
	}

	{
		r.OPTIONS("/tbb", OptionsMonthTBB)
		r.POST("/tbb", SetMonthTBB)
	}

	{
		r.OPTIONS("/rollover", OptionsMonthRollover)
		r.POST("/rollover", RolloverMonth)
	}
}

// TBBEditable contains the fields to set the To Be Budgeted pool of a
// month.
type TBBEditable struct {
	Month  types.Month  `json:"month" binding:"required" example:"2025-11"`
	Amount *types.Money `json:"amount" binding:"required" example:"120000"` // The pool for the month, in minor currency units
}

// RolloverEditable names the month to roll over into its following month.
type RolloverEditable struct {
	Month types.Month `json:"month" binding:"required" example:"2025-11"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months/tbb [options]
func OptionsMonthTBB(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months/rollover [options]
func OptionsMonthRollover(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Budget status for a month
// @Description	Returns the consolidated budget snapshot for a month: the TBB pool, the total allocated, the remaining TBB and the per-category availability
// @Tags			Months
// @Produce		json
// @Success		200		{object}	budget.Status
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	var query QueryMonth
	if err := httputil.BindQuery(c, &query); err != nil {
		return
	}

	status, err := models.BudgetStatus(models.DB, query.month())
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// @Summary		Set the TBB pool
// @Description	Sets the To Be Budgeted pool for a month, overwriting any existing value
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		200	{object}	models.MonthConfig
// @Failure		400	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			tbb	body		TBBEditable	true	"Month and pool amount"
// @Router			/v1/months/tbb [post]
func SetMonthTBB(c *gin.Context) {
	var editable TBBEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if err := models.SetMonthlyTBB(models.DB, editable.Month, *editable.Amount); err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MonthConfig{
		Month: editable.Month,
		TBB:   *editable.Amount,
	})
}

// @Summary		Roll a month over
// @Description	Copies the month's allocations into the following month and sets the following month's TBB pool to this month's pool plus all unspent category amounts
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		201			{object}	budget.RolloverSummary
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			rollover	body		RolloverEditable	true	"The source month"
// @Router			/v1/months/rollover [post]
func RolloverMonth(c *gin.Context) {
	var editable RolloverEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	summary, err := models.RolloverToNextMonth(models.DB, editable.Month)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, summary)
}
