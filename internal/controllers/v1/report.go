package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ynam/backend/internal/httputil"
	"github.com/ynam/backend/internal/models"
	"github.com/ynam/backend/internal/report"
	"github.com/ynam/backend/internal/types"
)

// RegisterReportRoutes registers the routes for reports with the
// RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsReport)
		r.GET("", GetReport)
	}
}

// ReportQuery contains the query parameters for the report endpoint.
type ReportQuery struct {
	Month time.Time `form:"month" time_format:"2006-01" time_utc:"1" binding:"required" example:"2025-11"` // Year and month in YYYY-MM format
	Sort  string    `form:"sort" example:"value"`                                                          // Sort order, "value" (default) or "alpha"
	Width int       `form:"width" example:"40"`                                                            // When positive, histogram bar lengths are included
}

// ReportResponse is the full report for a month, optionally annotated
// with histogram bar lengths scaled to the largest expense.
type ReportResponse struct {
	report.FullReport
	Bars map[types.CategoryName]int `json:"bars,omitempty"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Spending report for a month
// @Description	Returns the expense and income report for a month, with per-category budget percentages and severity bands
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Param			sort	query		string	false	"Sort order, 'value' (default) or 'alpha'"
// @Param			width	query		int		false	"When positive, histogram bar lengths are included, scaled to this width"
// @Router			/v1/reports [get]
func GetReport(c *gin.Context) {
	var query ReportQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		return
	}

	var sortBy report.SortOrder
	switch query.Sort {
	case "", string(report.SortValue):
		sortBy = report.SortValue
	case string(report.SortAlpha):
		sortBy = report.SortAlpha
	default:
		httputil.NewError(c, http.StatusBadRequest, fmt.Errorf("%w: sort must be 'value' or 'alpha'", httputil.ErrInvalidQuery))
		return
	}

	full, err := models.MonthReport(models.DB, types.MonthOf(query.Month), sortBy)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	response := ReportResponse{FullReport: full}
	if query.Width > 0 {
		response.Bars = barLengths(full, query.Width)
	}

	c.JSON(http.StatusOK, response)
}

// barLengths scales every category's amount to a bar of at most width
// characters, relative to the largest amount in its sub-report.
func barLengths(full report.FullReport, width int) map[types.CategoryName]int {
	bars := make(map[types.CategoryName]int)

	scale := func(categories []report.CategoryReport) {
		var max types.Money
		for _, entry := range categories {
			if entry.Amount.Abs() > max {
				max = entry.Amount.Abs()
			}
		}

		for _, entry := range categories {
			bars[entry.Category] = report.BarLength(entry.Amount, max, width)
		}
	}

	scale(full.Expenses.Categories)
	scale(full.Income.Categories)

	return bars
}
