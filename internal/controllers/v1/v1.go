// Package v1 implements the v1 API. The handlers are thin callers: they
// bind and validate input, hand the work to the models package and render
// the result. All budgeting arithmetic lives in the calculation core.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ynam/backend/internal/httputil"
)

// RegisterRoutes registers all v1 routes with the RouterGroup that is
// passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", GetV1)
	r.OPTIONS("", OptionsV1)

	RegisterMonthRoutes(r.Group("/months"))
	RegisterAllocationRoutes(r.Group("/allocations"))
	RegisterCategoryRoutes(r.Group("/categories"))
	RegisterMatchRuleRoutes(r.Group("/match-rules"))
	RegisterTransactionRoutes(r.Group("/transactions"))
	RegisterReportRoutes(r.Group("/reports"))
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Months       string `json:"months" example:"https://example.com/v1/months"`
	Allocations  string `json:"allocations" example:"https://example.com/v1/allocations"`
	Categories   string `json:"categories" example:"https://example.com/v1/categories"`
	MatchRules   string `json:"matchRules" example:"https://example.com/v1/match-rules"`
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions"`
	Reports      string `json:"reports" example:"https://example.com/v1/reports"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := httputil.RequestPathV1(c)

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Months:       url + "/months",
			Allocations:  url + "/allocations",
			Categories:   url + "/categories",
			MatchRules:   url + "/match-rules",
			Transactions: url + "/transactions",
			Reports:      url + "/reports",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
