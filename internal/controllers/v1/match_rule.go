package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ynam/backend/internal/httputil"
	"github.com/ynam/backend/internal/models"
	"github.com/ynam/backend/internal/types"
)

// RegisterMatchRuleRoutes registers the routes for match rules with the
// RouterGroup that is passed.
func RegisterMatchRuleRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMatchRuleList)
		r.GET("", GetMatchRules)
		r.POST("", CreateMatchRule)
	}
}

// MatchRuleEditable contains the user-settable fields of a match rule.
// The category is referenced by name and must exist.
type MatchRuleEditable struct {
	Priority uint               `json:"priority" example:"10"`
	Match    string             `json:"match" binding:"required" example:"TESCO*"`
	Category types.CategoryName `json:"category" binding:"required" example:"Groceries"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MatchRules
// @Success		204
// @Router			/v1/match-rules [options]
func OptionsMatchRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		List match rules
// @Description	Returns all match rules in evaluation order
// @Tags			MatchRules
// @Produce		json
// @Success		200	{array}		models.MatchRule
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/match-rules [get]
func GetMatchRules(c *gin.Context) {
	rules, err := models.MatchRules(models.DB)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rules)
}

// @Summary		Create match rule
// @Description	Creates a new match rule suggesting a category for transactions whose description matches a glob pattern
// @Tags			MatchRules
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.MatchRule
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			rule	body		MatchRuleEditable	true	"Match rule"
// @Router			/v1/match-rules [post]
func CreateMatchRule(c *gin.Context) {
	var editable MatchRuleEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	category, err := models.CategoryNamed(models.DB, editable.Category)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	rule := models.MatchRule{
		Priority:   editable.Priority,
		Match:      editable.Match,
		CategoryID: category.ID,
	}

	if err := models.DB.Create(&rule).Error; err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rule)
}
