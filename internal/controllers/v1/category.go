package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ynam/backend/internal/httputil"
	"github.com/ynam/backend/internal/models"
	"github.com/ynam/backend/internal/types"
)

// RegisterCategoryRoutes registers the routes for categories with the
// RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}
}

// CategoryEditable contains the user-settable fields of a category.
type CategoryEditable struct {
	Name types.CategoryName `json:"name" binding:"required" example:"Groceries"`
	Note string             `json:"note" example:"Supermarkets, not restaurants"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		List categories
// @Description	Returns all categories, sorted by name
// @Tags			Categories
// @Produce		json
// @Success		200	{array}		models.Category
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	categories, err := models.Categories(models.DB)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	models.Category
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	category := models.Category{
		Name: editable.Name,
		Note: editable.Note,
	}

	if err := models.DB.Create(&category).Error; err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}
