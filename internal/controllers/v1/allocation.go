package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ynam/backend/internal/budget"
	"github.com/ynam/backend/internal/httputil"
	"github.com/ynam/backend/internal/models"
	"github.com/ynam/backend/internal/types"
	"gorm.io/gorm"
)

// RegisterAllocationRoutes registers the routes for allocations with the
// RouterGroup that is passed.
func RegisterAllocationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsAllocationList)
		r.GET("", GetAllocations)
	}

	{
		r.OPTIONS("/set", OptionsAllocationMutation)
		r.POST("/set", SetAllocation)
	}

	{
		r.OPTIONS("/add", OptionsAllocationMutation)
		r.POST("/add", AddAllocation)
	}

	{
		r.OPTIONS("/remove", OptionsAllocationMutation)
		r.POST("/remove", RemoveAllocation)
	}

	{
		r.OPTIONS("/transfer", OptionsAllocationMutation)
		r.POST("/transfer", TransferAllocation)
	}
}

// AllocationEditable contains the fields for the set, add and remove
// mutations. Amounts are in minor currency units.
type AllocationEditable struct {
	Month    types.Month        `json:"month" binding:"required" example:"2025-11"`
	Category types.CategoryName `json:"category" binding:"required" example:"Groceries"`
	Amount   *types.Money       `json:"amount" binding:"required" example:"50000"`
}

// TransferEditable contains the fields for a transfer between two
// categories in the same month.
type TransferEditable struct {
	Month  types.Month        `json:"month" binding:"required" example:"2025-11"`
	From   types.CategoryName `json:"from" binding:"required" example:"Groceries"`
	To     types.CategoryName `json:"to" binding:"required" example:"EatingOut"`
	Amount *types.Money       `json:"amount" binding:"required" example:"2500"`
}

// AllocationResponse is the state of a category allocation after a
// mutation.
type AllocationResponse struct {
	Month    types.Month        `json:"month" example:"2025-11"`
	Category types.CategoryName `json:"category" example:"Groceries"`
	budget.Allocation
}

// TransferResponse is the state of both category allocations after a
// transfer.
type TransferResponse struct {
	Month types.Month        `json:"month" example:"2025-11"`
	From  types.CategoryName `json:"from" example:"Groceries"`
	To    types.CategoryName `json:"to" example:"EatingOut"`
	budget.TransferResult
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func OptionsAllocationList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations/set [options]
func OptionsAllocationMutation(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		List allocations
// @Description	Returns the raw allocation amounts for a month, keyed by category name
// @Tags			Allocations
// @Produce		json
// @Success		200		{object}	map[string]int64
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/allocations [get]
func GetAllocations(c *gin.Context) {
	var query QueryMonth
	if err := httputil.BindQuery(c, &query); err != nil {
		return
	}

	allocations, err := models.Allocations(models.DB, query.month())
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, allocations)
}

// mutateAllocation runs one of the set/add/remove mutations and renders
// the result.
func mutateAllocation(c *gin.Context, mutate func(*gorm.DB, types.Month, types.CategoryName, types.Money) (budget.Allocation, error)) {
	var editable AllocationEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	result, err := mutate(models.DB, editable.Month, editable.Category, *editable.Amount)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{
		Month:      editable.Month,
		Category:   editable.Category,
		Allocation: result,
	})
}

// @Summary		Set an allocation
// @Description	Sets a category's allocation for a month to a target amount. Setting to the current value is a no-op, setting to zero returns the full allocation to TBB
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			allocation	body		AllocationEditable	true	"Month, category and target amount"
// @Router			/v1/allocations/set [post]
func SetAllocation(c *gin.Context) {
	mutateAllocation(c, models.SetBudget)
}

// @Summary		Add to an allocation
// @Description	Moves an amount from the month's TBB pool into a category
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			allocation	body		AllocationEditable	true	"Month, category and amount to add"
// @Router			/v1/allocations/add [post]
func AddAllocation(c *gin.Context) {
	mutateAllocation(c, models.AddToBudget)
}

// @Summary		Remove from an allocation
// @Description	Returns an amount from a category to the month's TBB pool
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			allocation	body		AllocationEditable	true	"Month, category and amount to remove"
// @Router			/v1/allocations/remove [post]
func RemoveAllocation(c *gin.Context) {
	mutateAllocation(c, models.RemoveFromBudget)
}

// @Summary		Transfer between categories
// @Description	Moves an amount between two categories in the same month. The move is zero-sum and leaves the TBB pool untouched
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransferResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			transfer	body		TransferEditable	true	"Month, source, destination and amount"
// @Router			/v1/allocations/transfer [post]
func TransferAllocation(c *gin.Context) {
	var editable TransferEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	result, err := models.TransferBudget(models.DB, editable.Month, editable.From, editable.To, *editable.Amount)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransferResponse{
		Month:          editable.Month,
		From:           editable.From,
		To:             editable.To,
		TransferResult: result,
	})
}
