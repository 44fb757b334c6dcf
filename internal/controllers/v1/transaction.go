package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ynam/backend/internal/httputil"
	"github.com/ynam/backend/internal/models"
	"github.com/ynam/backend/internal/types"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.PATCH("/:id", UpdateTransaction)
	}
}

// TransactionEditable contains the fields to record a transaction.
// Amounts are signed: negative for expenses, positive for income.
type TransactionEditable struct {
	Date        time.Time   `json:"date" binding:"required" example:"2025-11-14T00:00:00Z"`
	Description string      `json:"description" binding:"required" example:"TESCO STORES 2041"`
	Amount      types.Money `json:"amount" binding:"required" example:"-1250"`
}

// TransactionUpdate contains the review fields of a transaction. Setting
// a category marks the transaction as reviewed, setting ignored excludes
// it from all breakdowns.
type TransactionUpdate struct {
	Category types.CategoryName `json:"category" example:"Groceries"`
	Ignored  bool               `json:"ignored" example:"false"`
}

// TransactionQueryFilter contains the supported filters for the
// transaction list.
type TransactionQueryFilter struct {
	Unreviewed bool `form:"unreviewed"` // Only return transactions that still need review
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// @Summary		List transactions
// @Description	Returns transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{array}		models.Transaction
// @Failure		500			{object}	httputil.HTTPError
// @Param			unreviewed	query		bool	false	"Only return transactions that still need review"
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		return
	}

	transactions, err := models.Transactions(models.DB, filter.Unreviewed)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// @Summary		Record transaction
// @Description	Records a new transaction. Identical transactions (same date, description and amount) are rejected as duplicates. When a match rule matches the description, its category is attached as a suggestion
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	models.Transaction
// @Failure		400			{object}	httputil.HTTPError
// @Failure		409			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	transaction := models.Transaction{
		Date:        editable.Date,
		Description: editable.Description,
		Amount:      editable.Amount,
	}

	if err := models.CreateTransaction(models.DB, &transaction); err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// @Summary		Review transaction
// @Description	Assigns a category to a transaction and marks it as reviewed, or marks it as ignored so it never appears in breakdowns
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	models.Transaction
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			id			path		string				true	"ID of the transaction"
// @Param			transaction	body		TransactionUpdate	true	"Review data"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	var update TransactionUpdate
	if err := httputil.BindData(c, &update); err != nil {
		return
	}

	var transaction models.Transaction
	if update.Ignored {
		transaction, err = models.IgnoreTransaction(models.DB, id)
	} else {
		if update.Category == "" {
			httputil.NewError(c, http.StatusBadRequest, models.ErrCategoryNameEmpty)
			return
		}
		transaction, err = models.ReviewTransaction(models.DB, id, update.Category)
	}

	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}
