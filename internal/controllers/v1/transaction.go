package v1

import (
	"net/http"
	"strings"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/mutations"
	"github.com/fintrack/backend/internal/store"
	"github.com/fintrack/backend/internal/types"
	ft_uuid "github.com/fintrack/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

type TransactionQueryFilter struct {
	From        string       `form:"from" example:"2024-03-01"`                                                    // First day to include
	Until       string       `form:"until" example:"2024-03-31"`                                                   // Last day to include
	Type        string       `form:"type" example:"expense"`                                                       // Filter by type
	Status      string       `form:"status" example:"cleared"`                                                     // Filter by status
	AccountID   ft_uuid.UUID `form:"account" swaggertype:"string" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`  // Filter by account ID
	CategoryID  ft_uuid.UUID `form:"category" swaggertype:"string" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // Filter by category ID. Empty for transactions without category.
	Description string       `form:"description" example:"*uber*"`                                                 // Glob pattern, * matches any text. Case insensitive.
}

// where returns the column filters for the store.
func (f TransactionQueryFilter) where(set []string) (store.Eq, error) {
	where := store.Eq{}

	if f.Type != "" {
		if !models.TransactionType(f.Type).Valid() {
			return nil, models.ErrInvalidTransactionType
		}
		where["type"] = f.Type
	}

	if f.Status != "" {
		if !models.TransactionStatus(f.Status).Valid() {
			return nil, models.ErrInvalidStatus
		}
		where["status"] = f.Status
	}

	if f.AccountID != ft_uuid.Nil {
		where["account_id"] = f.AccountID.UUID
	}

	if slices.Contains(set, "CategoryID") {
		where["category_id"] = f.CategoryID.OrNil()
	}

	return where, nil
}

// matches applies the date range and the description pattern.
func (f TransactionQueryFilter) matches(from, until types.Date) func(models.Transaction) bool {
	pattern := strings.ToLower(f.Description)

	return func(t models.Transaction) bool {
		if !from.IsZero() && t.Date.Before(from) {
			return false
		}

		if !until.IsZero() && t.Date.After(until) {
			return false
		}

		return pattern == "" || glob.Glob(pattern, strings.ToLower(t.Description))
	}
}

func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Get transactions
// @Description	Returns the transactions of the user, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	Response[[]models.Transaction]
// @Failure		400			{object}	httpError
// @Param			from		query		string	false	"First day to include, YYYY-MM-DD"
// @Param			until		query		string	false	"Last day to include, YYYY-MM-DD"
// @Param			type		query		string	false	"Filter by type"
// @Param			status		query		string	false	"Filter by status"
// @Param			account		query		string	false	"Filter by account ID"
// @Param			category	query		string	false	"Filter by category ID. Set but empty for transactions without category."
// @Param			description	query		string	false	"Glob pattern for the description"
// @Security		Bearer
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		fail(c, err)
		return
	}

	where, err := filter.where(httputil.SetFields(c.Request.URL, filter))
	if err != nil {
		fail(c, err)
		return
	}

	var from, until types.Date
	if filter.From != "" {
		if from, err = types.ParseDate(filter.From); err != nil {
			fail(c, err)
			return
		}
	}
	if filter.Until != "" {
		if until, err = types.ParseDate(filter.Until); err != nil {
			fail(c, err)
			return
		}
	}

	transactions, err := co.data(c).Transactions.ListWhere(c.Request.Context(), where)
	if err != nil {
		fail(c, err)
		return
	}

	matches := filter.matches(from, until)
	data := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if matches(t) {
			data = append(data, t)
		}
	}

	c.JSON(http.StatusOK, respond(data))
}

// @Summary		Get transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	Response[models.Transaction]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Security		Bearer
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	transaction, err := co.data(c).Transactions.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(transaction))
}

// @Summary		Create transaction
// @Description	Saves a transaction and books it on its account. Credit card purchases with more than one installment create one transaction per installment.
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	Response[[]models.Transaction]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		409			{object}	httpError
// @Param			transaction	body		mutations.TransactionInput	true	"Transaction"
// @Security		Bearer
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var in mutations.TransactionInput
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	transactions, err := co.mutations(c).SaveTransaction(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, respond(transactions))
}

// @Summary		Update transaction
// @Description	Updates the transaction. Account balances and invoices are not adjusted.
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	Response[models.Transaction]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Param			id			path		string						true	"ID formatted as string"
// @Param			transaction	body		mutations.TransactionInput	true	"Transaction"
// @Security		Bearer
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	transaction, err := co.data(c).Transactions.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	in := mutations.TransactionInputFrom(transaction)
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	transaction, err = co.mutations(c).UpdateTransaction(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(transaction))
}

// @Summary		Delete transaction
// @Description	Deletes a transaction, all installments of the same purchase and reverts the booking. Needs confirm=true.
// @Tags			Transactions
// @Success		204
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			confirm	query		bool	false	"Confirms the deletion"
// @Security		Bearer
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := co.mutations(c).DeleteTransaction(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
