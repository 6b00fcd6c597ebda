package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/mutations"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetAccounts)
		r.POST("", co.CreateAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetAccount)
		r.PATCH("/:id", co.UpdateAccount)
		r.DELETE("/:id", co.DeleteAccount)
	}
}

// @Summary		Get accounts
// @Description	Returns all accounts of the user
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	Response[[]models.Account]
// @Failure		500	{object}	httpError
// @Security		Bearer
// @Router			/v1/accounts [get]
func (co Controller) GetAccounts(c *gin.Context) {
	accounts, err := co.data(c).Accounts.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(accounts))
}

// @Summary		Get account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	Response[models.Account]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Security		Bearer
// @Router			/v1/accounts/{id} [get]
func (co Controller) GetAccount(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	account, err := co.data(c).Accounts.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(account))
}

// @Summary		Create account
// @Tags			Accounts
// @Produce		json
// @Success		201		{object}	Response[models.Account]
// @Failure		400		{object}	httpError
// @Param			account	body		mutations.AccountInput	true	"Account"
// @Security		Bearer
// @Router			/v1/accounts [post]
func (co Controller) CreateAccount(c *gin.Context) {
	var in mutations.AccountInput
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	account, err := co.mutations(c).CreateAccount(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, respond(account))
}

// @Summary		Update account
// @Description	Updates the fields of the account that are set in the body
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	Response[models.Account]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			id		path		string					true	"ID formatted as string"
// @Param			account	body		mutations.AccountInput	true	"Account"
// @Security		Bearer
// @Router			/v1/accounts/{id} [patch]
func (co Controller) UpdateAccount(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	account, err := co.data(c).Accounts.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	in := mutations.AccountInputFrom(account)
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	account, err = co.mutations(c).UpdateAccount(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(account))
}

// @Summary		Delete account
// @Description	Deletes an account with all its transactions and invoices. Needs confirm=true.
// @Tags			Accounts
// @Success		204
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			confirm	query		bool	false	"Confirms the deletion"
// @Security		Bearer
// @Router			/v1/accounts/{id} [delete]
func (co Controller) DeleteAccount(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := co.mutations(c).DeleteAccount(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
