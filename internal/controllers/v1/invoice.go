package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/mutations"
	"github.com/fintrack/backend/internal/store"
	ft_uuid "github.com/fintrack/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

type InvoiceQueryFilter struct {
	AccountID ft_uuid.UUID `form:"account" swaggertype:"string" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`
	Status    string       `form:"status" example:"Aberta"`
}

func (co Controller) RegisterInvoiceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetInvoices)
	r.POST("", co.OpenInvoice)

	r.OPTIONS("/:id", httputil.OptionsGet)
	r.GET("/:id", co.GetInvoice)

	r.OPTIONS("/:id/close", httputil.OptionsPost)
	r.POST("/:id/close", co.CloseInvoice)

	r.OPTIONS("/:id/pay", httputil.OptionsPost)
	r.POST("/:id/pay", co.PayInvoice)
}

// @Summary		Get credit card invoices
// @Description	Returns the invoices of the user, ordered by due date
// @Tags			Credit Invoices
// @Produce		json
// @Success		200		{object}	Response[[]models.CreditInvoice]
// @Failure		400		{object}	httpError
// @Param			account	query		string	false	"Filter by credit card ID"
// @Param			status	query		string	false	"Filter by status"
// @Security		Bearer
// @Router			/v1/credit-invoices [get]
func (co Controller) GetInvoices(c *gin.Context) {
	var filter InvoiceQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		fail(c, err)
		return
	}

	where := store.Eq{}
	if filter.AccountID != ft_uuid.Nil {
		where["account_id"] = filter.AccountID.UUID
	}

	if filter.Status != "" {
		if !models.InvoiceStatus(filter.Status).Valid() {
			fail(c, models.ErrInvalidStatus)
			return
		}
		where["status"] = filter.Status
	}

	invoices, err := co.data(c).CreditInvoices.ListWhere(c.Request.Context(), where)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(invoices))
}

// @Summary		Get credit card invoice
// @Tags			Credit Invoices
// @Produce		json
// @Success		200	{object}	Response[models.CreditInvoice]
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Security		Bearer
// @Router			/v1/credit-invoices/{id} [get]
func (co Controller) GetInvoice(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	invoice, err := co.data(c).CreditInvoices.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(invoice))
}

// @Summary		Open credit card invoice
// @Description	Opens a new invoice for a credit card. A card can only have one open invoice.
// @Tags			Credit Invoices
// @Produce		json
// @Success		201		{object}	Response[models.CreditInvoice]
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Param			invoice	body		mutations.InvoiceInput	true	"Invoice"
// @Security		Bearer
// @Router			/v1/credit-invoices [post]
func (co Controller) OpenInvoice(c *gin.Context) {
	var in mutations.InvoiceInput
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	invoice, err := co.mutations(c).OpenInvoice(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, respond(invoice))
}

// @Summary		Close credit card invoice
// @Tags			Credit Invoices
// @Produce		json
// @Success		200	{object}	Response[models.CreditInvoice]
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Security		Bearer
// @Router			/v1/credit-invoices/{id}/close [post]
func (co Controller) CloseInvoice(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	invoice, err := co.mutations(c).CloseInvoice(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(invoice))
}

// @Summary		Pay credit card invoice
// @Tags			Credit Invoices
// @Produce		json
// @Success		200	{object}	Response[models.CreditInvoice]
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Security		Bearer
// @Router			/v1/credit-invoices/{id}/pay [post]
func (co Controller) PayInvoice(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	invoice, err := co.mutations(c).PayInvoice(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(invoice))
}
