package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/mutations"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PayMonthlyFixedExpenseInput struct {
	AccountID uuid.UUID `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // The account the payment is booked on
}

func (co Controller) RegisterFixedExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetFixedExpenses)
	r.POST("", co.CreateFixedExpense)

	r.OPTIONS("/generate", httputil.OptionsPost)
	r.POST("/generate", co.GenerateMonthlyFixedExpenses)

	r.OPTIONS("/:id", httputil.OptionsPatchDelete)
	r.PATCH("/:id", co.UpdateFixedExpense)
	r.DELETE("/:id", co.DeleteFixedExpense)
}

func (co Controller) RegisterMonthlyFixedExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetMonthlyFixedExpenses)

	r.OPTIONS("/:id/pay", httputil.OptionsPost)
	r.POST("/:id/pay", co.PayMonthlyFixedExpense)
}

// @Summary		Get fixed expenses
// @Tags			Fixed Expenses
// @Produce		json
// @Success		200	{object}	Response[[]models.FixedExpense]
// @Failure		500	{object}	httpError
// @Security		Bearer
// @Router			/v1/fixed-expenses [get]
func (co Controller) GetFixedExpenses(c *gin.Context) {
	expenses, err := co.data(c).FixedExpenses.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(expenses))
}

// @Summary		Create fixed expense
// @Tags			Fixed Expenses
// @Produce		json
// @Success		201				{object}	Response[models.FixedExpense]
// @Failure		400				{object}	httpError
// @Param			fixedExpense	body		mutations.FixedExpenseInput	true	"Fixed expense"
// @Security		Bearer
// @Router			/v1/fixed-expenses [post]
func (co Controller) CreateFixedExpense(c *gin.Context) {
	var in mutations.FixedExpenseInput
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	expense, err := co.mutations(c).CreateFixedExpense(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, respond(expense))
}

// @Summary		Update fixed expense
// @Description	Updates the template. Monthly instances that already exist are not changed.
// @Tags			Fixed Expenses
// @Produce		json
// @Success		200				{object}	Response[models.FixedExpense]
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Param			id				path		string						true	"ID formatted as string"
// @Param			fixedExpense	body		mutations.FixedExpenseInput	true	"Fixed expense"
// @Security		Bearer
// @Router			/v1/fixed-expenses/{id} [patch]
func (co Controller) UpdateFixedExpense(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	expense, err := co.data(c).FixedExpenses.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	in := mutations.FixedExpenseInputFrom(expense)
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	expense, err = co.mutations(c).UpdateFixedExpense(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(expense))
}

// @Summary		Delete fixed expense
// @Description	Deletes the template and all of its monthly instances. Needs confirm=true.
// @Tags			Fixed Expenses
// @Success		204
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			confirm	query		bool	false	"Confirms the deletion"
// @Security		Bearer
// @Router			/v1/fixed-expenses/{id} [delete]
func (co Controller) DeleteFixedExpense(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := co.mutations(c).DeleteFixedExpense(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Generate monthly fixed expenses
// @Description	Creates the monthly instances of all active templates that do not have one for the month yet
// @Tags			Fixed Expenses
// @Produce		json
// @Success		201		{object}	Response[[]models.MonthlyFixedExpense]
// @Failure		400		{object}	httpError
// @Param			month	query		string	false	"Month in YYYY-MM format. Defaults to the current month."
// @Security		Bearer
// @Router			/v1/fixed-expenses/generate [post]
func (co Controller) GenerateMonthlyFixedExpenses(c *gin.Context) {
	month := types.MonthOf(co.now())

	if param := c.Query("month"); param != "" {
		m, err := types.ParseMonth(param)
		if err != nil {
			fail(c, errEmptyMonth)
			return
		}
		month = m
	}

	instances, err := co.mutations(c).GenerateMonthlyInstances(c.Request.Context(), month)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, respond(instances))
}

// @Summary		Get monthly fixed expenses
// @Tags			Fixed Expenses
// @Produce		json
// @Success		200		{object}	Response[[]models.MonthlyFixedExpense]
// @Failure		400		{object}	httpError
// @Param			month	query		string	false	"Only instances of the month, YYYY-MM"
// @Security		Bearer
// @Router			/v1/monthly-fixed-expenses [get]
func (co Controller) GetMonthlyFixedExpenses(c *gin.Context) {
	instances, err := co.data(c).MonthlyFixedExpenses.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	param := c.Query("month")
	if param == "" {
		c.JSON(http.StatusOK, respond(instances))
		return
	}

	month, err := types.ParseMonth(param)
	if err != nil {
		fail(c, errEmptyMonth)
		return
	}

	filtered := instances[:0]
	for _, i := range instances {
		if i.Month.Equal(month) {
			filtered = append(filtered, i)
		}
	}

	c.JSON(http.StatusOK, respond(filtered))
}

// @Summary		Pay monthly fixed expense
// @Description	Books an expense transaction on the account and marks the instance as paid
// @Tags			Fixed Expenses
// @Produce		json
// @Success		200		{object}	Response[models.MonthlyFixedExpense]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Param			id		path		string						true	"ID formatted as string"
// @Param			payment	body		PayMonthlyFixedExpenseInput	true	"Payment"
// @Security		Bearer
// @Router			/v1/monthly-fixed-expenses/{id}/pay [post]
func (co Controller) PayMonthlyFixedExpense(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var in PayMonthlyFixedExpenseInput
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	instance, err := co.mutations(c).PayMonthlyFixedExpense(c.Request.Context(), id, in.AccountID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(instance))
}
