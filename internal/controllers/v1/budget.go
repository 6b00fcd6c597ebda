package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/mutations"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetBudgets)
	r.POST("", co.CreateBudget)

	r.OPTIONS("/:id", httputil.OptionsPatchDelete)
	r.PATCH("/:id", co.UpdateBudget)
	r.DELETE("/:id", co.DeleteBudget)
}

// @Summary		Get budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	Response[[]models.Budget]
// @Failure		500	{object}	httpError
// @Security		Bearer
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	budgets, err := co.data(c).Budgets.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(budgets))
}

// @Summary		Create budget
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	Response[models.Budget]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			budget	body		mutations.BudgetInput	true	"Budget"
// @Security		Bearer
// @Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var in mutations.BudgetInput
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	budget, err := co.mutations(c).CreateBudget(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, respond(budget))
}

// @Summary		Update budget
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	Response[models.Budget]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			id		path		string					true	"ID formatted as string"
// @Param			budget	body		mutations.BudgetInput	true	"Budget"
// @Security		Bearer
// @Router			/v1/budgets/{id} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	budget, err := co.data(c).Budgets.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	in := mutations.BudgetInputFrom(budget)
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	budget, err = co.mutations(c).UpdateBudget(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(budget))
}

// @Summary		Delete budget
// @Tags			Budgets
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Security		Bearer
// @Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := co.mutations(c).DeleteBudget(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
