package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/mutations"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterRuleRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetRules)
	r.POST("", co.CreateRule)

	r.OPTIONS("/:id", httputil.OptionsDelete)
	r.DELETE("/:id", co.DeleteRule)

	r.OPTIONS("/:id/toggle", httputil.OptionsPost)
	r.POST("/:id/toggle", co.ToggleRule)
}

// @Summary		Get rules
// @Tags			Rules
// @Produce		json
// @Success		200	{object}	Response[[]models.Rule]
// @Failure		500	{object}	httpError
// @Security		Bearer
// @Router			/v1/rules [get]
func (co Controller) GetRules(c *gin.Context) {
	rules, err := co.data(c).Rules.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(rules))
}

// @Summary		Create rule
// @Tags			Rules
// @Produce		json
// @Success		201		{object}	Response[models.Rule]
// @Failure		400		{object}	httpError
// @Param			rule	body		mutations.RuleInput	true	"Rule"
// @Security		Bearer
// @Router			/v1/rules [post]
func (co Controller) CreateRule(c *gin.Context) {
	var in mutations.RuleInput
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	rule, err := co.mutations(c).CreateRule(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, respond(rule))
}

// @Summary		Toggle rule
// @Description	Enables a disabled rule or disables an enabled one
// @Tags			Rules
// @Produce		json
// @Success		200	{object}	Response[models.Rule]
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Security		Bearer
// @Router			/v1/rules/{id}/toggle [post]
func (co Controller) ToggleRule(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	rule, err := co.mutations(c).ToggleRule(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(rule))
}

// @Summary		Delete rule
// @Tags			Rules
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Security		Bearer
// @Router			/v1/rules/{id} [delete]
func (co Controller) DeleteRule(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := co.mutations(c).DeleteRule(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
