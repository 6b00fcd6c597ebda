package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/dashboard"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetDashboard)
}

// @Summary		Get dashboard
// @Description	Reloads all data of the user and returns the aggregates for the period
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	Response[dashboard.Dashboard]
// @Failure		400		{object}	httpError
// @Failure		503		{object}	httpError
// @Param			period	query		string	false	"One of today, last7days, last30days, thisMonth, thisYear. Defaults to thisMonth."
// @Security		Bearer
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	period := dashboard.DefaultPeriod
	if p := c.Query("period"); p != "" {
		period = dashboard.Period(p)
	}

	if !period.Valid() {
		fail(c, dashboard.ErrUnknownPeriod)
		return
	}

	user := session(c).UserID
	refresher := co.Snapshots.For(user)

	// A dropped refresh falls back to the snapshot of the running one
	if _, err := refresher.Refresh(c.Request.Context()); err != nil {
		co.inbox(c).Warning("Erro ao carregar dados", "Não foi possível carregar seus dados. Tente novamente.")
		fail(c, err)
		return
	}

	s, ok := refresher.Latest()
	if !ok {
		fail(c, errNotLoaded)
		return
	}

	d, err := dashboard.Build(s, period, co.now())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(d))
}
