package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type ThemePreference struct {
	Theme models.Theme `json:"theme" example:"dark"`
}

func (co Controller) RegisterPreferenceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/theme", httputil.OptionsGetPut)
	r.GET("/theme", co.GetTheme)
	r.PUT("/theme", co.SetTheme)
}

// @Summary		Get theme
// @Description	Returns the saved theme. Defaults to light.
// @Tags			Preferences
// @Produce		json
// @Success		200	{object}	Response[ThemePreference]
// @Security		Bearer
// @Router			/v1/preferences/theme [get]
func (co Controller) GetTheme(c *gin.Context) {
	theme, err := co.Preferences.Theme(c.Request.Context(), session(c).UserID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(ThemePreference{Theme: theme}))
}

// @Summary		Set theme
// @Tags			Preferences
// @Produce		json
// @Success		200		{object}	Response[ThemePreference]
// @Failure		400		{object}	httpError
// @Param			theme	body		ThemePreference	true	"Theme"
// @Security		Bearer
// @Router			/v1/preferences/theme [put]
func (co Controller) SetTheme(c *gin.Context) {
	var in ThemePreference
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	if err := co.Preferences.SetTheme(c.Request.Context(), session(c).UserID, in.Theme); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(in))
}
