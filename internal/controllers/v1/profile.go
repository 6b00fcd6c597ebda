package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type ProfileInput struct {
	DisplayName string `json:"displayName" example:"Maria Silva"`
}

func (co Controller) RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPatch)
	r.GET("", co.GetProfile)
	r.PATCH("", co.UpdateProfile)
}

// @Summary		Get profile
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	Response[models.Profile]
// @Failure		404	{object}	httpError
// @Security		Bearer
// @Router			/v1/profile [get]
func (co Controller) GetProfile(c *gin.Context) {
	data := co.data(c)

	profile, err := data.Profiles.Get(c.Request.Context(), data.UserID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(profile))
}

// @Summary		Update profile
// @Tags			Profile
// @Produce		json
// @Success		200		{object}	Response[models.Profile]
// @Failure		400		{object}	httpError
// @Param			profile	body		ProfileInput	true	"Profile"
// @Security		Bearer
// @Router			/v1/profile [patch]
func (co Controller) UpdateProfile(c *gin.Context) {
	data := co.data(c)

	profile, err := data.Profiles.Get(c.Request.Context(), data.UserID)
	if err != nil {
		fail(c, err)
		return
	}

	in := ProfileInput{DisplayName: profile.DisplayName}
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	profile, err = co.mutations(c).UpdateProfile(c.Request.Context(), in.DisplayName)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(profile))
}
