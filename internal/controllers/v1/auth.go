package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Credentials struct {
	Email    string `json:"email" binding:"required,email" example:"maria@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

type SignUpInput struct {
	Credentials
	DisplayName string `json:"displayName" example:"Maria"`
}

// RegisterAuthRoutes registers the session routes. They do not require
// authentication.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/sign-up", httputil.OptionsPost)
	r.POST("/sign-up", co.SignUp)
	r.OPTIONS("/sign-in", httputil.OptionsPost)
	r.POST("/sign-in", co.SignIn)
	r.OPTIONS("/sign-out", httputil.OptionsPost)
	r.POST("/sign-out", co.SignOut)
	r.OPTIONS("/session", httputil.OptionsGet)
	r.GET("/session", co.GetSession)
}

// @Summary		Sign up
// @Description	Creates a user and returns a session for it
// @Tags			Auth
// @Produce		json
// @Success		201		{object}	Response[auth.Session]
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Param			user	body		SignUpInput	true	"User"
// @Router			/v1/auth/sign-up [post]
func (co Controller) SignUp(c *gin.Context) {
	var in SignUpInput
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	session, err := co.Auth.SignUp(c.Request.Context(), in.Email, in.Password, in.DisplayName)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, respond(session))
}

// @Summary		Sign in
// @Description	Verifies the credentials and returns a new session
// @Tags			Auth
// @Produce		json
// @Success		200			{object}	Response[auth.Session]
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/auth/sign-in [post]
func (co Controller) SignIn(c *gin.Context) {
	var in Credentials
	if err := httputil.BindData(c, &in); err != nil {
		fail(c, err)
		return
	}

	session, err := co.Auth.SignIn(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(session))
}

// @Summary		Sign out
// @Description	Revokes the session of the bearer token
// @Tags			Auth
// @Success		204
// @Failure		401	{object}	httpError
// @Security		Bearer
// @Router			/v1/auth/sign-out [post]
func (co Controller) SignOut(c *gin.Context) {
	token, err := bearer(c)
	if err != nil {
		fail(c, err)
		return
	}

	if err := co.Auth.SignOut(c.Request.Context(), token); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get session
// @Description	Returns the session of the bearer token
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	Response[auth.Session]
// @Failure		401	{object}	httpError
// @Security		Bearer
// @Router			/v1/auth/session [get]
func (co Controller) GetSession(c *gin.Context) {
	token, err := bearer(c)
	if err != nil {
		fail(c, err)
		return
	}

	session, err := co.Auth.GetSession(c.Request.Context(), token)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, respond(session))
}
