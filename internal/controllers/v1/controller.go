// Package v1 implements the HTTP API of the backend.
//
// Every resource endpoint requires a bearer token. The user of the token
// is the owner of all data the endpoint reads or writes.
package v1

import (
	"strings"
	"time"

	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/mutations"
	"github.com/fintrack/backend/internal/notify"
	"github.com/fintrack/backend/internal/preferences"
	"github.com/fintrack/backend/internal/snapshot"
	"github.com/fintrack/backend/internal/store"
	"github.com/gin-gonic/gin"
)

const contextSession = "session"

// Controller holds the collaborators of all endpoints.
type Controller struct {
	Store         store.Store
	Auth          *auth.Service
	Notifications *notify.Center
	Snapshots     *snapshot.Registry
	Preferences   preferences.Store

	// Now is the clock of the dashboard. It defaults to time.Now.
	Now func() time.Time
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}
	return co.Now()
}

// Authenticate verifies the bearer token and stores the session in the
// context. Requests without a valid token are aborted with 401.
func (co Controller) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearer(c)
		if err != nil {
			abort(c, err)
			return
		}

		session, err := co.Auth.GetSession(c.Request.Context(), token)
		if err != nil {
			abort(c, err)
			return
		}

		c.Set(contextSession, session)
		c.Next()
	}
}

func bearer(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", auth.ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

// session returns the session set by Authenticate.
func session(c *gin.Context) auth.Session {
	return c.MustGet(contextSession).(auth.Session)
}

// data returns the resources of the authenticated user.
func (co Controller) data(c *gin.Context) store.DataAccess {
	return co.Store.For(session(c).UserID)
}

// inbox returns the notifications of the authenticated user.
func (co Controller) inbox(c *gin.Context) notify.Inbox {
	return co.Notifications.For(session(c).UserID)
}

// mutations returns the mutation handler for the request.
//
// Destructive actions are confirmed with the query parameter confirm=true.
// Without it, they fail with a ConfirmationError describing the cascade.
func (co Controller) mutations(c *gin.Context) *mutations.Handler {
	user := session(c).UserID

	return mutations.New(
		co.Store.For(user),
		co.Notifications.For(user),
		mutations.Preconfirmed(c.Query("confirm") == "true"),
		co.Snapshots.For(user),
	)
}
