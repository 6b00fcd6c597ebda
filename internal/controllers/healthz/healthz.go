// Package healthz reports whether the backend can reach its database and,
// if configured, the revocation store.
package healthz

import (
	"context"
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Pinger is a dependency that can be checked for availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Controller struct {
	DB *gorm.DB

	// Dependencies holds additional checks by name, e.g. redis.
	Dependencies map[string]Pinger
}

type Response struct {
	Error string `json:"error" example:"database: sql: database is closed"`
}

func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", co.Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		503	{object}	Response
// @Router			/healthz [get]
func (co Controller) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sqlDB, err := co.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		unhealthy(c, "database", err)
		return
	}

	for name, dependency := range co.Dependencies {
		if err := dependency.Ping(ctx); err != nil {
			unhealthy(c, name, err)
			return
		}
	}

	c.Status(http.StatusNoContent)
}

func unhealthy(c *gin.Context, dependency string, err error) {
	log.Error().Err(err).Str("dependency", dependency).Msg("health check failed")
	c.JSON(http.StatusServiceUnavailable, Response{Error: dependency + ": " + err.Error()})
}
