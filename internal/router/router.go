package router

import (
	"errors"
	"net/http"

	docs "github.com/fintrack/backend/api"
	"github.com/fintrack/backend/internal/config"
	"github.com/fintrack/backend/internal/controllers/healthz"
	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags "-X github.com/fintrack/backend/internal/router.version=..."
var version = "0.0.0"

var errMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")

// Config sets up the engine and its middlewares.
//
// The returned teardown function unregisters the Prometheus metrics. It
// must be called before Config is called again in the same process.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}
	teardown := func() { unregisterPrometheusMetrics() }

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.APIURL))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": errMethodNotAllowed.Error()})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("allowOrigins", cfg.CORSAllowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", cfg.APIURL.String()).Str("Host", cfg.APIURL.Host).Str("Path", cfg.APIURL.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = cfg.APIURL.Host
	docs.SwaggerInfo.BasePath = cfg.APIURL.Path
	docs.SwaggerInfo.Title = "FinTrack"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for FinTrack, a personal finance tracker with accounts, credit cards, budgets and fixed expenses."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
func AttachRoutes(co v1.Controller, health healthz.Controller, group *gin.RouterGroup, enablePprof bool) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	health.RegisterRoutes(group.Group("/healthz"))

	// pprof performance profiles
	if enablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := group.Group("/v1")
	{
		api.GET("", GetV1)
		api.OPTIONS("", OptionsV1)
	}

	co.RegisterAuthRoutes(api.Group("/auth"))

	authenticated := api.Group("", co.Authenticate())
	co.RegisterAccountRoutes(authenticated.Group("/accounts"))
	co.RegisterCategoryRoutes(authenticated.Group("/categories"))
	co.RegisterTransactionRoutes(authenticated.Group("/transactions"))
	co.RegisterInvoiceRoutes(authenticated.Group("/credit-invoices"))
	co.RegisterBudgetRoutes(authenticated.Group("/budgets"))
	co.RegisterRuleRoutes(authenticated.Group("/rules"))
	co.RegisterFixedExpenseRoutes(authenticated.Group("/fixed-expenses"))
	co.RegisterMonthlyFixedExpenseRoutes(authenticated.Group("/monthly-fixed-expenses"))
	co.RegisterProfileRoutes(authenticated.Group("/profile"))
	co.RegisterDashboardRoutes(authenticated.Group("/dashboard"))
	co.RegisterNotificationRoutes(authenticated.Group("/notifications"))
	co.RegisterPreferenceRoutes(authenticated.Group("/preferences"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Health check
	Version string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Prometheus metrics
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // List endpoint for all v1 endpoints
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.BaseURL(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			V1:      url + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Auth                 string `json:"auth" example:"https://example.com/api/v1/auth"`                                   // URL of the session endpoints
	Accounts             string `json:"accounts" example:"https://example.com/api/v1/accounts"`                           // URL of account list endpoint
	Categories           string `json:"categories" example:"https://example.com/api/v1/categories"`                       // URL of category list endpoint
	Transactions         string `json:"transactions" example:"https://example.com/api/v1/transactions"`                   // URL of transaction list endpoint
	CreditInvoices       string `json:"creditInvoices" example:"https://example.com/api/v1/credit-invoices"`              // URL of credit invoice list endpoint
	Budgets              string `json:"budgets" example:"https://example.com/api/v1/budgets"`                             // URL of budget list endpoint
	Rules                string `json:"rules" example:"https://example.com/api/v1/rules"`                                 // URL of rule list endpoint
	FixedExpenses        string `json:"fixedExpenses" example:"https://example.com/api/v1/fixed-expenses"`                // URL of fixed expense list endpoint
	MonthlyFixedExpenses string `json:"monthlyFixedExpenses" example:"https://example.com/api/v1/monthly-fixed-expenses"` // URL of monthly fixed expense list endpoint
	Profile              string `json:"profile" example:"https://example.com/api/v1/profile"`                             // URL of the profile endpoint
	Dashboard            string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`                         // URL of the dashboard endpoint
	Notifications        string `json:"notifications" example:"https://example.com/api/v1/notifications"`                 // URL of notification list endpoint
	Preferences          string `json:"preferences" example:"https://example.com/api/v1/preferences/theme"`               // URL of the theme preference endpoint
}

// GetV1 returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := httputil.BaseURL(c) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Auth:                 url + "/auth",
			Accounts:             url + "/accounts",
			Categories:           url + "/categories",
			Transactions:         url + "/transactions",
			CreditInvoices:       url + "/credit-invoices",
			Budgets:              url + "/budgets",
			Rules:                url + "/rules",
			FixedExpenses:        url + "/fixed-expenses",
			MonthlyFixedExpenses: url + "/monthly-fixed-expenses",
			Profile:              url + "/profile",
			Dashboard:            url + "/dashboard",
			Notifications:        url + "/notifications",
			Preferences:          url + "/preferences/theme",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
