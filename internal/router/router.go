package router

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/lovesh85/Personal-Finance-Visualizer/api"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/config"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/controllers"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/controllers/healthz"
	"github.com/lovesh85/Personal-Finance-Visualizer/internal/httputil"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// methodOrder is the order in which allowed methods are listed
// in the Allow header of 405 responses.
var methodOrder = []string{
	http.MethodOptions,
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// Config sets up the gin engine with all middlewares. The returned function
// must be called when the engine is not used anymore.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	url, err := cfg.URL()
	if err != nil {
		return nil, func() {}, err
	}

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(RequestLoggerMiddleware())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.Header("Allow", strings.Join(allowedMethods(r.Routes(), c.Request.URL.Path), ", "))
		c.JSON(http.StatusMethodNotAllowed, struct {
			Error string `json:"error"`
		}{
			Error: "this HTTP method is not allowed for the endpoint you called",
		})
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

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     methodOrder,
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.Register(r, "debug/pprof")
	}

	err = registerPrometheusMetrics()
	if err != nil {
		return nil, func() {}, err
	}

	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("could not unregister prometheus metrics")
		}
	}

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Personal Finance Visualizer"
	docs.SwaggerInfo.Description = "Track expenses and monthly budgets per category and see where the money goes."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
func AttachRoutes(co controllers.Controller, group *gin.RouterGroup) {
	docs.SwaggerInfo.Version = co.Version

	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.DELETE("", co.Cleanup)

	group.GET("/version", GetVersion(co.Version))
	group.OPTIONS("/version", OptionsVersion)

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	healthz.RegisterRoutes(group.Group("/healthz"), co.Store)

	co.RegisterTransactionRoutes(group.Group("/transactions"))
	co.RegisterBudgetRoutes(group.Group("/budgets"))
	co.RegisterCategoryRoutes(group.Group("/categories"))
	co.RegisterSummaryRoutes(group.Group("/summary"))
	co.RegisterChartRoutes(group.Group("/charts"))
	co.RegisterExportRoutes(group.Group("/export"))
}

// allowedMethods returns the methods registered for path, in methodOrder.
func allowedMethods(routes gin.RoutesInfo, path string) []string {
	registered := make(map[string]bool)
	for _, route := range routes {
		if matchRoute(route.Path, path) {
			registered[route.Method] = true
		}
	}

	allowed := make([]string, 0, len(registered))
	for _, method := range methodOrder {
		if registered[method] {
			allowed = append(allowed, method)
		}
	}

	return allowed
}

// matchRoute reports whether path is matched by the gin route template.
func matchRoute(template, path string) bool {
	want := strings.Split(strings.Trim(template, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")

	for i, segment := range want {
		if strings.HasPrefix(segment, "*") {
			return true
		}

		if i >= len(got) {
			return false
		}

		if strings.HasPrefix(segment, ":") {
			if got[i] == "" {
				return false
			}
			continue
		}

		if segment != got[i] {
			return false
		}
	}

	return len(want) == len(got)
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs         string `json:"docs" example:"https://example.com/api/docs/index.html"`         // Swagger API documentation
	Healthz      string `json:"healthz" example:"https://example.com/api/healthz"`              // Healthz endpoint
	Version      string `json:"version" example:"https://example.com/api/version"`              // Endpoint returning the version of the backend
	Metrics      string `json:"metrics" example:"https://example.com/api/metrics"`              // Endpoint returning Prometheus metrics
	Transactions string `json:"transactions" example:"https://example.com/api/transactions"`    // URL of transaction list endpoint
	Budgets      string `json:"budgets" example:"https://example.com/api/budgets"`              // URL of budget list endpoint
	Categories   string `json:"categories" example:"https://example.com/api/categories"`        // URL of category list endpoint
	Summary      string `json:"summary" example:"https://example.com/api/summary"`              // URL of the dashboard summary
	Export       string `json:"export" example:"https://example.com/api/export"`                // URL of the export endpoint
	Charts       string `json:"charts" example:"https://example.com/api/charts/categories.png"` // URL of the category chart
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(contextURL)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:         url + "/docs/index.html",
			Healthz:      url + "/healthz",
			Version:      url + "/version",
			Metrics:      url + "/metrics",
			Transactions: url + "/transactions",
			Budgets:      url + "/budgets",
			Categories:   url + "/categories",
			Summary:      url + "/summary",
			Export:       url + "/export",
			Charts:       url + "/charts/categories.png",
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
	httputil.OptionsGetDelete(c)
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
func GetVersion(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, VersionResponse{
			Data: VersionObject{
				Version: version,
			},
		})
	}
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
