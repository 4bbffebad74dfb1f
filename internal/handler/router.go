package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"spa-pos/internal/domain/user"
	"spa-pos/internal/handler/api"
	"spa-pos/internal/handler/middleware"
	"spa-pos/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Catalog     *api.CatalogHandler
	Transaction *api.TransactionHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	registry *prometheus.Registry,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	limiter *middleware.SessionRateLimiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, registry, handlers, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, registry *prometheus.Registry, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.SessionRateLimiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		terminal := apiGroup.Group("")
		terminal.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RolePOS))
		{
			addRoutes(terminal, []route{
				{Method: http.MethodGet, Path: "/catalog/services", Handler: h.Catalog.ListServices},
				{Method: http.MethodGet, Path: "/staff", Handler: h.Catalog.ListStaff},
				{Method: http.MethodGet, Path: "/staff/all", Handler: h.Catalog.ListAllStaff,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleManager)}},
				{Method: http.MethodGet, Path: "/customers/:phone", Handler: h.Catalog.FindCustomer},
			})

			t := h.Transaction
			addRoutes(terminal.Group("/transactions"), []route{
				{Method: http.MethodPost, Path: "", Handler: t.Open},
				{Method: http.MethodGet, Path: "", Handler: t.List},
				{Method: http.MethodGet, Path: "/:id", Handler: t.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: t.Discard},
				{Method: http.MethodPost, Path: "/:id/reset", Handler: t.Reset},

				{Method: http.MethodPost, Path: "/:id/lines", Handler: t.AddLine},
				{Method: http.MethodPut, Path: "/:id/lines/:serviceId/quantity", Handler: t.SetQuantity},
				{Method: http.MethodPut, Path: "/:id/lines/:serviceId/discount", Handler: t.SetLineDiscount},

				{Method: http.MethodPost, Path: "/:id/voucher", Handler: t.ApplyVoucher,
					Mw: []gin.HandlerFunc{limiter.RateLimit()}},
				{Method: http.MethodDelete, Path: "/:id/voucher", Handler: t.ResetVoucher},
				{Method: http.MethodPost, Path: "/:id/membership/search", Handler: t.SearchMembership},
				{Method: http.MethodPut, Path: "/:id/membership", Handler: t.ChooseMembership},
				{Method: http.MethodDelete, Path: "/:id/membership", Handler: t.ResetMembership},
				{Method: http.MethodPut, Path: "/:id/manual-discount", Handler: t.SetManualDiscount},
				{Method: http.MethodDelete, Path: "/:id/manual-discount", Handler: t.ClearManualDiscount},
				{Method: http.MethodPut, Path: "/:id/gst", Handler: t.SetGST},

				{Method: http.MethodPut, Path: "/:id/customer", Handler: t.SetCustomer},
				{Method: http.MethodPut, Path: "/:id/staff", Handler: t.SetStaff},
				{Method: http.MethodPut, Path: "/:id/payment", Handler: t.SetPayment},
				{Method: http.MethodPut, Path: "/:id/service-time", Handler: t.SetServiceTime},
				{Method: http.MethodPut, Path: "/:id/appointment", Handler: t.ScheduleAppointment},
				{Method: http.MethodDelete, Path: "/:id/appointment", Handler: t.ClearAppointment},

				{Method: http.MethodPost, Path: "/:id/submit", Handler: t.Submit},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
