package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/handler/api"
	"bengkel-service/internal/handler/middleware"
	"bengkel-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Booking *api.BookingHandler
	History *api.HistoryHandler
	Vehicle *api.VehicleHandler
	Catalog *api.CatalogHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// The request id comes first so recovery and every log line can quote it.
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staff := authMiddleware.RequireRoleAtLeast(user.RoleKaryawan)
	admin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		vehicles := apiGroup.Group("/vehicles")
		vehicles.Use(authMiddleware.RequireAuth())
		addRoutes(vehicles, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Vehicle.Register},
			{Method: http.MethodGet, Path: "", Handler: h.Vehicle.ListMine},
		})

		catalogGroup := apiGroup.Group("/catalog")
		catalogGroup.Use(authMiddleware.RequireAuth())
		addRoutes(catalogGroup, []route{
			{Method: http.MethodGet, Path: "/services", Handler: h.Catalog.ListServices},
			{Method: http.MethodPost, Path: "/services", Handler: h.Catalog.CreateService, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodGet, Path: "/spareparts", Handler: h.Catalog.ListSpareparts},
			{Method: http.MethodPost, Path: "/spareparts", Handler: h.Catalog.CreateSparepart, Mw: []gin.HandlerFunc{admin}},
		})

		queue := apiGroup.Group("/queue")
		queue.Use(authMiddleware.RequireAuth())
		addRoutes(queue, []route{
			{Method: http.MethodGet, Path: "/next", Handler: h.Booking.PreviewQueue},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
			{Method: http.MethodGet, Path: "/day", Handler: h.Booking.ListByDay, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
			{Method: http.MethodPost, Path: "/:id/history", Handler: h.History.Create, Mw: []gin.HandlerFunc{staff}},
		})

		histories := apiGroup.Group("/histories")
		histories.Use(authMiddleware.RequireAuth())
		addRoutes(histories, []route{
			{Method: http.MethodGet, Path: "", Handler: h.History.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.History.Get},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.History.UpdateStatus, Mw: []gin.HandlerFunc{staff}},
			{Method: http.MethodGet, Path: "/:id/invoice", Handler: h.History.Invoice},
		})
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
