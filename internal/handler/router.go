package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booth-reservation/internal/handler/api"
	"booth-reservation/internal/handler/middleware"
	"booth-reservation/internal/pkg/config"
	"booth-reservation/internal/usecase/shared"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Events       *api.EventHandler
	Booths       *api.BoothHandler
	Reservations *api.ReservationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	organizer := authMiddleware.RequireRoleAtLeast(shared.RoleOrganizer)
	renter := authMiddleware.RequireRoleAtLeast(shared.RoleRenter)

	apiGroup := engine.Group("/api")
	{
		events := apiGroup.Group("/events")
		addRoutes(events, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Events.Get},
		})

		eventsAuth := events.Group("")
		eventsAuth.Use(authMiddleware.RequireAuth())
		addRoutes(eventsAuth, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Events.Create, Mw: []gin.HandlerFunc{organizer}},
			{Method: http.MethodPost, Path: "/:id/booths", Handler: h.Events.CreateBooth, Mw: []gin.HandlerFunc{organizer}},
		})

		booths := apiGroup.Group("/booths")
		addRoutes(booths, []route{
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Booths.Availability},
			{Method: http.MethodGet, Path: "/:id/reservations", Handler: h.Booths.Reservations},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservations.Create, Mw: []gin.HandlerFunc{renter}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservations.Get, Mw: []gin.HandlerFunc{renter}},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Reservations.UpdateStatus, Mw: []gin.HandlerFunc{organizer}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservations.Cancel, Mw: []gin.HandlerFunc{renter}},
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
