package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"brewzzy/internal/handler/api"
	"brewzzy/internal/handler/middleware"
	"brewzzy/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	sessionHandler *api.SessionHandler,
	cafeHandler *api.CafeHandler,
	bookingHandler *api.BookingHandler,
	redemptionHandler *api.RedemptionHandler,
	navigationHandler *api.NavigationHandler,
	notificationHandler *api.NotificationHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine,
		sessionHandler, cafeHandler, bookingHandler,
		redemptionHandler, navigationHandler, notificationHandler,
		sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	sessionHandler *api.SessionHandler,
	cafeHandler *api.CafeHandler,
	bookingHandler *api.BookingHandler,
	redemptionHandler *api.RedemptionHandler,
	navigationHandler *api.NavigationHandler,
	notificationHandler *api.NotificationHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/session", Handler: sessionHandler.StartSession},
			{Method: http.MethodGet, Path: "/cafes", Handler: cafeHandler.ListCafes},
			{Method: http.MethodGet, Path: "/cafes/:id", Handler: cafeHandler.GetCafe},
			{Method: http.MethodGet, Path: "/plans", Handler: cafeHandler.ListPlans},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(sessionMiddleware.RequireSession())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Submit},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.History},
				{Method: http.MethodPost, Path: "/flow", Handler: bookingHandler.OpenFlow},
				{Method: http.MethodGet, Path: "/flow", Handler: bookingHandler.GetFlow},
				{Method: http.MethodPatch, Path: "/flow", Handler: bookingHandler.UpdateIntent},
				{Method: http.MethodDelete, Path: "/flow", Handler: bookingHandler.CloseFlow},
				{Method: http.MethodGet, Path: "/:id/artifact", Handler: bookingHandler.DownloadArtifact},
			})
		}

		redemptions := apiGroup.Group("/redemptions")
		redemptions.Use(sessionMiddleware.RequireSession())
		{
			addRoutes(redemptions, []route{
				{Method: http.MethodPost, Path: "", Handler: redemptionHandler.Redeem},
				{Method: http.MethodGet, Path: "", Handler: redemptionHandler.History},
				{Method: http.MethodPost, Path: "/flow", Handler: redemptionHandler.OpenFlow},
				{Method: http.MethodDelete, Path: "/flow", Handler: redemptionHandler.CloseFlow},
				{Method: http.MethodGet, Path: "/:id/code", Handler: redemptionHandler.ExportCode},
			})
		}

		navigation := apiGroup.Group("/navigation")
		navigation.Use(sessionMiddleware.RequireSession())
		{
			addRoutes(navigation, []route{
				{Method: http.MethodGet, Path: "", Handler: navigationHandler.Current},
				{Method: http.MethodPost, Path: "", Handler: navigationHandler.Navigate},
				{Method: http.MethodPost, Path: "/scroll", Handler: navigationHandler.ScrollTo},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(sessionMiddleware.RequireSession())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: notificationHandler.Drain},
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
