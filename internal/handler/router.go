package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotelres/internal/handler/api"
	"hotelres/internal/handler/middleware"
	"hotelres/internal/pkg/config"
	"hotelres/internal/pkg/metrics"
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
	authHandler *api.AuthHandler,
	hotelHandler *api.HotelHandler,
	holdHandler *api.HoldHandler,
	paymentHandler *api.PaymentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, hotelHandler, holdHandler, paymentHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	hotelHandler *api.HotelHandler,
	holdHandler *api.HoldHandler,
	paymentHandler *api.PaymentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodGet, Path: "/:id/featured", Handler: hotelHandler.GetFeatured},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "/hold", Handler: holdHandler.CreateHold},
				{Method: http.MethodDelete, Path: "/hold/:holdCode", Handler: holdHandler.CancelHold},
				{Method: http.MethodPost, Path: "/holds/release-expired", Handler: holdHandler.ReleaseExpired,
					Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/confirm", Handler: paymentHandler.Confirm},
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
