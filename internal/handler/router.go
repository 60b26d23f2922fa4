package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-core/internal/handler/api"
	"booking-core/internal/handler/middleware"
	"booking-core/internal/pkg/config"
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
	wizardHandler *api.WizardHandler,
	availabilityHandler *api.AvailabilityHandler,
	roomHandler *api.RoomHandler,
	reservationHandler *api.ReservationHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, wizardHandler, availabilityHandler, roomHandler, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	wizardHandler *api.WizardHandler,
	availabilityHandler *api.AvailabilityHandler,
	roomHandler *api.RoomHandler,
	reservationHandler *api.ReservationHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		wizard := apiGroup.Group("/wizard")
		{
			addRoutes(wizard, []route{
				{Method: http.MethodPost, Path: "", Handler: wizardHandler.Start},
				{Method: http.MethodGet, Path: "/:id", Handler: wizardHandler.Get},
				{Method: http.MethodPut, Path: "/:id/stay", Handler: wizardHandler.SetStay},
				{Method: http.MethodPost, Path: "/:id/step1", Handler: wizardHandler.SubmitStep1},
				{Method: http.MethodPut, Path: "/:id/guest", Handler: wizardHandler.SetGuest},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: wizardHandler.Submit},
				{Method: http.MethodPost, Path: "/:id/back", Handler: wizardHandler.Back},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.Search},
			{Method: http.MethodGet, Path: "/rooms", Handler: roomHandler.List},
		})

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetByID},
				{Method: http.MethodGet, Path: "/:id/pdf", Handler: reservationHandler.Receipt},
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
