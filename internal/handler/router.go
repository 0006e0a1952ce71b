package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fleet-rental/internal/handler/api"
	"fleet-rental/internal/handler/middleware"
	"fleet-rental/internal/pkg/config"
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
	listingHandler *api.ListingHandler,
	bookingHandler *api.BookingHandler,
	ruleHandler *api.RuleHandler,
	paymentHandler *api.PaymentHandler,
	vehicleHandler *api.VehicleHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, listingHandler, bookingHandler, ruleHandler, paymentHandler, vehicleHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	listingHandler *api.ListingHandler,
	bookingHandler *api.BookingHandler,
	ruleHandler *api.RuleHandler,
	paymentHandler *api.PaymentHandler,
	vehicleHandler *api.VehicleHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/listings", Handler: listingHandler.SearchListings},
			{Method: http.MethodPost, Path: "/webhooks/payment", Handler: paymentHandler.HandlePaymentEvent},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireOperator())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.AdminCreateBooking},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/bookings/:id/complete", Handler: bookingHandler.CompleteBooking},
				{Method: http.MethodGet, Path: "/vehicles", Handler: vehicleHandler.ListVehicles},
				{Method: http.MethodPost, Path: "/vehicles", Handler: vehicleHandler.CreateVehicle},
				{Method: http.MethodGet, Path: "/vehicles/:id", Handler: vehicleHandler.GetVehicle},
				{Method: http.MethodGet, Path: "/rules", Handler: ruleHandler.ListRules},
				{Method: http.MethodPost, Path: "/rules", Handler: ruleHandler.CreateRule},
				{Method: http.MethodGet, Path: "/rules/:id", Handler: ruleHandler.GetRule},
				{Method: http.MethodPut, Path: "/rules/:id", Handler: ruleHandler.UpdateRule},
				{Method: http.MethodDelete, Path: "/rules/:id", Handler: ruleHandler.DeleteRule},
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
