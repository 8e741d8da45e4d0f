package routes

import (
	"log/slog"

	"laundry-delivery-api/handlers"
	"laundry-delivery-api/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with the shared middleware stack and all routes
func NewRouter(h *handlers.Handler, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(log), middleware.CORS(),
		middleware.Timeout(h.Config.RequestTimeout))
	SetupRoutes(r, h)
	return r
}

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Service info ───────────────────────────────────────────────
	r.GET("/", handlers.Root)
	r.GET("/test", h.TestDatabase)
	r.GET("/schema", handlers.GetSchemas)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.GET("/state-machine", h.GetStateMachineInfo)

		// Orders
		api.GET("/orders", h.ListOrders)
		api.POST("/orders", h.CreateOrder)
		api.GET("/orders/:id", h.GetOrder)
		api.PATCH("/orders/:id/status", h.UpdateOrderStatus)

		// Users & drivers
		api.GET("/users", h.ListUsers)
		api.POST("/users", h.CreateUser)
		api.GET("/drivers", h.ListDrivers)
		api.POST("/drivers", h.CreateDriver)

		// Payments
		api.GET("/payments", h.ListPayments)
		api.POST("/payments", h.CreatePayment)
		api.PATCH("/payments/:id/status", h.UpdatePaymentStatus)
	}
}
