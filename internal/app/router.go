package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"gabaylaguna/internal/handler"
	"gabaylaguna/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	BookingHandler  *handler.BookingHandler
	PaymentHandler  *handler.PaymentHandler
	ReviewHandler   *handler.ReviewHandler
	LocationHandler *handler.LocationHandler
	RedisClient     *redis.Client
	NewRelicApp     *newrelic.Application
	JWTSecret       string
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes, all behind bearer auth. Idempotency replay runs after
	// auth so cached responses are scoped to a verified principal.
	v1 := router.Group("/v1")
	v1.Use(middleware.AuthMiddleware(deps.JWTSecret))
	v1.Use(middleware.IdempotencyMiddleware(deps.RedisClient))
	{
		// Booking routes.
		bookings := v1.Group("/bookings")
		{
			bookings.POST("", deps.BookingHandler.Create)
			bookings.GET("", deps.BookingHandler.List)
			bookings.GET("/:id", deps.BookingHandler.Get)
			bookings.PUT("/:id/status", deps.BookingHandler.UpdateStatus)
			bookings.DELETE("/:id", deps.BookingHandler.Cancel)
			bookings.GET("/:id/guide-location", deps.LocationHandler.Latest)
		}

		// Payment routes.
		v1.POST("/payments/:method", deps.PaymentHandler.Pay)

		// Review routes.
		v1.POST("/reviews", deps.ReviewHandler.Submit)
		v1.GET("/guides/:id/reviews", deps.ReviewHandler.ListForGuide)

		// Guide location publishing.
		v1.POST("/guide-location", deps.LocationHandler.Publish)
	}

	return router
}
