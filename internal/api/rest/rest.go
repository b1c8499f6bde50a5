package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/ordimint/mint-engine/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Eligibility check (public read access)
		v1.GET("/eligibility", handler.CheckEligibility)

		// Order endpoints (public, rate limited upstream)
		v1.POST("/orders", handler.CreateOrder)
		v1.GET("/orders/:id", handler.GetOrder)
		v1.POST("/orders/:id/verify", handler.VerifyOrder)

		// Batch endpoints (public read access)
		v1.GET("/batches", handler.ListBatches)
		v1.GET("/batches/current", handler.GetCurrentBatch)
		v1.GET("/batches/:id", handler.GetBatch)

		// Progression tick (public; force and priority overrides are
		// authenticated inside the handler, the sweeper drives the same
		// logic internally)
		v1.POST("/progression/tick", handler.TickProgression)

		// Administrative endpoints (requires authentication)
		admin := v1.Group("/admin", middleware.AdminAuth(authCfg))
		{
			admin.PUT("/batches/:id", handler.UpdateBatch)
			admin.PUT("/whitelist", handler.UpsertWhitelist)
			admin.PUT("/cooldowns/:batch_id", handler.SetCooldown)
			admin.POST("/orders/:id/status", handler.SetOrderStatus)
			admin.POST("/reconcile/:batch_id", handler.Reconcile)
			admin.POST("/payment-addresses", handler.AddPaymentAddresses)
		}
	}
}
