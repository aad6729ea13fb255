package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arms237/backend-vehicleShop/internal/interfaces/http/middleware"
)

// applyCORSMiddleware allows browser clients from any origin; preflight
// requests are answered with 204.
func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Lang, X-Request-ID, Idempotency-Key")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "vehicleshop-backend",
			"version": "0.1.0",
		})
	})
	r.GET("/metrics", middleware.MetricsHandler())
}
