package main

import (
	"github.com/gin-gonic/gin"

	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	"github.com/arms237/backend-vehicleShop/internal/interfaces/http/handlers"
	"github.com/arms237/backend-vehicleShop/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	brandHandler       *handlers.BrandHandler
	categoryHandler    *handlers.CategoryHandler
	supplierHandler    *handlers.SupplierHandler
	vehicleHandler     *handlers.VehicleHandler
	transactionHandler *handlers.TransactionHandler
	userHandler        *handlers.UserHandler
	authMiddleware     gin.HandlerFunc
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	requireAdmin := middleware.RequireRoles(entities.RoleAdmin)

	// Auth routes (public, profile behind the session token)
	auth := r.Group("/auth")
	{
		auth.POST("/signup", d.authHandler.Signup)
		auth.POST("/verify", d.authHandler.VerifyEmail)
		auth.POST("/login", d.authHandler.Login)
		auth.POST("/forgot-password", d.authHandler.ForgotPassword)
		auth.POST("/reset-password", d.authHandler.ResetPassword)
		auth.GET("/profile", d.authMiddleware, d.authHandler.Profile)
	}

	// Brand routes (public read, admin write)
	brands := r.Group("/brands")
	{
		brands.GET("/all", d.brandHandler.List)
		brands.POST("/create", d.authMiddleware, requireAdmin, d.brandHandler.Create)
		brands.PUT("/update/:id", d.authMiddleware, requireAdmin, d.brandHandler.Update)
		brands.DELETE("/delete/:id", d.authMiddleware, requireAdmin, d.brandHandler.Delete)
	}

	// Category routes (public read, admin write)
	category := r.Group("/category")
	{
		category.GET("/all", d.categoryHandler.List)
		category.POST("/create", d.authMiddleware, requireAdmin, d.categoryHandler.Create)
		category.PUT("/update/:id", d.authMiddleware, requireAdmin, d.categoryHandler.Update)
		category.GET("/:id", d.categoryHandler.Get)
		category.DELETE("/:id", d.authMiddleware, requireAdmin, d.categoryHandler.Delete)
	}

	// Supplier routes (public read, admin write)
	supplier := r.Group("/supplier")
	{
		supplier.GET("/all", d.supplierHandler.List)
		supplier.POST("/create", d.authMiddleware, requireAdmin, d.supplierHandler.Create)
		supplier.PUT("/update/:id", d.authMiddleware, requireAdmin, d.supplierHandler.Update)
		supplier.DELETE("/delete/:id", d.authMiddleware, requireAdmin, d.supplierHandler.Delete)
		supplier.GET("/:id", d.supplierHandler.Get)
	}

	// Vehicle routes (public read, admin write)
	vehicle := r.Group("/vehicle")
	{
		vehicle.GET("/all", d.vehicleHandler.List)
		vehicle.GET("/category/:id", d.vehicleHandler.ListByCategory)
		vehicle.POST("/create", d.authMiddleware, requireAdmin, d.vehicleHandler.Create)
		vehicle.PUT("/update/:id", d.authMiddleware, requireAdmin, d.vehicleHandler.Update)
		vehicle.DELETE("/delete/:id", d.authMiddleware, requireAdmin, d.vehicleHandler.Delete)
		vehicle.GET("/:id", d.vehicleHandler.Get)
	}

	// Transaction routes (protected)
	transaction := r.Group("/transaction")
	transaction.Use(d.authMiddleware)
	{
		transaction.GET("/all", d.transactionHandler.List)
		transaction.GET("/user/:userId", d.transactionHandler.ListByUser)
		transaction.GET("/vehicle/:vehicleId", d.transactionHandler.ListByVehicle)
		transaction.POST("/create", middleware.IdempotencyMiddleware(), d.transactionHandler.Create)
		transaction.PATCH("/update/:id/status", d.transactionHandler.UpdateStatus)
		transaction.DELETE("/delete/:id", d.transactionHandler.Delete)
		transaction.GET("/:id", d.transactionHandler.Get)
	}

	// User administration routes (admin only)
	user := r.Group("/user")
	user.Use(d.authMiddleware, requireAdmin)
	{
		user.GET("/all", d.userHandler.List)
		user.PATCH("/:id/role", d.userHandler.UpdateRole)
		user.DELETE("/delete/:id", d.userHandler.Delete)
		user.GET("/:id", d.userHandler.Get)
	}
}
