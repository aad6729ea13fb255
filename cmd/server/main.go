package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/arms237/backend-vehicleShop/internal/config"
	"github.com/arms237/backend-vehicleShop/internal/infrastructure/repositories"
	"github.com/arms237/backend-vehicleShop/internal/interfaces/http/handlers"
	"github.com/arms237/backend-vehicleShop/internal/interfaces/http/middleware"
	"github.com/arms237/backend-vehicleShop/internal/usecases"
	"github.com/arms237/backend-vehicleShop/pkg/jwt"
	"github.com/arms237/backend-vehicleShop/pkg/logger"
	"github.com/arms237/backend-vehicleShop/pkg/mailer"
	"github.com/arms237/backend-vehicleShop/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt:    false,
			TranslateError: true,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize mailer
	mail := mailer.New(mailer.Config{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		User:        cfg.SMTP.User,
		Password:    cfg.SMTP.Password,
		AppName:     cfg.SMTP.AppName,
		FrontendURL: cfg.SMTP.FrontendURL,
	})
	if !mail.Enabled() {
		log.Println("SMTP credentials missing, mailer disabled")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	supplierRepo := repositories.NewSupplierRepository(db)
	vehicleRepo := repositories.NewVehicleRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, roleRepo, uow, jwtService, mail)
	brandUsecase := usecases.NewBrandUsecase(brandRepo, uow)
	categoryUsecase := usecases.NewCategoryUsecase(categoryRepo, uow)
	supplierUsecase := usecases.NewSupplierUsecase(supplierRepo, uow)
	vehicleUsecase := usecases.NewVehicleUsecase(vehicleRepo, userRepo, categoryRepo, brandRepo, supplierRepo, uow)
	transactionUsecase := usecases.NewTransactionUsecase(transactionRepo, uow)
	userUsecase := usecases.NewUserUsecase(userRepo, roleRepo, uow)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	brandHandler := handlers.NewBrandHandler(brandUsecase)
	categoryHandler := handlers.NewCategoryHandler(categoryUsecase)
	supplierHandler := handlers.NewSupplierHandler(supplierUsecase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUsecase)
	transactionHandler := handlers.NewTransactionHandler(transactionUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.LocaleMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerRoutes(r, routeDeps{
		authHandler:        authHandler,
		brandHandler:       brandHandler,
		categoryHandler:    categoryHandler,
		supplierHandler:    supplierHandler,
		vehicleHandler:     vehicleHandler,
		transactionHandler: transactionHandler,
		userHandler:        userHandler,
		authMiddleware:     authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Start server
	log.Printf("VehicleShop backend starting on port %s", cfg.Server.Port)
	log.Printf("Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
