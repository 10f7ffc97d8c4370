package main

import (
	"fmt"
	"net/http"
	"os"

	"hucha/internal/config"
	"hucha/internal/database"
	"hucha/internal/handlers"
	"hucha/internal/logger"
	"hucha/internal/middleware"
	"hucha/internal/services"
	"hucha/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "hucha/internal/docs" // Import swagger docs
)

// @title           Hucha API
// @version         1.0
// @description     Hucha is a personal finance bookkeeping API: categories, savings funds, transactions, and an atomic savings ledger.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom validation tags
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	fundService := services.NewSavingsFundService(db)
	transactionService := services.NewTransactionService(db, fundService)
	ledgerService := services.NewSavingsTransactionService(db, fundService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	fundHandler := handlers.NewSavingsFundHandler(fundService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	ledgerHandler := handlers.NewSavingsTransactionHandler(ledgerService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API group
	api := router.Group("/api")

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Backend funcionando correctamente",
		})
	})

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Category routes
	protected.GET("/categories", categoryHandler.GetUserCategories)
	protected.POST("/categories", categoryHandler.CreateCategory)
	protected.POST("/categories/update", categoryHandler.UpdateCategory)
	protected.POST("/categories/delete", categoryHandler.DeleteCategory)

	// Savings fund routes
	protected.GET("/savings-funds", fundHandler.GetUserFunds)
	protected.POST("/savings-funds", fundHandler.CreateFund)
	protected.POST("/savings-funds/update", fundHandler.UpdateFund)
	protected.POST("/savings-funds/delete", fundHandler.DeleteFund)

	// Transaction routes
	protected.GET("/transactions", transactionHandler.GetUserTransactions)
	protected.POST("/transactions", transactionHandler.CreateTransaction)
	protected.POST("/transactions/update", transactionHandler.UpdateTransaction)
	protected.POST("/transactions/delete", transactionHandler.DeleteTransaction)

	// Savings transaction routes (immutable ledger: list and apply only)
	protected.GET("/savings-transactions", ledgerHandler.GetUserSavingsTransactions)
	protected.POST("/savings-transactions", ledgerHandler.CreateSavingsTransaction)

	log.Infof("Starting Hucha backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
