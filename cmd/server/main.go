package main

import (
	"time"
	"trade_manager/internal/config"
	"trade_manager/internal/database"
	"trade_manager/internal/handlers"
	"trade_manager/internal/migrations"
	"trade_manager/internal/redis"
	"trade_manager/internal/repository"
	"trade_manager/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := migrations.RunMigrations(db, logger); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Initialize Redis session store
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	userRoleRepo := repository.NewUserRoleRepository(db)
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Initialize services
	sessionTTL := time.Duration(cfg.SessionTimeout) * time.Second
	authService := services.NewAuthService(userRepo, userRoleRepo, roleRepo, redisClient, sessionTTL, logger)
	userService := services.NewUserService(db, userRepo, roleRepo, userRoleRepo, cfg.BcryptCost, logger)
	clientService := services.NewClientService(db, clientRepo, logger)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(db, orderRepo, orderItemRepo, productRepo, clientRepo, logger)
	paymentService := services.NewPaymentService(db, paymentRepo, orderRepo, logger)
	reportService := services.NewReportService(clientRepo, orderRepo, cfg.ReportDir, logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)
	orderHandler := handlers.NewOrderHandler(orderService, productService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Setup routes
	router := gin.Default()

	router.POST("/api/login", authHandler.Login)

	api := router.Group("/api", handlers.AuthRequired(authService))
	{
		api.POST("/logout", authHandler.Logout)

		admin := api.Group("/admin", handlers.RequireAction(services.ActionManageUsers))
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.POST("/users", adminHandler.CreateUser)
			admin.PUT("/users/:id", adminHandler.UpdateUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.GET("/roles", adminHandler.ListRoles)
			admin.POST("/roles", adminHandler.CreateRole)
		}

		clients := api.Group("/clients", handlers.RequireAction(services.ActionManageClients))
		{
			clients.GET("", clientHandler.ListClients)
			clients.GET("/:id", clientHandler.GetClient)
			clients.POST("", clientHandler.CreateClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
			clients.DELETE("/:id", clientHandler.DeleteClient)
		}

		api.GET("/products", orderHandler.ListProducts)
		api.GET("/orders", orderHandler.ListOrders)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.POST("/orders", handlers.RequireAction(services.ActionCreateOrder), orderHandler.CreateOrder)
		// Field-level gating lives in the service; any role may try.
		api.PUT("/orders/:id", orderHandler.UpdateOrder)

		payments := api.Group("/payments", handlers.RequireAction(services.ActionRecordPayment))
		{
			payments.GET("", paymentHandler.ListPayments)
			payments.POST("", paymentHandler.RecordPayment)
		}

		reports := api.Group("/reports", handlers.RequireAction(services.ActionGenerateReports))
		{
			reports.POST("/clients", reportHandler.ClientsReport)
			reports.POST("/orders", reportHandler.OrdersReport)
		}
	}

	// Start server
	logger.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
