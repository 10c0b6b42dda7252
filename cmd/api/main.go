package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/tablewise/pos-api/internal/application/service"
	"github.com/tablewise/pos-api/internal/config"
	"github.com/tablewise/pos-api/internal/infrastructure/database"
	"github.com/tablewise/pos-api/internal/infrastructure/repository"
	"github.com/tablewise/pos-api/internal/presentation/http/handler"
	"github.com/tablewise/pos-api/internal/presentation/http/routes"
	"github.com/tablewise/pos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the platform super admin if configured
	if err := database.SeedSuperAdmin(db, cfg.Seed.SuperAdminEmail, cfg.Seed.SuperAdminPassword); err != nil {
		log.Printf("Warning: Failed to seed super admin: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	restaurantRepo := repository.NewRestaurantRepository(db)
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	restaurantService := service.NewRestaurantService(restaurantRepo)
	settingsService := service.NewSettingsService(restaurantRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, restaurantRepo, sequenceRepo)
	invoiceService := service.NewInvoiceService(orderRepo, restaurantRepo)
	dashboardService := service.NewDashboardService(orderRepo, analyticsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Restaurant: handler.NewRestaurantHandler(restaurantService),
		Product:    handler.NewProductHandler(productService),
		Category:   handler.NewCategoryHandler(categoryService),
		Order:      handler.NewOrderHandler(orderService, invoiceService),
		Settings:   handler.NewSettingsHandler(settingsService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
