package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tablewise/pos-api/internal/config"
	"github.com/tablewise/pos-api/internal/domain/enum"
	"github.com/tablewise/pos-api/internal/presentation/http/handler"
	"github.com/tablewise/pos-api/internal/presentation/http/middleware"
	"github.com/tablewise/pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Restaurant *handler.RestaurantHandler
	Product    *handler.ProductHandler
	Category   *handler.CategoryHandler
	Order      *handler.OrderHandler
	Settings   *handler.SettingsHandler
	Dashboard  *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.RestaurantMiddleware())

		// Per-restaurant rate limiter
		rateLimiter := middleware.NewRestaurantRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}

	// Self-service onboarding is public: a new restaurant signs up with
	// its first admin in one request.
	v1.POST("/restaurants", h.Restaurant.Onboard)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile
	protected.GET("/profile", h.Auth.GetProfile)

	// Current restaurant
	protected.GET("/restaurants/current", h.Restaurant.Get)

	// Settings (admin only)
	settings := protected.Group("/settings")
	settings.Use(middleware.RequireRole(enum.RoleAdmin))
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", h.Settings.Update)
	}

	// Staff management (admin only)
	staff := protected.Group("/staff")
	staff.Use(middleware.RequireRole(enum.RoleAdmin))
	{
		staff.GET("", h.Auth.ListStaff)
		staff.POST("", h.Auth.CreateStaff)
	}

	// Catalog
	registerProductRoutes(protected, h)
	registerCategoryRoutes(protected, h)

	// Orders
	registerOrderRoutes(protected, h)

	// Dashboard and reports (admin only)
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequireRole(enum.RoleAdmin))
	{
		dashboard.GET("", h.Dashboard.GetToday)
		dashboard.GET("/summary", h.Dashboard.GetRangeSummary)
		dashboard.GET("/sales", h.Dashboard.GetSalesSummary)
	}

	// Super admin
	registerAdminRoutes(protected, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		// Cashiers can browse the catalog; writes are admin only.
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.POST("", middleware.RequireRole(enum.RoleAdmin), h.Product.Create)
		products.PUT("/:id", middleware.RequireRole(enum.RoleAdmin), h.Product.Update)
		products.DELETE("/:id", middleware.RequireRole(enum.RoleAdmin), h.Product.Delete)
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.POST("", middleware.RequireRole(enum.RoleAdmin), h.Category.Create)
		categories.PUT("/:id", middleware.RequireRole(enum.RoleAdmin), h.Category.Update)
		categories.DELETE("/:id", middleware.RequireRole(enum.RoleAdmin), h.Category.Delete)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.GET("/:id/invoice", h.Order.Invoice)

		// Role gating happens again in the service; the route guards are
		// the first line, not the only one.
		orders.POST("/:id/cancel-request", middleware.RequireExactRole(enum.RoleCashier), h.Order.RequestCancel)
		orders.POST("/:id/cancel-approve", middleware.RequireRole(enum.RoleAdmin), h.Order.ApproveCancel)
		orders.POST("/:id/cancel-reject", middleware.RequireRole(enum.RoleAdmin), h.Order.RejectCancel)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(enum.RoleSuperAdmin))
	{
		admin.GET("/restaurants", h.Restaurant.List)
	}
}
