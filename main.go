package main

import (
	"net/http"

	"github.com/craftline/orders-api/config"
	"github.com/craftline/orders-api/controllers"
	"github.com/craftline/orders-api/middleware"
	"github.com/craftline/orders-api/models"
	"github.com/craftline/orders-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Logger().Fatalf("Failed to load configuration: %v", err)
	}
	config.ConfigureLogger(cfg)
	log := config.Logger()

	log.Info("Starting Craftline Orders API server...")

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := models.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Info("Database migration completed successfully")

	// Make sure a manager identity exists so the order workflows can be
	// driven on a fresh installation
	if err := ensureManagerAccount(db, cfg); err != nil {
		log.Fatalf("Failed to bootstrap manager account: %v", err)
	}

	router := setupRouter(cfg)

	// Start server
	log.Infof("Server is running on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the HTTP surface: public auth and catalog routes,
// token-guarded client order routes, and scope-guarded manager routes
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/health", healthCheck)

	auth := router.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.GET("/personal", middleware.EnsureValidToken(cfg), controllers.GetPersonal)
	}

	orders := router.Group("/orders")
	{
		orders.GET("/properties", controllers.ListProperties)

		authed := orders.Group("", middleware.EnsureValidToken(cfg))
		{
			authed.GET("", controllers.ListOrders)
			authed.POST("", controllers.CreateOrder)
			authed.GET("/:code", controllers.GetOrder)
			authed.POST("/:code/return", controllers.ReturnOrder)
		}
	}

	manage := router.Group("/manage", middleware.EnsureValidToken(cfg))
	{
		anyManager := middleware.RequireAnyScope(
			models.ScopeManageInAssemblyOnly,
			models.ScopeManageInDeliveryOnly,
		)

		manage.GET("/orders", anyManager, controllers.ListManagedOrders)
		manage.POST("/orders/accept",
			middleware.RequireScope(models.ScopeManageInAssemblyOnly), controllers.AcceptOrders)
		manage.POST("/orders/advance",
			middleware.RequireScope(models.ScopeManageInAssemblyOnly), controllers.AdvanceOrders)
		manage.POST("/orders/complete",
			middleware.RequireScope(models.ScopeManageInDeliveryOnly), controllers.CompleteOrders)
		manage.POST("/orders/cancel", anyManager, controllers.CancelOrders)

		manage.POST("/returns/:id/solution", anyManager, controllers.ResolveReturn)

		manage.POST("/colors", anyManager, controllers.CreateColor)
		manage.DELETE("/colors/:id", anyManager, controllers.DeleteColor)
		manage.POST("/sizes", anyManager, controllers.CreateSize)
		manage.DELETE("/sizes/:id", anyManager, controllers.DeleteSize)
		manage.POST("/forms", anyManager, controllers.CreateForm)
		manage.DELETE("/forms/:id", anyManager, controllers.DeleteForm)

		manage.POST("/standards", anyManager, controllers.CreateStandardOrder)
		manage.DELETE("/standards/:id", anyManager, controllers.DeleteStandardOrder)

		manage.POST("/clients", anyManager, controllers.CreateClient)
	}

	return router
}

// ensureManagerAccount creates the bootstrap manager identity from
// configuration when it does not exist yet. Skipped when the bootstrap
// credentials are not configured.
func ensureManagerAccount(db *gorm.DB, cfg *config.Config) error {
	if cfg.ManagerUsername == "" || cfg.ManagerPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("username = ?", cfg.ManagerUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(cfg.ManagerPassword)
	if err != nil {
		return err
	}

	manager := models.User{
		Username:     cfg.ManagerUsername,
		PasswordHash: hash,
		IsActive:     true,
		Scopes:       models.ScopeManageInAssemblyOnly + " " + models.ScopeManageInDeliveryOnly,
	}
	return db.Create(&manager).Error
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Craftline Orders API is running",
	})
}
