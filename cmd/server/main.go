package main

import (
	"log"
	"time"

	"pizza_delivery/internal/config"
	"pizza_delivery/internal/database"
	"pizza_delivery/internal/handlers"
	"pizza_delivery/internal/migrations"
	"pizza_delivery/internal/pricing"
	"pizza_delivery/internal/redis"
	"pizza_delivery/internal/repository"
	"pizza_delivery/internal/services"
	"pizza_delivery/pkg/notify"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Migrate schema and seed default data
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(
		cfg.RedisURL,
		time.Duration(cfg.CartTTL)*time.Second,
		time.Duration(cfg.SessionTimeout)*time.Second,
	)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize notification gateway
	var notifier services.Notifier
	if cfg.NotifyEnabled {
		notifier = notify.NewClient(cfg.NotifyAPIURL, cfg.NotifyUsername, cfg.NotifyPassword)
	}

	// Initialize repositories
	pizzaRepo := repository.NewPizzaRepository(db)
	extraRepo := repository.NewExtraRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)

	// Initialize services
	calculator := pricing.NewCalculator(pricing.Policy{ApplyDiscount: cfg.ApplyDiscount})
	catalogService := services.NewCatalogService(pizzaRepo, extraRepo)
	cartService := services.NewCartService(catalogService, calculator, redisClient)
	orderService := services.NewOrderService(orderRepo, redisClient, notifier)
	userService := services.NewUserService(userRepo, addressRepo, redisClient)
	dashboardService := services.NewDashboardService(orderRepo)

	// Initialize handlers
	storefrontHandler := handlers.NewStorefrontHandler(catalogService, cartService, orderService, userService)
	adminHandler := handlers.NewAdminHandler(catalogService, orderService, dashboardService, userService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		// Catalog
		api.GET("/pizzas", storefrontHandler.ListPizzas)
		api.GET("/pizzas/:id", storefrontHandler.GetPizza)
		api.GET("/extras", storefrontHandler.ListExtras)
		api.POST("/pricing/quote", storefrontHandler.QuotePrice)

		// Cart
		api.GET("/cart", storefrontHandler.GetCart)
		api.POST("/cart/items", storefrontHandler.AddCartItem)
		api.PUT("/cart/items/:key", storefrontHandler.SetCartItemQuantity)
		api.POST("/cart/items/:key/increment", storefrontHandler.IncrementCartItem)
		api.POST("/cart/items/:key/decrement", storefrontHandler.DecrementCartItem)
		api.DELETE("/cart/items/:key", storefrontHandler.RemoveCartItem)
		api.DELETE("/cart", storefrontHandler.ClearCart)

		// Orders
		api.POST("/orders", storefrontHandler.Checkout)
		api.GET("/orders/:id", storefrontHandler.GetOrder)

		// Auth
		api.POST("/auth/register", storefrontHandler.Register)
		api.POST("/auth/login", storefrontHandler.Login)
		api.POST("/auth/logout", storefrontHandler.Logout)
	}

	profile := api.Group("/profile", handlers.AuthRequired(userService))
	{
		profile.GET("/orders", storefrontHandler.ListMyOrders)
		profile.POST("/orders/:id/repeat", storefrontHandler.RepeatOrder)
		profile.GET("/addresses", storefrontHandler.ListAddresses)
		profile.POST("/addresses", storefrontHandler.AddAddress)
		profile.PATCH("/addresses/:id", storefrontHandler.UpdateAddress)
		profile.DELETE("/addresses/:id", storefrontHandler.DeleteAddress)
	}

	api.POST("/admin/login", adminHandler.Login)
	admin := api.Group("/admin", handlers.AdminRequired(userService))
	{
		admin.POST("/pizzas", adminHandler.CreatePizza)
		admin.PATCH("/pizzas/:id", adminHandler.UpdatePizza)
		admin.DELETE("/pizzas/:id", adminHandler.DeletePizza)
		admin.GET("/orders", adminHandler.ListOrders)
		admin.GET("/orders/:id", adminHandler.GetOrder)
		admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)
		admin.GET("/dashboard", adminHandler.Dashboard)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
