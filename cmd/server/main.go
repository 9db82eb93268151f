package main

import (
	"log"
	"time"

	"github.com/Coder-GW/Order-Delivery-Management-System/internal/config"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/database"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/handlers"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/migrations"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/pricing"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/redis"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/repository"
	"github.com/Coder-GW/Order-Delivery-Management-System/internal/services"
	"github.com/Coder-GW/Order-Delivery-Management-System/pkg/mailer"

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

	// Seed default staff, catalog and demo data
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize mailer client
	mailerClient := mailer.NewClient(cfg.MailerAPIURL, cfg.MailerAPIKey)

	// Initialize repositories
	staffRepo := repository.NewStaffRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	jobRepo := repository.NewDeliveryJobRepository(db)
	driverRepo := repository.NewDeliveryDriverRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Initialize services
	sessionTTL := time.Duration(cfg.SessionTimeout) * time.Second
	priceCacheTTL := time.Duration(cfg.PriceCacheTTL) * time.Second

	authService := services.NewAuthService(staffRepo, redisClient, sessionTTL)
	orderService := services.NewOrderService(orderRepo, productRepo, pricing.DefaultPriceTable())
	invoiceService := services.NewInvoiceService(orderRepo, productRepo, customerRepo, invoiceRepo, mailerClient, redisClient, priceCacheTTL)
	deliveryService := services.NewDeliveryService(jobRepo, driverRepo)
	trackingService := services.NewTrackingService(jobRepo, orderRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo, reviewRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	orderHandler := handlers.NewOrderHandler(orderService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryService)
	trackingHandler := handlers.NewTrackingHandler(trackingService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		// Staff authentication
		api.POST("/staff/login", authHandler.Login)
		api.POST("/staff/logout", authHandler.Logout)

		// Customer-facing endpoints
		api.POST("/orders", orderHandler.PlaceOrder)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.GET("/customers/:customer_id/orders", orderHandler.GetCustomerOrders)
		api.GET("/tracking/jobs", trackingHandler.ListJobs)
		api.GET("/tracking/customers/:customer_id/orders", trackingHandler.CustomerOrders)
		api.POST("/feedback", feedbackHandler.SubmitFeedback)
		api.POST("/reviews", feedbackHandler.SubmitReview)

		// Staff-only endpoints
		staff := api.Group("/")
		staff.Use(authHandler.RequireStaff())
		{
			staff.POST("/staff/register", authHandler.RegisterStaff)

			staff.GET("/orders/pending", orderHandler.GetPendingOrders)
			staff.GET("/orders/confirmed", orderHandler.GetConfirmedOrders)
			staff.POST("/orders/:id/confirm", orderHandler.ConfirmOrder)

			staff.GET("/invoices/preview/:order_id", invoiceHandler.PreviewInvoice)
			staff.POST("/invoices", invoiceHandler.GenerateInvoice)

			staff.POST("/delivery/jobs", deliveryHandler.CreateJob)
			staff.GET("/delivery/jobs", deliveryHandler.GetActiveJobs)
			staff.GET("/delivery/jobs/:job_id", deliveryHandler.GetJob)
			staff.POST("/delivery/jobs/:job_id/assign", deliveryHandler.AssignJob)
			staff.PUT("/delivery/jobs/:job_id/status", deliveryHandler.UpdateJobStatus)

			staff.POST("/delivery/drivers", deliveryHandler.RegisterDriver)
			staff.GET("/delivery/drivers/available", deliveryHandler.GetAvailableDrivers)
			staff.GET("/delivery/drivers/first-available", deliveryHandler.FindAvailableDriver)
			staff.GET("/delivery/drivers/:driver_id/schedule", deliveryHandler.GetDriverSchedule)
			staff.PUT("/delivery/drivers/:driver_id/availability", deliveryHandler.SetDriverAvailability)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
