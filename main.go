package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"hms/config"
	"hms/controllers"
	"hms/jobs"
	"hms/routes"
	"hms/services"
	"hms/services/logger"
	"hms/storage"
	"hms/validator"

	"github.com/gin-gonic/gin"
)

func main() {
	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	validator.RegisterCustomValidators()

	store := storage.NewGormStore(config.DB)
	if err := store.AutoMigrate(); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	ledger := services.NewRoomLedger()
	hub := services.NewBookingEventHub(appLogger)
	billing := services.NewBillingService(store)

	bookings := services.NewBookingService(services.BookingServiceOptions{
		Store:   store,
		Ledger:  ledger,
		Billing: billing,
		Logger:  appLogger,
	})
	if err := bookings.LoadLedger(context.Background()); err != nil {
		log.Fatalf("Failed to load room ledger: %v", err)
	}

	timeline := services.NewTimelineService(store)
	dashboard := services.NewDashboardService(store, ledger, nil)

	overdue := services.NewOverdueService(ledger, hub, appLogger)
	jobs.SetOverdueReporter(overdue)
	jobs.SetCacheSweeper(controllers.NewCacheSweeper())
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, routes.AppServices{
		Store:     store,
		Bookings:  bookings,
		Billing:   billing,
		Timeline:  timeline,
		Dashboard: dashboard,
		Hub:       hub,
	})

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
