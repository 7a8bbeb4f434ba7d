package main

import (
	"log"

	"github.com/delvaty/construccion-easy/internal/api/middleware"
	"github.com/delvaty/construccion-easy/internal/api/routes"
	"github.com/delvaty/construccion-easy/internal/config"
	"github.com/delvaty/construccion-easy/internal/config/db"
	"github.com/delvaty/construccion-easy/internal/domain/audit"
	"github.com/delvaty/construccion-easy/internal/domain/client"
	"github.com/delvaty/construccion-easy/internal/domain/document"
	"github.com/delvaty/construccion-easy/internal/domain/intake"
	"github.com/delvaty/construccion-easy/internal/domain/payment"
	"github.com/delvaty/construccion-easy/internal/domain/ticket"
	"github.com/delvaty/construccion-easy/internal/domain/user"
	"github.com/delvaty/construccion-easy/internal/repository"
	"github.com/delvaty/construccion-easy/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Initialize object storage
	store := storage.InitMinio()

	// Load the process stage catalog
	catalog, err := config.LoadStageCatalog(config.StageCatalogPath)
	if err != nil {
		log.Fatalf("Failed to load stage catalog: %v", err)
	}

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&client.Client{},
		&client.NewProcessDetail{},
		&client.OngoingProcessDetail{},
		&client.Tattoo{},
		&client.Travel{},
		&client.Relative{},
		&intake.Session{},
		&document.Document{},
		&payment.Payment{},
		&ticket.Ticket{},
		&ticket.TicketMessage{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	repos := repository.New(db.DB)
	routes.RegisterRoutes(router, repos, store, catalog)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
