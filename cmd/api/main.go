package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/onecore-platform/doc-analyzer-be/internal/core/auth"
	"github.com/onecore-platform/doc-analyzer-be/internal/core/csvfiles"
	"github.com/onecore-platform/doc-analyzer-be/internal/core/documents"
	"github.com/onecore-platform/doc-analyzer-be/internal/core/events"
	"github.com/onecore-platform/doc-analyzer-be/internal/core/export"
	"github.com/onecore-platform/doc-analyzer-be/internal/core/storage"
	"github.com/onecore-platform/doc-analyzer-be/internal/core/textract"
	"github.com/onecore-platform/doc-analyzer-be/internal/shared/config"
	"github.com/onecore-platform/doc-analyzer-be/internal/shared/database"
	"github.com/onecore-platform/doc-analyzer-be/internal/shared/utils"
)

func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting doc-analyzer API on port %s", cfg.Port)

	// Init database
	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()
	db.Migrate(
		&auth.User{},
		&documents.Document{},
		&csvfiles.CsvFile{},
		&csvfiles.CsvRow{},
		&events.EventLog{},
	)

	// Init object storage provider
	var store storage.Provider
	switch cfg.StorageProvider {
	case "s3":
		s3Store, err := storage.NewS3Provider(cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.AWSRegion, cfg.AWSBucket)
		if err != nil {
			log.Fatalf("❌ Failed to initialize S3 storage: %v", err)
		}
		store = s3Store
	default:
		localStore, err := storage.NewLocalProvider(cfg.LocalStorageDir)
		if err != nil {
			log.Fatalf("❌ Failed to initialize local storage: %v", err)
		}
		store = localStore
	}
	log.Printf("📦 Using storage provider: %s", store.GetProviderName())

	// Init text extraction service
	textService := textract.NewService()

	// Init services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	eventsService := events.NewService(db.GORM)
	documentsService := documents.NewService(db.GORM, store, textService, eventsService)
	csvService := csvfiles.NewService(db.GORM, store, eventsService)

	// Init handlers
	authHandler := auth.NewHandler(db.GORM, jwtService)
	documentsHandler := documents.NewHandler(documentsService)
	csvHandler := csvfiles.NewHandler(csvService)
	eventsHandler := events.NewHandler(eventsService, export.NewExcelExporter())

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName:   "Document Analyzer API",
		BodyLimit: 25 * 1024 * 1024,
	})

	// Middleware
	app.Use(cors.New())
	app.Use(utils.RequestLogger())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes
	app.Post("/auth/login", authHandler.Login)
	app.Post("/auth/refresh", auth.AuthMiddleware(jwtService), authHandler.Refresh)

	// Everything below needs an uploader token
	protected := app.Group("/", auth.AuthMiddleware(jwtService), auth.RequireRole(auth.RoleUploader))

	// Document routes
	protected.Post("/documents/analyze", documentsHandler.Analyze)
	protected.Get("/documents", documentsHandler.List)

	// CSV routes
	protected.Post("/files/upload-csv", csvHandler.Upload)

	// Event history routes
	protected.Get("/events", eventsHandler.List)
	protected.Get("/events/export", eventsHandler.Export)

	// Start server
	log.Printf("🌐 API running at :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
