package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cufit/cufit-backend/internal/config"
	"github.com/cufit/cufit-backend/internal/database"
	"github.com/cufit/cufit-backend/internal/routes"
	"github.com/cufit/cufit-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Connect to Database
	if cfg.DBUrl == "" {
		log.Fatal("DB_URL is required")
	}
	ctx := context.Background()
	if err := database.ConnectDB(ctx, cfg.DBUrl); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DBUrl, "up"); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// 3. Optional integrations
	var assistant services.Assistant
	if cfg.ChatbotEnabled() {
		gemini, err := services.NewGeminiAssistant(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("Chatbot disabled: %v", err)
		} else {
			defer gemini.Close()
			assistant = gemini
		}
	} else {
		log.Println("GEMINI_API_KEY not set, chatbot disabled")
	}
	if !cfg.BillingEnabled() {
		log.Println("STRIPE_SECRET_KEY not set, billing checkout disabled")
	}

	// 4. Setup Fiber
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	if err := routes.RegisterRoutes(app, cfg, database.DB, assistant); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// 5. Start Server
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
