package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"careercoach/dashboard-api/internal/config"
	"careercoach/dashboard-api/internal/handlers"
	"careercoach/dashboard-api/internal/profile"
	"careercoach/dashboard-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	if cfg.Gemini.APIKey == "" {
		log.Fatal("❌ GEMINI_API_KEY is not set")
	}

	// Initialize profile store
	profileStore := profile.NewStore(cfg.Profile.StorePath)
	if err := profileStore.Load(); err != nil {
		log.Printf("⚠️  Failed to load profile store, continuing with defaults: %v\n", err)
	}
	log.Println("✅ Profile store initialized")

	// Initialize Gemini AI
	chatService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize critique service
	critiqueService := services.NewCritiqueService(chatService)
	log.Println("✅ Critique service initialized")

	// Initialize Handlers
	critiqueHandler := handlers.NewCritiqueHandler(critiqueService)
	profileHandler := handlers.NewProfileHandler(profileStore)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Career Coach Dashboard API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 180 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/critique", critiqueHandler.HandleCritique)
	api.Get("/profile", profileHandler.HandleGetProfile)
	api.Put("/profile", profileHandler.HandleUpdateProfile)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Career Coach Dashboard API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/critique",
				"GET /api/v1/profile",
				"PUT /api/v1/profile",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
