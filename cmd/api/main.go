package main

import (
	"context"
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
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"alfredoptarigan/ats-checker/internal/config"
	"alfredoptarigan/ats-checker/internal/handlers"
	"alfredoptarigan/ats-checker/internal/services"
)

// Multipart framing around the resume bytes.
const bodyLimitSlack = 1 << 20

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	appLogger := config.NewLogger(cfg)
	appLogger.Info("✅ Config loaded successfully", "env", cfg.Server.Env, "model", cfg.Gemini.Model)
	if cfg.Debug.RawResponse {
		appLogger.Warn("🔍 Diagnostic mode on: raw model responses will be rendered")
	}

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(context.Background(), cfg.Gemini, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to initialize Gemini AI", "error", err)
		os.Exit(1)
	}
	appLogger.Info("✅ Gemini AI initialized successfully")

	// Initialize services
	uploadService := services.NewUploadService(cfg.Storage.MaxFileSize)
	resumeParser := services.NewResumeParserService()
	analyzerService := services.NewAnalyzerService(geminiService, resumeParser, appLogger)
	appLogger.Info("✅ Services initialized successfully")

	// Initialize handlers
	pageHandler, err := handlers.NewPageHandler(analyzerService, uploadService, cfg.Debug.RawResponse)
	if err != nil {
		appLogger.Error("❌ Failed to initialize page handler", "error", err)
		os.Exit(1)
	}
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService, uploadService, cfg.Debug.RawResponse)
	appLogger.Info("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ATS Resume Checker",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Gemini.Timeout + 30*time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + bodyLimitSlack,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handlers.RegisterRoutes(app, pageHandler, analyzeHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		appLogger.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			appLogger.Error("❌ Server forced to shutdown", "error", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	appLogger.Info("🚀 Server starting", "addr", addr, "url", fmt.Sprintf("http://localhost%s", addr))

	if err := app.Listen(addr); err != nil {
		appLogger.Error("❌ Failed to start server", "error", err)
		os.Exit(1)
	}
}
