// @title Kids Edu API
// @version 1.0
// @description Arithmetic and picture vocabulary games for children.
// @host localhost:8001
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "kidsedu/cmd/api/docs"
	"kidsedu/internal/adapter/storage"
	"kidsedu/internal/bootstrap"
	"kidsedu/internal/config"
	"kidsedu/internal/handler"
	"kidsedu/internal/logger"
	"kidsedu/internal/middleware"
	"kidsedu/internal/service"
	"kidsedu/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

const (
	startupTimeout  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		// the error handler has not run yet, so take the status from the error
		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Bool("failed", err != nil),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	vocabularyStore, err := bootstrap.OpenVocabulary(startupCtx, cfg)
	cancelStartup()
	if err != nil {
		// the games still run, vocabulary endpoints answer 503
		appLogger.Error("Failed to open vocabulary store", zap.Error(err))
	}
	defer vocabularyStore.Close()

	// Initialize services
	mathService := service.NewMathService(nil)
	vocabularyService := service.NewVocabularyService(vocabularyStore.Repo, vocabularyStore.Storage, service.VocabularyServiceOptions{
		Cache:   vocabularyStore.Cache,
		ItemTTL: cfg.Redis.ItemTTL,
	})

	checks := map[string]service.Pinger{}
	if vocabularyStore.Repo != nil {
		checks["database"] = vocabularyStore.Repo
	}
	if vocabularyStore.Cache != nil {
		checks["redis"] = vocabularyStore.Cache
	}
	healthService := service.NewHealthService(checks)

	app := fiber.New(fiber.Config{
		AppName:      config.AppName,
		ErrorHandler: middleware.ErrorHandler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    cfg.Server.BodyLimitMB * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	if cfg.Storage.Driver == "local" {
		app.Static(storage.PublicPrefix, cfg.Storage.LocalDir)
	}

	handler.RegisterRoutes(app, handler.Handlers{
		Pages:      handler.NewPageHandler(web.Pages()),
		Math:       handler.NewMathHandler(mathService),
		Vocabulary: handler.NewVocabularyHandler(vocabularyService),
		Health:     handler.NewHealthHandler(healthService),
	})

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.Bool("vocabulary_configured", vocabularyStore.Repo != nil),
		)
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
