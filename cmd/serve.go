package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yamdb-backend/internal/config"
	"yamdb-backend/internal/database"
	"yamdb-backend/internal/email"
	"yamdb-backend/internal/handlers"
	"yamdb-backend/internal/middleware"
	"yamdb-backend/internal/repository"
	"yamdb-backend/internal/routes"
	"yamdb-backend/internal/services"
	"yamdb-backend/internal/token"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func runServer() error {
	cfg := config.Load()
	log := setupLogger()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	titleRepo := repository.NewTitleRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Poster storage is optional; without it titles keep plain poster URLs.
	var posters services.PosterStorage
	if cfg.MinIO.Enabled() {
		minioService, err := services.NewMinIOService(&cfg.MinIO, log)
		if err != nil {
			return fmt.Errorf("failed to initialize MinIO service: %w", err)
		}
		posters = minioService
	} else {
		log.Warn("MinIO is not configured, poster uploads are disabled")
	}

	issuer := token.NewIssuer(cfg.JWT)
	sender := email.NewSender(cfg.Email, log)
	pageSize := cfg.Server.PageSize

	h := routes.Handlers{
		Auth:     handlers.NewAuthHandler(services.NewAuthService(userRepo, sender, issuer, nil, log), log),
		User:     handlers.NewUserHandler(services.NewUserService(userRepo, log), pageSize, log),
		Category: handlers.NewCategoryHandler(services.NewCategoryService(categoryRepo, log), pageSize, log),
		Genre:    handlers.NewGenreHandler(services.NewGenreService(genreRepo, log), pageSize, log),
		Title:    handlers.NewTitleHandler(services.NewTitleService(titleRepo, categoryRepo, genreRepo, posters, log), pageSize, log),
		Review:   handlers.NewReviewHandler(services.NewReviewService(reviewRepo, titleRepo, log), pageSize, log),
		Comment:  handlers.NewCommentHandler(services.NewCommentService(commentRepo, reviewRepo, log), pageSize, log),
		Upload:   handlers.NewUploadHandler(posters, log),
	}

	app := fiber.New(fiber.Config{
		AppName:      "YaMDb API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: handlers.ErrorHandler(log),
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(db))
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app, h, middleware.Authenticate(issuer, userRepo, log))

	go gracefulShutdown(app, log)

	log.Infof("YaMDb API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, DELETE, OPTIONS, PATCH",
		AllowCredentials: false,
		MaxAge:           86400,
	}))
}

func healthCheckHandler(db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "yamdb-backend",
			"version":   "1.0.0",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}
