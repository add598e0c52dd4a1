package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staffdesk/cache"
	"staffdesk/config"
	"staffdesk/handlers"
	"staffdesk/middleware"
	"staffdesk/remote"
	"staffdesk/repository"
	"staffdesk/roster"
	"staffdesk/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Initialize Redis (optional, rate limiting fails open without it)
	cache.InitRedis(cfg.RedisURL)
	defer cache.Close()

	// Load the user roster
	users, err := roster.Load(cfg.RosterPath)
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}

	// Wire the request store client and repository
	store := remote.NewHTTPStore(cfg.RemoteURL, time.Duration(cfg.RemoteTimeout)*time.Second)
	repo := repository.NewRequestRepository(store)

	// Load the initial snapshot; the tracker still starts if the store is
	// down, it just begins with an empty list.
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RemoteTimeout)*time.Second)
	if err := repo.Refresh(ctx); err != nil {
		log.Printf("Initial request sync failed: %v (starting empty)", err)
	}
	cancel()

	// Initialize handlers and middleware with config
	handlers.InitHandlers(handlers.NewSessionManager(users, repo), cfg)
	middleware.InitMiddleware(cfg)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Staffdesk API",
	})

	// Middleware
	app.Use(middleware.StructuredLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Setup routes
	routes.Setup(app)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
