// Command store runs the standalone request store the tracker syncs against.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staffdesk/config"
	"staffdesk/database"
	"staffdesk/storeapi"
)

func main() {
	cfg := config.LoadConfig()

	db := database.Connect(cfg)
	if err := storeapi.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate store schema: %v", err)
	}

	app := storeapi.NewApp(db)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down store...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Store shutdown error: %v", err)
		}
	}()

	log.Printf("Request store starting on port %s", cfg.StorePort)
	if err := app.Listen(":" + cfg.StorePort); err != nil {
		log.Fatalf("Store failed to start: %v", err)
	}
}
