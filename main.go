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

	"monacowatch/internal/handlers"
	"monacowatch/internal/repositories"
	"monacowatch/internal/services"
	"monacowatch/pkg/mongostore"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	// Viper reads from environment variables; a missing DATABASE_URL
	// degrades the service to store-unavailable mode instead of aborting.
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_NAME", "monacowatch")
	viper.AutomaticEnv()

	port := viper.GetString("PORT")
	databaseURL := viper.GetString("DATABASE_URL")
	databaseName := viper.GetString("DATABASE_NAME")

	// --- Initialize Document Store ---
	// The store handle is shared by every repository. When the store cannot
	// be reached the handle stays nil and reads serve empty results while
	// seeding becomes a no-op.
	var store *mongostore.Client
	if client, err := mongostore.NewClient(mongostore.Config{URI: databaseURL, Database: databaseName}); err != nil {
		log.Printf("Document store unavailable, continuing without it: %v", err)
	} else {
		store = client
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.Close(ctx); err != nil {
				log.Printf("Error closing store connection: %v", err)
			}
		}()
	}

	// --- Initialize Repositories ---
	watchRepo := repositories.NewMongoWatchRepository(store)
	blogRepo := repositories.NewMongoBlogRepository(store)

	// --- Initialize Services ---
	seedService := services.NewSeedService(watchRepo, blogRepo)
	catalogService := services.NewCatalogService(watchRepo, seedService)
	blogService := services.NewBlogService(blogRepo, seedService)

	// --- Initialize Handlers ---
	watchHandler := handlers.NewWatchHandler(catalogService)
	blogHandler := handlers.NewBlogHandler(blogService)
	systemHandler := handlers.NewSystemHandler(store, seedService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(cors.New()) // Allow all origins, as the storefront is served elsewhere

	// --- API Routes ---
	api := app.Group("/api")
	watchHandler.RegisterRoutes(api)
	blogHandler.RegisterRoutes(api)
	systemHandler.RegisterRoutes(app, api)

	// --- Start HTTP Server ---
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting server on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
