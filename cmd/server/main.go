// Command main is the entry point for the FriendConnect backend server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"friendconnect/internal/config"
	"friendconnect/internal/observability"
	"friendconnect/internal/server"
)

// @title FriendConnect API
// @version 1.0
// @description Social networking API with friend requests, mutual friends, and hobby/interest suggestions
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@friendconnect.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8287
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize tracing
	shutdownTracer, err := observability.InitTracer(context.Background(), "friendconnect-api", cfg.OTLPEndpoint)
	if err != nil {
		log.Printf("Tracing disabled: %v", err)
	}

	// Create server with dependency injection
	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if shutdownTracer != nil {
			if err := shutdownTracer(ctx); err != nil {
				log.Printf("Tracer shutdown error: %v", err)
			}
		}
	}()

	log.Fatal(srv.Start())
}
