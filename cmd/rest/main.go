package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"typing-training-be/internal/bootstrap"
	"typing-training-be/internal/config"
	"typing-training-be/internal/server"
	"typing-training-be/internal/tracer"
	"typing-training-be/pkg/database"

	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Store
	// The API stays up without a store: data endpoints report configuration
	// errors and GET /test shows the store as unavailable.
	var db *mongo.Database
	client, err := database.NewMongoClient(cfg.Database.URL)
	if err != nil {
		log.Printf("[WARN] Unable to connect to MongoDB: %v", err)
	} else {
		db = client.Database(cfg.Database.Name)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(db, cfg)

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Graceful shutdown on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	// 7. Release store connection after the listener stops
	if client != nil {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Store disconnect error: %v", err)
		}
	}
	_ = container.Logger.Sync()
}
