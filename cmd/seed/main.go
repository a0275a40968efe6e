// Seeds the curated passages into the configured store. Safe to rerun: an
// already-populated content collection is left untouched.
package main

import (
	"context"
	"log"

	"github.com/fatih/color"

	"typing-training-be/internal/config"
	"typing-training-be/internal/pkg/logger"
	"typing-training-be/internal/repository/implementation"
	"typing-training-be/internal/service"
	"typing-training-be/pkg/database"
)

func main() {
	cfg := config.Load()

	client, err := database.NewMongoClient(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Unable to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.Database.Name)
	contentService := service.NewContentService(
		implementation.NewContentRepository(db),
		logger.NewNopLogger(),
	)

	res, err := contentService.Seed(context.Background())
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	if res.Seeded {
		log.Printf("%s Seeded %d content items into %q", green("✓"), res.Count, cfg.Database.Name)
	} else {
		log.Printf("%s Nothing to do: %s", yellow("-"), res.Message)
	}
}
