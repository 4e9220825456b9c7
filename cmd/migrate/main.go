package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"

	"github.com/oportunidadeshoy/migration-tools/internal/config"
	"github.com/oportunidadeshoy/migration-tools/internal/migrator"
	"github.com/oportunidadeshoy/migration-tools/internal/repositories"
	mongorepo "github.com/oportunidadeshoy/migration-tools/internal/repositories/mongodb"
	"github.com/oportunidadeshoy/migration-tools/pkg/mongodb"
	"github.com/oportunidadeshoy/migration-tools/pkg/serviceaccount"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	setupLogging(cfg.LogLevel)

	// Resolve the service account key, environment variable first
	key, err := serviceaccount.Resolve(cfg.ServiceAccount.KeyFile)
	if err != nil {
		log.Fatalf("Failed to resolve service account credentials: %v", err)
	}

	// Connect to MongoDB before any write is attempted
	ctx := context.Background()
	client, err := mongodb.Connect(ctx, key.URI, key.Database)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	// Run the migration
	var repo repositories.DocumentRepository = mongorepo.NewDocumentRepository(client.Database())
	results := migrator.New(repo, cfg.Migration.FixturesDir, cfg.Migration.BatchSize).Run(ctx)

	var failedWrites, failedFixtures int
	for _, r := range results {
		failedWrites += r.Failed
		if r.Err != nil {
			failedFixtures++
		}
	}
	if failedWrites > 0 || failedFixtures > 0 {
		log.Printf("Migration finished with %d failed writes and %d unreadable fixtures, check the log above", failedWrites, failedFixtures)
		return
	}
	log.Println("Migration completed, verify the data in the MongoDB console")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
