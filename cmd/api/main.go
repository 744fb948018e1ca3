package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/yt-growth/internal/api"
	"github.com/yt-growth/internal/config"
	"github.com/yt-growth/internal/store"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Snapshot caching is optional; without DB_CONN every request
	// fetches fresh data.
	var snapshots *store.Store
	if cfg.DBConn != "" {
		snapshots, err = store.Open(cfg.DBConn)
		if err != nil {
			log.Fatalf("Failed to initialize snapshot store: %v", err)
		}
		defer snapshots.Close()
	}

	client := api.NewClient(cfg.YouTubeAPIKey, cfg.HTTPTimeout)
	server := api.NewServer(client, snapshots, cfg.MaxResults)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := server.Start(cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
