package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/yt-growth/internal/api"
	"github.com/yt-growth/internal/config"
	"github.com/yt-growth/internal/report"
	"github.com/yt-growth/internal/tracker"
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

	log.Printf("YouTube Growth Tracker")

	client := api.NewClient(cfg.YouTubeAPIKey, cfg.HTTPTimeout)
	channelIDs := resolveChannels(cfg)

	comp := tracker.NewComparator(client, cfg.MaxResults, printNotice)
	rows := comp.Compare(channelIDs)

	if len(rows) == 0 {
		log.Printf("No data retrieved. Check your API key and channel IDs.")
		return
	}

	report.Print(os.Stdout, rows)

	switch err := report.ExportCSV(cfg.OutputFile, rows); {
	case errors.Is(err, report.ErrNoData):
		log.Printf("Nothing to export")
	case err != nil:
		log.Printf("Error exporting to CSV: %v", err)
	default:
		log.Printf("Data exported to %s", cfg.OutputFile)
	}
}

// resolveChannels maps configured channel entries (ids, @handles, URLs)
// to channel ids. Entries that fail to resolve are dropped with a
// diagnostic; bare ids pass through even without a resolver.
func resolveChannels(cfg *config.Config) []string {
	resolver, err := api.NewResolver(context.Background(), cfg.YouTubeAPIKey)
	if err != nil {
		log.Printf("Warning: channel resolution unavailable: %v", err)
	}

	ids := make([]string, 0, len(cfg.Channels))
	for _, entry := range cfg.Channels {
		if resolver == nil {
			ids = append(ids, entry)
			continue
		}
		id, err := resolver.Resolve(entry)
		if err != nil {
			log.Printf("Skipping %s: %v", entry, err)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// printNotice renders pipeline progress on the console.
func printNotice(n tracker.Notice) {
	switch n.Kind {
	case tracker.NoticeFetching:
		log.Printf("Fetching data for channel: %s", n.ChannelID)
	case tracker.NoticeSkipped:
		log.Printf("Skipping %s - could not fetch stats: %v", n.ChannelID, n.Err)
	case tracker.NoticeVideoFetchFailed:
		log.Printf("Could not fetch videos for %s: %v", n.ChannelID, n.Err)
	case tracker.NoticeCompleted:
		log.Printf("Completed: %s", n.Channel)
	}
}
