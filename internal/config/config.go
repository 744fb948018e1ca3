package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingAPIKey = errors.New("YouTube API key is required")
)

// Default channel ids compared when CHANNELS is not set.
var defaultChannels = []string{
	"UCkzzNLnuM-VsATWC53ehwOQ",
	"UCvYPobTo42NM36X7VC4dLhA",
}

// Config holds the application configuration
type Config struct {
	YouTubeAPIKey string
	Channels      []string
	MaxResults    int
	OutputFile    string
	HTTPTimeout   time.Duration
	DBConn        string
	Port          string
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	return LoadWithKey("")
}

// LoadWithKey loads the configuration, preferring the explicitly passed
// API key over the YOUTUBE_API_KEY environment variable. A missing key
// is the only fatal configuration error.
func LoadWithKey(apiKey string) (*Config, error) {
	if apiKey == "" {
		apiKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set the YOUTUBE_API_KEY environment variable or pass the key directly", ErrMissingAPIKey)
	}

	return &Config{
		YouTubeAPIKey: apiKey,
		Channels:      splitChannels(getEnv("CHANNELS", "")),
		MaxResults:    getEnvInt("MAX_RESULTS", 10),
		OutputFile:    getEnv("OUTPUT_FILE", "channel_comparison.csv"),
		HTTPTimeout:   time.Duration(getEnvInt("HTTP_TIMEOUT", 10)) * time.Second,
		DBConn:        getEnv("DB_CONN", ""),
		Port:          getEnv("PORT", "8080"),
	}, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", ErrMissingAPIKey)
	}
	return nil
}

func splitChannels(raw string) []string {
	if raw == "" {
		return append([]string(nil), defaultChannels...)
	}
	var channels []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			channels = append(channels, c)
		}
	}
	return channels
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
