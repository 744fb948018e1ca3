package api

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yt-growth/internal/store"
	"github.com/yt-growth/internal/tracker"
)

// Server exposes the comparison pipeline over HTTP.
type Server struct {
	router     *gin.Engine
	client     *Client
	snapshots  *store.Store // optional, nil disables caching
	maxResults int
}

// NewServer creates a new API server. snapshots may be nil.
func NewServer(client *Client, snapshots *store.Store, maxResults int) *Server {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "Pragma"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	server := &Server{
		router:     router,
		client:     client,
		snapshots:  snapshots,
		maxResults: maxResults,
	}
	server.setupRoutes()

	return server
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/channel/:id", s.getChannel)
	s.router.GET("/channel/:id/videos", s.getChannelVideos)
	s.router.GET("/compare", s.compareChannels)
}

// getChannel handles requests for a single channel summary
func (s *Server) getChannel(c *gin.Context) {
	channelID := c.Param("id")
	summary, err := s.client.ChannelStats(channelID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getChannelVideos handles requests for a channel's recent videos
func (s *Server) getChannelVideos(c *gin.Context) {
	channelID := c.Param("id")

	maxResults := s.maxResults
	if raw := c.Query("maxResults"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			maxResults = n
		}
	}

	videos, err := s.client.RecentVideos(channelID, maxResults)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, videos)
}

// compareChannels runs the comparison pipeline for ?ids=a,b,c. When a
// snapshot store is configured, a same-day snapshot is served instead
// of refetching and fresh results are stored.
func (s *Server) compareChannels(c *gin.Context) {
	raw := c.Query("ids")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids query parameter is required"})
		return
	}

	var channelIDs []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			channelIDs = append(channelIDs, id)
		}
	}
	if len(channelIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids query parameter is required"})
		return
	}

	key := store.CacheKey(channelIDs)
	if s.snapshots != nil {
		snap, err := s.snapshots.LatestSnapshot(key)
		if err != nil {
			log.Printf("Error fetching cached comparison: %v", err)
		} else if snap.FreshToday(time.Now()) {
			log.Printf("Returning cached comparison from %v", snap.CreateDate)
			c.JSON(http.StatusOK, snap.Rows)
			return
		}
	}

	comp := tracker.NewComparator(s.client, s.maxResults, logNotice)
	rows := comp.Compare(channelIDs)
	if len(rows) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "no data retrieved for the requested channels"})
		return
	}

	if s.snapshots != nil {
		if err := s.snapshots.SaveSnapshot(key, rows); err != nil {
			log.Printf("Failed to store comparison snapshot: %v", err)
		}
	}

	c.JSON(http.StatusOK, rows)
}

// logNotice renders pipeline notices as server log lines.
func logNotice(n tracker.Notice) {
	switch n.Kind {
	case tracker.NoticeFetching:
		log.Printf("Fetching data for channel: %s", n.ChannelID)
	case tracker.NoticeSkipped:
		log.Printf("Skipping %s: %v", n.ChannelID, n.Err)
	case tracker.NoticeVideoFetchFailed:
		log.Printf("Could not fetch videos for %s: %v", n.ChannelID, n.Err)
	case tracker.NoticeCompleted:
		log.Printf("Completed: %s", n.Channel)
	}
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}
