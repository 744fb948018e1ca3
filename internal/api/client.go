package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yt-growth/internal/models"
)

const (
	youtubeAPIBaseURL = "https://www.googleapis.com/youtube/v3"

	// DefaultTimeout bounds every API call; a timeout is treated like
	// any other recoverable transport failure.
	DefaultTimeout = 10 * time.Second
)

// Client handles direct HTTP requests to YouTube API
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	now     func() time.Time
}

// NewClient creates a new YouTube client. A non-positive timeout falls
// back to DefaultTimeout.
func NewClient(apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: youtubeAPIBaseURL,
		client:  &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

// ChannelStats fetches the public statistics for a channel and returns
// them as a freshly timestamped summary. Any transport failure, non-200
// status or empty result set is returned as an error; callers treat it
// as "no summary available" and skip the channel.
func (c *Client) ChannelStats(channelID string) (*models.ChannelSummary, error) {
	u := fmt.Sprintf("%s/channels?part=statistics,snippet,contentDetails&id=%s&key=%s",
		c.baseURL, url.QueryEscape(channelID), c.apiKey)

	resp, err := c.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("YouTube API returned status code: %d", resp.StatusCode)
	}

	var response models.ChannelListResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode channel response: %w", err)
	}

	if len(response.Items) == 0 {
		return nil, fmt.Errorf("no channel found with ID: %s", channelID)
	}

	return response.Items[0].Summary(c.now())
}

// RecentVideos fetches per-video statistics for the channel's most
// recently published videos, newest first, capped at maxResults.
// An empty slice with a nil error means the channel genuinely has no
// recent videos; a fetch failure at either sub-call returns an error.
func (c *Client) RecentVideos(channelID string, maxResults int) ([]models.VideoRecord, error) {
	searchURL := fmt.Sprintf("%s/search?part=id&channelId=%s&order=date&type=video&maxResults=%d&key=%s",
		c.baseURL, url.QueryEscape(channelID), maxResults, c.apiKey)

	resp, err := c.client.Get(searchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status code: %d", resp.StatusCode)
	}

	var searchResponse models.SearchListResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResponse); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	videoIDs := searchResponse.VideoIDs()
	if len(videoIDs) == 0 {
		return []models.VideoRecord{}, nil
	}

	videosURL := fmt.Sprintf("%s/videos?part=statistics,snippet&id=%s&key=%s",
		c.baseURL, strings.Join(videoIDs, ","), c.apiKey)

	resp, err = c.client.Get(videosURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video details: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("videos API returned status code: %d", resp.StatusCode)
	}

	var videoResponse models.VideoListResponse
	if err := json.NewDecoder(resp.Body).Decode(&videoResponse); err != nil {
		return nil, fmt.Errorf("failed to decode video response: %w", err)
	}

	byID := make(map[string]models.VideoRecord, len(videoResponse.Items))
	for _, item := range videoResponse.Items {
		record, err := item.Record()
		if err != nil {
			return nil, fmt.Errorf("malformed video entry: %w", err)
		}
		byID[record.VideoID] = *record
	}

	// The videos endpoint does not guarantee request order; rebuild the
	// list in the search result order so newest-first is preserved.
	videos := make([]models.VideoRecord, 0, len(videoIDs))
	for _, id := range videoIDs {
		if record, ok := byID[id]; ok {
			videos = append(videos, record)
		}
	}

	return videos, nil
}
