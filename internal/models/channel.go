package models

import (
	"fmt"
	"strconv"
	"time"
)

// ChannelSummary is a snapshot of a channel's public statistics,
// captured at Timestamp. It is never mutated after construction.
type ChannelSummary struct {
	ChannelID   string    `json:"channel_id"`
	ChannelName string    `json:"channel_name"`
	Subscribers int64     `json:"subscribers"`
	TotalViews  int64     `json:"total_views"`
	Videos      int64     `json:"videos"`
	Timestamp   time.Time `json:"timestamp"`
}

// ChannelListResponse represents the channels.list response from YouTube API
type ChannelListResponse struct {
	Items []ChannelItem `json:"items"`
}

// ChannelItem is a single result item of a channels.list call.
// Count fields arrive as decimal strings and may be absent.
type ChannelItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"snippet"`
	Statistics struct {
		SubscriberCount string `json:"subscriberCount"`
		ViewCount       string `json:"viewCount"`
		VideoCount      string `json:"videoCount"`
	} `json:"statistics"`
}

// Summary converts the item into a ChannelSummary stamped with now.
// Missing count fields default to 0; a missing id or title is rejected.
func (it ChannelItem) Summary(now time.Time) (*ChannelSummary, error) {
	if it.ID == "" {
		return nil, fmt.Errorf("channel item has no id")
	}
	if it.Snippet.Title == "" {
		return nil, fmt.Errorf("channel item %s has no title", it.ID)
	}

	return &ChannelSummary{
		ChannelID:   it.ID,
		ChannelName: it.Snippet.Title,
		Subscribers: ParseCount(it.Statistics.SubscriberCount),
		TotalViews:  ParseCount(it.Statistics.ViewCount),
		Videos:      ParseCount(it.Statistics.VideoCount),
		Timestamp:   now,
	}, nil
}

// ParseCount converts a count string from the API to int64.
// Absent or unparseable counts become 0.
func ParseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
