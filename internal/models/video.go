package models

import (
	"fmt"
	"time"
)

// VideoRecord holds per-video statistics for one recently published video.
type VideoRecord struct {
	VideoID     string    `json:"video_id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
	Views       int64     `json:"views"`
	Likes       int64     `json:"likes"`
	Comments    int64     `json:"comments"`
}

// SearchListResponse represents the search.list response from YouTube API.
// Only the video ids are requested; everything else is ignored.
type SearchListResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// VideoIDs returns the video ids in result order, skipping items
// that carry no video id (playlists, channels).
func (r SearchListResponse) VideoIDs() []string {
	ids := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	return ids
}

// VideoListResponse represents the videos.list response from YouTube API
type VideoListResponse struct {
	Items []VideoItem `json:"items"`
}

// VideoItem is a single result item of a videos.list call.
type VideoItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title       string `json:"title"`
		PublishedAt string `json:"publishedAt"`
	} `json:"snippet"`
	Statistics struct {
		ViewCount    string `json:"viewCount"`
		LikeCount    string `json:"likeCount"`
		CommentCount string `json:"commentCount"`
	} `json:"statistics"`
}

// Record converts the item into a VideoRecord. Missing count fields
// default to 0 and an unparseable publish date becomes the zero time,
// but a missing id or title is rejected.
func (it VideoItem) Record() (*VideoRecord, error) {
	if it.ID == "" {
		return nil, fmt.Errorf("video item has no id")
	}
	if it.Snippet.Title == "" {
		return nil, fmt.Errorf("video item %s has no title", it.ID)
	}

	publishedAt, err := time.Parse(time.RFC3339, it.Snippet.PublishedAt)
	if err != nil {
		publishedAt = time.Time{}
	}

	return &VideoRecord{
		VideoID:     it.ID,
		Title:       it.Snippet.Title,
		PublishedAt: publishedAt,
		Views:       ParseCount(it.Statistics.ViewCount),
		Likes:       ParseCount(it.Statistics.LikeCount),
		Comments:    ParseCount(it.Statistics.CommentCount),
	}, nil
}
