// Package tracker runs the channel comparison pipeline: fetch channel
// statistics, fetch recent videos, derive engagement metrics.
package tracker

import (
	"github.com/yt-growth/internal/models"
)

// StatsSource provides channel and video statistics. Production code
// uses the api.Client; tests substitute a fake.
type StatsSource interface {
	ChannelStats(channelID string) (*models.ChannelSummary, error)
	RecentVideos(channelID string, maxResults int) ([]models.VideoRecord, error)
}

// NoticeKind classifies pipeline progress notices.
type NoticeKind int

const (
	// NoticeFetching is emitted before a channel's fetches start.
	NoticeFetching NoticeKind = iota
	// NoticeSkipped means the summary fetch failed; the channel
	// contributes no row.
	NoticeSkipped
	// NoticeVideoFetchFailed means the video fetch failed; the channel
	// still gets a row with zero derived metrics.
	NoticeVideoFetchFailed
	// NoticeCompleted is emitted after a channel's row is appended.
	NoticeCompleted
)

// Notice is a single progress or diagnostic event. Rendering is left
// to the caller; the pipeline never prints.
type Notice struct {
	Kind      NoticeKind
	ChannelID string
	Channel   string // display name, set on NoticeCompleted
	Err       error  // set on NoticeSkipped and NoticeVideoFetchFailed
}

// NoticeFunc receives pipeline notices as they happen.
type NoticeFunc func(Notice)

// Comparator fetches and compares a batch of channels sequentially.
type Comparator struct {
	source     StatsSource
	maxResults int
	notify     NoticeFunc
}

// NewComparator creates a comparator fetching up to maxResults recent
// videos per channel. notify may be nil.
func NewComparator(source StatsSource, maxResults int, notify NoticeFunc) *Comparator {
	if notify == nil {
		notify = func(Notice) {}
	}
	return &Comparator{
		source:     source,
		maxResults: maxResults,
		notify:     notify,
	}
}

// Compare processes the channel ids in order, one at a time. Channels
// whose summary fetch fails are skipped; every other channel yields
// exactly one row. The returned rows keep the input processing order.
func (c *Comparator) Compare(channelIDs []string) []models.ComparisonRow {
	rows := make([]models.ComparisonRow, 0, len(channelIDs))

	for _, channelID := range channelIDs {
		c.notify(Notice{Kind: NoticeFetching, ChannelID: channelID})

		summary, err := c.source.ChannelStats(channelID)
		if err != nil {
			c.notify(Notice{Kind: NoticeSkipped, ChannelID: channelID, Err: err})
			continue
		}

		videos, err := c.source.RecentVideos(channelID, c.maxResults)
		if err != nil {
			c.notify(Notice{Kind: NoticeVideoFetchFailed, ChannelID: channelID, Err: err})
			videos = nil
		}

		rows = append(rows, buildRow(*summary, videos))
		c.notify(Notice{Kind: NoticeCompleted, ChannelID: channelID, Channel: summary.ChannelName})
	}

	return rows
}

func buildRow(summary models.ChannelSummary, videos []models.VideoRecord) models.ComparisonRow {
	row := models.ComparisonRow{
		ChannelSummary:   summary,
		RecentVideoCount: len(videos),
	}
	if len(videos) == 0 {
		return row
	}

	var viewSum, rateSum float64
	for i := range videos {
		viewSum += float64(videos[i].Views)
		rateSum += videos[i].EngagementRate()
	}
	row.AvgViewsPerVideo = viewSum / float64(len(videos))
	row.AvgEngagementRate = rateSum / float64(len(videos))
	row.UploadFrequencyPerDay = uploadFrequency(videos)

	return row
}

// uploadFrequency approximates videos per day over the span between the
// newest and oldest video. When the whole batch falls inside a single
// day the raw count is returned, read as "at least this many per day".
func uploadFrequency(videos []models.VideoRecord) float64 {
	if len(videos) < 2 {
		return 0
	}

	first := videos[0].PublishedAt
	last := videos[len(videos)-1].PublishedAt
	daysDiff := int(first.Sub(last).Hours() / 24)
	if daysDiff <= 0 {
		return float64(len(videos))
	}
	return float64(len(videos)) / float64(daysDiff)
}
