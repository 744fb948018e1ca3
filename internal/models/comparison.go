package models

// ComparisonRow is a ChannelSummary extended with metrics derived from
// the channel's most recent videos. The base fields are a verbatim copy
// of the fetched summary; derived fields are 0 when no video data was
// available.
type ComparisonRow struct {
	ChannelSummary
	AvgViewsPerVideo      float64 `json:"avg_views_per_video"`
	AvgEngagementRate     float64 `json:"avg_engagement_rate"`
	UploadFrequencyPerDay float64 `json:"upload_frequency_per_day"`
	RecentVideoCount      int     `json:"recent_video_count"`
}

// EngagementRate calculates the engagement rate for a video as a
// percentage of interactions per view: (likes + comments) / views * 100.
// A video with zero views rates 0.0 rather than dividing by zero.
func (v *VideoRecord) EngagementRate() float64 {
	if v.Views == 0 {
		return 0.0
	}
	return float64(v.Likes+v.Comments) / float64(v.Views) * 100
}
