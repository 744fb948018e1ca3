// Package report renders the comparison results: a ranked console
// block and a CSV export.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/yt-growth/internal/models"
)

// ErrNoData is returned when there are no rows to export; the export
// stage writes no file in that case.
var ErrNoData = errors.New("no data to export")

// Columns is the CSV header, matching the ComparisonRow field set.
var Columns = []string{
	"channel_id",
	"channel_name",
	"subscribers",
	"total_views",
	"videos",
	"timestamp",
	"avg_views_per_video",
	"avg_engagement_rate",
	"upload_frequency_per_day",
	"recent_video_count",
}

// Print writes a ranked comparison block to w, highest subscriber count
// first. The ranking is presentation-only: rows itself is not reordered.
func Print(w io.Writer, rows []models.ComparisonRow) {
	ranked := make([]models.ComparisonRow, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Subscribers > ranked[j].Subscribers
	})

	fmt.Fprintln(w, "Comparison Results:")
	fmt.Fprintln(w, "==================================================")
	for i, row := range ranked {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, row.ChannelName)
		fmt.Fprintf(w, "   Subscribers: %d\n", row.Subscribers)
		fmt.Fprintf(w, "   Total Views: %d\n", row.TotalViews)
		fmt.Fprintf(w, "   Videos: %d\n", row.Videos)
		fmt.Fprintf(w, "   Avg Views/Video: %.0f\n", row.AvgViewsPerVideo)
		fmt.Fprintf(w, "   Engagement Rate: %.2f%%\n", row.AvgEngagementRate)
		fmt.Fprintf(w, "   Upload Freq: %.2f videos/day\n", row.UploadFrequencyPerDay)
	}
	fmt.Fprintln(w, "\n==================================================")
}

// ExportCSV writes every row to path as UTF-8 CSV with a header line,
// replacing any existing file. With no rows it returns ErrNoData and
// writes nothing.
func ExportCSV(path string, rows []models.ComparisonRow) error {
	if len(rows) == 0 {
		return ErrNoData
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(f, rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteCSV writes the header and rows to w.
func WriteCSV(w io.Writer, rows []models.ComparisonRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for i := range rows {
		if err := cw.Write(rowValues(&rows[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// rowValues renders a row in Columns order. Floats use the shortest
// exact representation so values survive a parse round trip.
func rowValues(row *models.ComparisonRow) []string {
	return []string{
		row.ChannelID,
		row.ChannelName,
		strconv.FormatInt(row.Subscribers, 10),
		strconv.FormatInt(row.TotalViews, 10),
		strconv.FormatInt(row.Videos, 10),
		row.Timestamp.Format(time.RFC3339),
		strconv.FormatFloat(row.AvgViewsPerVideo, 'f', -1, 64),
		strconv.FormatFloat(row.AvgEngagementRate, 'f', -1, 64),
		strconv.FormatFloat(row.UploadFrequencyPerDay, 'f', -1, 64),
		strconv.Itoa(row.RecentVideoCount),
	}
}
