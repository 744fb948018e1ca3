package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/yt-growth/internal/models"
)

func sampleRows() []models.ComparisonRow {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return []models.ComparisonRow{
		{
			ChannelSummary: models.ChannelSummary{
				ChannelID:   "UCsmall",
				ChannelName: "Small, \"quoted\" Channel",
				Subscribers: 100,
				TotalViews:  5000,
				Videos:      12,
				Timestamp:   ts,
			},
			AvgViewsPerVideo:      416.6666666666667,
			AvgEngagementRate:     2.5,
			UploadFrequencyPerDay: 0.3333333333333333,
			RecentVideoCount:      10,
		},
		{
			ChannelSummary: models.ChannelSummary{
				ChannelID:   "UCbig",
				ChannelName: "Big Channel",
				Subscribers: 1000000,
				TotalViews:  900000000,
				Videos:      340,
				Timestamp:   ts,
			},
			AvgViewsPerVideo:      200.0,
			AvgEngagementRate:     1.0,
			UploadFrequencyPerDay: 3,
			RecentVideoCount:      3,
		},
	}
}

func TestExportCSVRoundTrip(t *testing.T) {
	rows := sampleRows()
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := ExportCSV(path, rows); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	if len(records) != len(rows)+1 {
		t.Fatalf("got %d lines, want %d", len(records), len(rows)+1)
	}
	for i, col := range Columns {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}

	for i, row := range rows {
		got := records[i+1]
		if got[0] != row.ChannelID || got[1] != row.ChannelName {
			t.Errorf("row %d identity = %q/%q", i, got[0], got[1])
		}
		if subs, _ := strconv.ParseInt(got[2], 10, 64); subs != row.Subscribers {
			t.Errorf("row %d subscribers = %q", i, got[2])
		}
		ts, err := time.Parse(time.RFC3339, got[5])
		if err != nil || !ts.Equal(row.Timestamp) {
			t.Errorf("row %d timestamp = %q (err %v)", i, got[5], err)
		}
		avg, err := strconv.ParseFloat(got[6], 64)
		if err != nil || math.Abs(avg-row.AvgViewsPerVideo) > 1e-9 {
			t.Errorf("row %d avg_views_per_video = %q (err %v)", i, got[6], err)
		}
		freq, err := strconv.ParseFloat(got[8], 64)
		if err != nil || math.Abs(freq-row.UploadFrequencyPerDay) > 1e-9 {
			t.Errorf("row %d upload_frequency_per_day = %q (err %v)", i, got[8], err)
		}
		if count, _ := strconv.Atoi(got[9]); count != row.RecentVideoCount {
			t.Errorf("row %d recent_video_count = %q", i, got[9])
		}
	}
}

func TestExportCSVNoData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	err := ExportCSV(path, nil)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file may be written when there is nothing to export")
	}
}

func TestExportCSVOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("stale content\nmore stale\nthird line\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ExportCSV(path, sampleRows()[:1]); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("export must replace the previous file, not append")
	}
}

func TestPrintRanksBySubscribersWithoutMutating(t *testing.T) {
	rows := sampleRows() // small channel first
	var buf bytes.Buffer

	Print(&buf, rows)

	out := buf.String()
	bigAt := strings.Index(out, "Big Channel")
	smallAt := strings.Index(out, "Small, \"quoted\" Channel")
	if bigAt == -1 || smallAt == -1 {
		t.Fatalf("missing channels in output:\n%s", out)
	}
	if bigAt > smallAt {
		t.Error("report must rank by subscriber count descending")
	}

	// canonical order is untouched
	if rows[0].ChannelID != "UCsmall" || rows[1].ChannelID != "UCbig" {
		t.Error("Print must not reorder the input slice")
	}
}
