package models

import (
	"encoding/json"
	"testing"
)

func TestSearchListResponseVideoIDs(t *testing.T) {
	payload := `{
		"items": [
			{"id": {"videoId": "vid1"}},
			{"id": {"videoId": "vid2"}},
			{"id": {}},
			{"id": {"videoId": "vid3"}}
		]
	}`

	var resp SearchListResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	ids := resp.VideoIDs()
	want := []string{"vid1", "vid2", "vid3"}
	if len(ids) != len(want) {
		t.Fatalf("got %d ids, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestVideoItemRecord(t *testing.T) {
	payload := `{
		"id": "vid1",
		"snippet": {"title": "First Video", "publishedAt": "2024-05-30T10:00:00Z"},
		"statistics": {"viewCount": "100", "likeCount": "1"}
	}`

	var item VideoItem
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	rec, err := item.Record()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.VideoID != "vid1" || rec.Title != "First Video" {
		t.Errorf("identity fields = %q/%q", rec.VideoID, rec.Title)
	}
	if rec.Views != 100 || rec.Likes != 1 {
		t.Errorf("counts = %d/%d", rec.Views, rec.Likes)
	}
	// commentCount absent from payload
	if rec.Comments != 0 {
		t.Errorf("missing comment count must default to 0, got %d", rec.Comments)
	}
	if rec.PublishedAt.IsZero() {
		t.Error("expected parsed publish date")
	}
}

func TestVideoItemRecordBadDate(t *testing.T) {
	var item VideoItem
	item.ID = "vid1"
	item.Snippet.Title = "Odd Date"
	item.Snippet.PublishedAt = "yesterday"

	rec, err := item.Record()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.PublishedAt.IsZero() {
		t.Errorf("unparseable date must become zero time, got %v", rec.PublishedAt)
	}
}

func TestVideoItemRecordRejectsMalformed(t *testing.T) {
	var noID VideoItem
	noID.Snippet.Title = "Orphan"
	if _, err := noID.Record(); err == nil {
		t.Error("expected error for item without id")
	}

	var noTitle VideoItem
	noTitle.ID = "vid1"
	if _, err := noTitle.Record(); err == nil {
		t.Error("expected error for item without title")
	}
}
