package models

import (
	"math"
	"testing"
)

func TestEngagementRate(t *testing.T) {
	tests := []struct {
		name                   string
		views, likes, comments int64
		want                   float64
	}{
		{"zero views", 0, 50, 20, 0.0},
		{"zero views zero interactions", 0, 0, 0, 0.0},
		{"one percent", 100, 1, 0, 1.0},
		{"likes and comments", 1000, 20, 5, 2.5},
		{"interactions exceed views", 10, 50, 50, 1000.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := VideoRecord{Views: tt.views, Likes: tt.likes, Comments: tt.comments}
			got := v.EngagementRate()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EngagementRate() = %v, want %v", got, tt.want)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("EngagementRate() = %v, must be finite", got)
			}
		})
	}
}
