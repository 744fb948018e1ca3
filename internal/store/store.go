// Package store persists comparison snapshots in SQLite Cloud so the
// REST surface can serve same-day results without refetching.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	sqlitecloud "github.com/sqlitecloud/sqlitecloud-go"

	"github.com/yt-growth/internal/models"
)

// Store wraps the SQLite Cloud connection
type Store struct {
	db *sqlitecloud.SQCloud
}

// Snapshot is one stored comparison run.
type Snapshot struct {
	CacheKey   string                 `json:"cache_key"`
	CreateDate time.Time              `json:"create_date"`
	Rows       []models.ComparisonRow `json:"rows"`
}

// Open connects to SQLite Cloud and ensures the snapshot table exists.
func Open(connString string) (*Store, error) {
	log.Printf("Connecting to SQLite Cloud database: %s", maskConnectionString(connString))

	db, err := sqlitecloud.Connect(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite Cloud: %v", err)
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		return nil, err
	}
	return s, nil
}

// maskConnectionString hides the API key in logs for security
func maskConnectionString(connStr string) string {
	if strings.Contains(connStr, "apikey=") {
		parts := strings.Split(connStr, "apikey=")
		if len(parts) > 1 {
			return parts[0] + "apikey=***"
		}
	}
	return connStr
}

func (s *Store) createTables() error {
	sql := `CREATE TABLE IF NOT EXISTS comparison_snapshot (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		cache_key TEXT NOT NULL UNIQUE,
		create_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		json_response TEXT NOT NULL
	)`
	if err := s.db.Execute(sql); err != nil {
		return fmt.Errorf("failed to create table: %v", err)
	}
	return nil
}

// CacheKey derives a stable key from a channel id batch: order and
// duplicates do not produce distinct snapshots.
func CacheKey(channelIDs []string) string {
	ids := make([]string, 0, len(channelIDs))
	seen := make(map[string]bool, len(channelIDs))
	for _, id := range channelIDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

// SaveSnapshot stores (or replaces) the comparison rows for a key.
func (s *Store) SaveSnapshot(key string, rows []models.ComparisonRow) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	sql := `INSERT INTO comparison_snapshot (cache_key, json_response)
			VALUES (?, ?)
			ON CONFLICT(cache_key) DO UPDATE SET
				json_response = excluded.json_response,
				create_date = CURRENT_TIMESTAMP`

	return s.db.ExecuteArray(sql, []interface{}{key, string(data)})
}

// LatestSnapshot returns the stored snapshot for a key, or nil when
// none exists.
func (s *Store) LatestSnapshot(key string) (*Snapshot, error) {
	sql := `SELECT json_response, create_date FROM comparison_snapshot
			WHERE cache_key = ?
			ORDER BY create_date DESC LIMIT 1`

	result, err := s.db.SelectArray(sql, []interface{}{key})
	if err != nil {
		return nil, err
	}
	if result.GetNumberOfRows() == 0 {
		return nil, nil
	}

	data, err := result.GetStringValue(0, 0)
	if err != nil {
		return nil, err
	}
	createdRaw, err := result.GetStringValue(0, 1)
	if err != nil {
		return nil, err
	}
	created, err := time.Parse("2006-01-02 15:04:05", createdRaw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse create_date: %v", err)
	}

	var rows []models.ComparisonRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, err
	}

	return &Snapshot{
		CacheKey:   key,
		CreateDate: created,
		Rows:       rows,
	}, nil
}

// FreshToday reports whether the snapshot was taken today (UTC),
// the same-day rule used for cache hits.
func (snap *Snapshot) FreshToday(now time.Time) bool {
	if snap == nil {
		return false
	}
	return snap.CreateDate.UTC().Format("2006-01-02") == now.UTC().Format("2006-01-02")
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
