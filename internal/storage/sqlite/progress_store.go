package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no progress row exists for a lesson.
var ErrNotFound = errors.New("progress not found")

// ProgressStore persists per-lesson completion ratios. The table is the
// single source of truth for progress; it is written after every
// exercise transition and read once at startup.
type ProgressStore struct {
	db *DB
}

// NewProgressStore creates a SQLite-backed progress store.
func NewProgressStore(db *DB) *ProgressStore {
	return &ProgressStore{db: db}
}

// Save upserts the completion ratio for a lesson.
func (s *ProgressStore) Save(lessonID string, ratio float64) error {
	_, err := s.db.Exec(`
		INSERT INTO progress (lesson_id, ratio, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(lesson_id) DO UPDATE SET
			ratio=excluded.ratio,
			updated_at=excluded.updated_at`,
		lessonID, ratio,
	)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

// Get returns the stored ratio for one lesson.
func (s *ProgressStore) Get(lessonID string) (float64, error) {
	var ratio float64
	err := s.db.QueryRow("SELECT ratio FROM progress WHERE lesson_id = ?", lessonID).Scan(&ratio)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("query progress: %w", err)
	}
	return ratio, nil
}

// All returns every stored lesson ratio keyed by lesson id.
func (s *ProgressStore) All() (map[string]float64, error) {
	rows, err := s.db.Query("SELECT lesson_id, ratio FROM progress")
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	out := make(map[string]float64)
	for rows.Next() {
		var id string
		var ratio float64
		if err := rows.Scan(&id, &ratio); err != nil {
			return nil, fmt.Errorf("scan progress row: %w", err)
		}
		out[id] = ratio
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress rows: %w", err)
	}
	return out, nil
}
