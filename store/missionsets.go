package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ecoquest/models"
)

const lastResetKey = "lastMissionResetDate"

// GetMissionSet returns the mission ids persisted for a date key. A row
// with an unreadable payload is treated as absent rather than fatal.
func (s *Store) GetMissionSet(dateKey string) ([]int, error) {
	var raw string
	err := s.db.QueryRow(`
		SELECT mission_ids FROM mission_sets WHERE date_key = ?
	`, dateKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("mission set %s: %w", dateKey, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get mission set: %w", err)
	}

	ids, err := decodeMissionIDs(raw)
	if err != nil {
		s.log.Warn("discarding corrupted mission set", zap.String("date_key", dateKey), zap.Error(err))
		return nil, fmt.Errorf("mission set %s: %w", dateKey, models.ErrNotFound)
	}
	return ids, nil
}

// SaveMissionSet persists a freshly drawn daily set and advances the
// last-reset marker in one transaction. An existing set for the date key
// is never overwritten.
func (s *Store) SaveMissionSet(dateKey string, missionIDs []int, now time.Time) error {
	raw, err := json.Marshal(missionIDs)
	if err != nil {
		return fmt.Errorf("encode mission set: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save mission set: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT OR IGNORE INTO mission_sets (date_key, mission_ids, created_at) VALUES (?, ?, ?)
	`, dateKey, string(raw), now); err != nil {
		return fmt.Errorf("insert mission set: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, lastResetKey, dateKey); err != nil {
		return fmt.Errorf("record reset marker: %w", err)
	}

	return tx.Commit()
}

// LatestMissionSet returns the most recent persisted set, for serving a
// previous day's missions before the reset hour.
func (s *Store) LatestMissionSet() (string, []int, error) {
	var (
		dateKey string
		raw     string
	)
	err := s.db.QueryRow(`
		SELECT date_key, mission_ids FROM mission_sets ORDER BY date_key DESC LIMIT 1
	`).Scan(&dateKey, &raw)
	if err == sql.ErrNoRows {
		return "", nil, fmt.Errorf("mission sets: %w", models.ErrNotFound)
	}
	if err != nil {
		return "", nil, fmt.Errorf("latest mission set: %w", err)
	}

	ids, err := decodeMissionIDs(raw)
	if err != nil {
		return "", nil, fmt.Errorf("mission sets: %w", models.ErrNotFound)
	}
	return dateKey, ids, nil
}

// LastResetDate returns the date key of the last recorded rotation, or ""
// when none has occurred.
func (s *Store) LastResetDate() (string, error) {
	return s.metaGet(lastResetKey)
}

func decodeMissionIDs(raw string) ([]int, error) {
	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("empty mission set")
	}
	return ids, nil
}
