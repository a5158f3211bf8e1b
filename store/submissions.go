package store

import (
	"database/sql"
	"fmt"
	"time"

	"ecoquest/models"
)

// CreateSubmission persists a new pending submission and records the
// mission on the user's pending-approval set in one transaction, so no
// partial-write state is observable.
func (s *Store) CreateSubmission(sub models.Submission) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	defer tx.Rollback()

	var lat, lng interface{}
	if sub.Location != nil {
		lat, lng = sub.Location.Lat, sub.Location.Lng
	}

	if _, err := tx.Exec(`
		INSERT INTO submissions (id, username, mission_id, lat, lng, proof_link, description, agreed_to_terms, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sub.ID, sub.Username, sub.MissionID, lat, lng, sub.ProofLink, sub.Description,
		sub.AgreedToTerms, string(sub.Status), sub.CreatedAt); err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT OR IGNORE INTO pending_approvals (username, mission_id) VALUES (?, ?)
	`, sub.Username, sub.MissionID); err != nil {
		return fmt.Errorf("record pending approval: %w", err)
	}

	return tx.Commit()
}

// GetSubmission loads one submission by id.
func (s *Store) GetSubmission(id string) (models.Submission, error) {
	row := s.db.QueryRow(`
		SELECT id, username, mission_id, lat, lng, proof_link, description, agreed_to_terms, status, created_at, decided_at
		FROM submissions WHERE id = ?
	`, id)

	sub, err := scanSubmission(row)
	if err == sql.ErrNoRows {
		return models.Submission{}, fmt.Errorf("submission %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Submission{}, fmt.Errorf("get submission: %w", err)
	}
	return sub, nil
}

// ListSubmissions returns submissions newest first, optionally filtered
// by status.
func (s *Store) ListSubmissions(status models.SubmissionStatus) ([]models.Submission, error) {
	query := `
		SELECT id, username, mission_id, lat, lng, proof_link, description, agreed_to_terms, status, created_at, decided_at
		FROM submissions
	`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, string(status))
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	return collectSubmissions(rows)
}

// ListUserSubmissions returns one user's submissions newest first.
func (s *Store) ListUserSubmissions(username string) ([]models.Submission, error) {
	rows, err := s.db.Query(`
		SELECT id, username, mission_id, lat, lng, proof_link, description, agreed_to_terms, status, created_at, decided_at
		FROM submissions WHERE username = ? ORDER BY created_at DESC
	`, username)
	if err != nil {
		return nil, fmt.Errorf("list user submissions: %w", err)
	}
	defer rows.Close()

	return collectSubmissions(rows)
}

// RecentApproved returns the latest approved submissions for the
// leaderboard activity feed.
func (s *Store) RecentApproved(limit int) ([]models.Submission, error) {
	rows, err := s.db.Query(`
		SELECT id, username, mission_id, lat, lng, proof_link, description, agreed_to_terms, status, created_at, decided_at
		FROM submissions WHERE status = 'approved'
		ORDER BY decided_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent approved: %w", err)
	}
	defer rows.Close()

	return collectSubmissions(rows)
}

// HasActiveSubmission reports whether the user already has a pending or
// approved submission for the mission. At most one in-flight submission
// may exist per (user, mission) pair.
func (s *Store) HasActiveSubmission(username string, missionID int) (bool, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM submissions
		WHERE username = ? AND mission_id = ? AND status IN ('pending', 'approved')
	`, username, missionID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check active submission: %w", err)
	}
	return count > 0, nil
}

// DecideSubmission moves a pending submission to a terminal status and
// returns the updated record. A submission that is not pending yields
// ErrInvalidState; an unknown id yields ErrNotFound. The WHERE guard makes
// a repeated decision a no-op rather than a double transition.
func (s *Store) DecideSubmission(id string, status models.SubmissionStatus, now time.Time) (models.Submission, error) {
	res, err := s.db.Exec(`
		UPDATE submissions SET status = ?, decided_at = ?
		WHERE id = ? AND status = 'pending'
	`, string(status), now, id)
	if err != nil {
		return models.Submission{}, fmt.Errorf("decide submission: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := s.GetSubmission(id); err != nil {
			return models.Submission{}, err
		}
		return models.Submission{}, fmt.Errorf("submission %s already decided: %w", id, models.ErrInvalidState)
	}

	return s.GetSubmission(id)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSubmission(row rowScanner) (models.Submission, error) {
	var (
		sub       models.Submission
		lat, lng  sql.NullFloat64
		status    string
		decidedAt sql.NullTime
	)
	err := row.Scan(&sub.ID, &sub.Username, &sub.MissionID, &lat, &lng,
		&sub.ProofLink, &sub.Description, &sub.AgreedToTerms, &status,
		&sub.CreatedAt, &decidedAt)
	if err != nil {
		return models.Submission{}, err
	}

	sub.Status = models.SubmissionStatus(status)
	if lat.Valid && lng.Valid {
		sub.Location = &models.Location{Lat: lat.Float64, Lng: lng.Float64}
	}
	if decidedAt.Valid {
		t := decidedAt.Time
		sub.DecidedAt = &t
	}
	return sub, nil
}

func collectSubmissions(rows *sql.Rows) ([]models.Submission, error) {
	var subs []models.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
