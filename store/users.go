package store

import (
	"database/sql"
	"fmt"
	"time"

	"ecoquest/models"
)

// CreateUser inserts a new account. Returns ErrConflict when the username
// is already taken.
func (s *Store) CreateUser(u models.UserAccount) error {
	_, err := s.db.Exec(`
		INSERT INTO users (username, name, email, password_hash, role, total_points, missions_completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, u.Username, u.Name, u.Email, u.PasswordHash, string(u.Role), u.TotalPoints, u.MissionsCompleted, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username %q taken: %w", u.Username, models.ErrConflict)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// EnsureAdmin creates the administrator account if it does not exist yet.
func (s *Store) EnsureAdmin(username, passwordHash string) error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO users (username, name, email, password_hash, role)
		VALUES (?, 'Admin', '', ?, 'admin')
	`, username, passwordHash)
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	return nil
}

// GetUser loads one account, including its pending-approval mission ids.
func (s *Store) GetUser(username string) (models.UserAccount, error) {
	var (
		u             models.UserAccount
		role          string
		lastCompleted sql.NullTime
	)
	err := s.db.QueryRow(`
		SELECT username, name, email, password_hash, role, total_points, missions_completed, last_completed_date, created_at
		FROM users WHERE username = ?
	`, username).Scan(&u.Username, &u.Name, &u.Email, &u.PasswordHash, &role,
		&u.TotalPoints, &u.MissionsCompleted, &lastCompleted, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return models.UserAccount{}, fmt.Errorf("user %q: %w", username, models.ErrNotFound)
	}
	if err != nil {
		return models.UserAccount{}, fmt.Errorf("get user: %w", err)
	}

	u.Role = models.Role(role)
	if lastCompleted.Valid {
		t := lastCompleted.Time
		u.LastCompletedDate = &t
	}

	pending, err := s.pendingApprovals(username)
	if err != nil {
		return models.UserAccount{}, err
	}
	u.PendingApprovals = pending

	return u, nil
}

// ListUsers returns all non-admin accounts ordered by points descending.
func (s *Store) ListUsers() ([]models.UserAccount, error) {
	rows, err := s.db.Query(`
		SELECT username, name, email, role, total_points, missions_completed, last_completed_date, created_at
		FROM users
		WHERE role != 'admin'
		ORDER BY total_points DESC, username ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.UserAccount
	for rows.Next() {
		var (
			u             models.UserAccount
			role          string
			lastCompleted sql.NullTime
		)
		if err := rows.Scan(&u.Username, &u.Name, &u.Email, &role,
			&u.TotalPoints, &u.MissionsCompleted, &lastCompleted, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = models.Role(role)
		if lastCompleted.Valid {
			t := lastCompleted.Time
			u.LastCompletedDate = &t
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreditUser applies an approval outcome to the ledger: points added, one
// more completed mission, completion date stamped, pending approval cleared.
func (s *Store) CreditUser(username string, points, missionID int, now time.Time) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("credit user: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE users
		SET total_points = total_points + ?,
		    missions_completed = missions_completed + 1,
		    last_completed_date = ?
		WHERE username = ?
	`, points, now, username)
	if err != nil {
		return fmt.Errorf("credit user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("user %q: %w", username, models.ErrNotFound)
	}

	if _, err := tx.Exec(`
		DELETE FROM pending_approvals WHERE username = ? AND mission_id = ?
	`, username, missionID); err != nil {
		return fmt.Errorf("clear pending approval: %w", err)
	}

	return tx.Commit()
}

// ResetUserPoints zeroes both ledger counters, leaving pending approvals
// untouched.
func (s *Store) ResetUserPoints(username string) error {
	res, err := s.db.Exec(`
		UPDATE users SET total_points = 0, missions_completed = 0 WHERE username = ?
	`, username)
	if err != nil {
		return fmt.Errorf("reset points: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("user %q: %w", username, models.ErrNotFound)
	}
	return nil
}

// DeleteUser removes an account. Submissions referencing it are retained
// as orphaned history.
func (s *Store) DeleteUser(username string) error {
	res, err := s.db.Exec("DELETE FROM users WHERE username = ?", username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("user %q: %w", username, models.ErrNotFound)
	}
	return nil
}

// ClearLastCompleted blanks the completion date on session resume for a
// new calendar day.
func (s *Store) ClearLastCompleted(username string) error {
	_, err := s.db.Exec(`
		UPDATE users SET last_completed_date = NULL WHERE username = ?
	`, username)
	if err != nil {
		return fmt.Errorf("clear last completed: %w", err)
	}
	return nil
}

func (s *Store) pendingApprovals(username string) ([]int, error) {
	rows, err := s.db.Query(`
		SELECT mission_id FROM pending_approvals WHERE username = ? ORDER BY created_at ASC
	`, username)
	if err != nil {
		return nil, fmt.Errorf("pending approvals: %w", err)
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan pending approval: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
