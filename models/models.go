package models

import "time"

// Role is an explicit account role rather than a sentinel username check.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// SubmissionStatus is the lifecycle state of a mission submission.
// A submission transitions exactly once from pending to a terminal state.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// Mission is a single eco-action challenge with a fixed point reward.
type Mission struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Points      int    `json:"points" yaml:"points"`
}

// Location is a latitude/longitude pair attached to a submission.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// UserAccount is the per-user ledger record.
type UserAccount struct {
	Username          string     `json:"username"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	PasswordHash      string     `json:"-"`
	Role              Role       `json:"role"`
	TotalPoints       int        `json:"total_points"`
	MissionsCompleted int        `json:"missions_completed"`
	LastCompletedDate *time.Time `json:"last_completed_date,omitempty"`
	PendingApprovals  []int      `json:"pending_approvals"`
	CreatedAt         time.Time  `json:"created_at"`
}

// Submission is a user's proof-of-completion record for a mission.
// Only Status changes after creation.
type Submission struct {
	ID            string           `json:"id"`
	Username      string           `json:"username"`
	MissionID     int              `json:"mission_id"`
	Location      *Location        `json:"location,omitempty"`
	ProofLink     string           `json:"proof_link"`
	Description   string           `json:"description"`
	AgreedToTerms bool             `json:"agreed_to_terms"`
	Status        SubmissionStatus `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	DecidedAt     *time.Time       `json:"decided_at,omitempty"`
}

// DailyMissionSet records the missions active for one calendar day.
// Never mutated once created for a given date key.
type DailyMissionSet struct {
	DateKey    string    `json:"date_key"`
	MissionIDs []int     `json:"mission_ids"`
	CreatedAt  time.Time `json:"created_at"`
}

// LeaderboardEntry is one ranked row of the public leaderboard.
type LeaderboardEntry struct {
	Rank              int        `json:"rank"`
	Username          string     `json:"username"`
	Name              string     `json:"name"`
	TotalPoints       int        `json:"total_points"`
	MissionsCompleted int        `json:"missions_completed"`
	LastCompletedDate *time.Time `json:"last_completed_date,omitempty"`
}

// DateKey formats t in the YYYY-MM-DD form used for daily mission sets.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}
