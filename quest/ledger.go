package quest

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"ecoquest/models"
	"ecoquest/store"
)

// Ledger tracks per-user points and completion counts. It is the only
// mutator of the user ledger fields.
type Ledger struct {
	store         *store.Store
	adminUsername string
	log           *zap.Logger
	now           func() time.Time
}

// NewLedger builds a ledger. adminUsername is the protected administrator
// account.
func NewLedger(st *store.Store, adminUsername string, log *zap.Logger) *Ledger {
	return &Ledger{
		store:         st,
		adminUsername: adminUsername,
		log:           log,
		now:           time.Now,
	}
}

// Credit applies an approval outcome to the user's ledger.
func (l *Ledger) Credit(username string, points, missionID int) (models.UserAccount, error) {
	if err := l.store.CreditUser(username, points, missionID, l.now()); err != nil {
		return models.UserAccount{}, err
	}

	l.log.Info("points credited",
		zap.String("username", username),
		zap.Int("points", points),
		zap.Int("mission_id", missionID))

	return l.store.GetUser(username)
}

// ResetPoints zeroes a user's points and completion count, leaving
// pending approvals untouched.
func (l *Ledger) ResetPoints(username string) error {
	if err := l.store.ResetUserPoints(username); err != nil {
		return err
	}
	l.log.Info("points reset", zap.String("username", username))
	return nil
}

// DeleteAccount removes a user permanently. The administrator account is
// protected; its submissions history is retained for everyone else.
func (l *Ledger) DeleteAccount(username string) error {
	if username == l.adminUsername {
		return fmt.Errorf("cannot delete %q: %w", username, models.ErrForbidden)
	}
	if err := l.store.DeleteUser(username); err != nil {
		return err
	}
	l.log.Info("account deleted", zap.String("username", username))
	return nil
}

// Leaderboard returns ranked users plus the recent approved-submission
// feed. Supported filters: all (default), top5, top10, monthly, new.
func (l *Ledger) Leaderboard(filter string) ([]models.LeaderboardEntry, []models.Submission, error) {
	users, err := l.store.ListUsers()
	if err != nil {
		return nil, nil, err
	}

	switch filter {
	case "top5":
		if len(users) > 5 {
			users = users[:5]
		}
	case "top10":
		if len(users) > 10 {
			users = users[:10]
		}
	case "monthly":
		cutoff := l.now().AddDate(0, -1, 0)
		filtered := users[:0]
		for _, u := range users {
			if u.LastCompletedDate != nil && u.LastCompletedDate.After(cutoff) {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	case "new":
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		})
	}

	entries := make([]models.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, models.LeaderboardEntry{
			Rank:              i + 1,
			Username:          u.Username,
			Name:              u.Name,
			TotalPoints:       u.TotalPoints,
			MissionsCompleted: u.MissionsCompleted,
			LastCompletedDate: u.LastCompletedDate,
		})
	}

	recent, err := l.store.RecentApproved(10)
	if err != nil {
		return nil, nil, err
	}

	return entries, recent, nil
}
