package quest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoquest/models"
)

func TestResetPointsKeepsPendingApprovals(t *testing.T) {
	f := newQuestFixture(t)
	f.addUser(t, "alice")

	first, err := f.lifecycle.Submit(validDraft(f, "alice", 1))
	require.NoError(t, err)
	_, err = f.lifecycle.Approve(first.ID)
	require.NoError(t, err)

	_, err = f.lifecycle.Submit(validDraft(f, "alice", 2))
	require.NoError(t, err)

	require.NoError(t, f.ledger.ResetPoints("alice"))

	user, err := f.store.GetUser("alice")
	require.NoError(t, err)
	assert.Zero(t, user.TotalPoints)
	assert.Zero(t, user.MissionsCompleted)
	assert.Equal(t, []int{2}, user.PendingApprovals)
}

func TestDeleteAccountProtectsAdmin(t *testing.T) {
	f := newQuestFixture(t)
	require.NoError(t, f.store.EnsureAdmin("admin", "hash"))
	f.addUser(t, "alice")

	err := f.ledger.DeleteAccount("admin")
	assert.ErrorIs(t, err, models.ErrForbidden)

	require.NoError(t, f.ledger.DeleteAccount("alice"))
	_, err = f.store.GetUser("alice")
	assert.ErrorIs(t, err, models.ErrNotFound)

	err = f.ledger.DeleteAccount("alice")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLeaderboardRanking(t *testing.T) {
	f := newQuestFixture(t)
	require.NoError(t, f.store.EnsureAdmin("admin", "hash"))
	f.addUser(t, "alice")
	f.addUser(t, "bob")
	f.addUser(t, "carol")

	require.NoError(t, f.store.CreditUser("bob", 50, 1, time.Now()))
	require.NoError(t, f.store.CreditUser("carol", 20, 2, time.Now()))

	entries, _, err := f.ledger.Leaderboard("all")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "bob", entries[0].Username)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "carol", entries[1].Username)
	assert.Equal(t, "alice", entries[2].Username)

	// The admin account never appears on the leaderboard.
	for _, e := range entries {
		assert.NotEqual(t, "admin", e.Username)
	}
}

func TestLeaderboardFilters(t *testing.T) {
	f := newQuestFixture(t)
	for _, name := range []string{"u1", "u2", "u3", "u4", "u5", "u6", "u7"} {
		f.addUser(t, name)
	}

	entries, _, err := f.ledger.Leaderboard("top5")
	require.NoError(t, err)
	assert.Len(t, entries, 5)

	// Only users with a completion in the last month survive the
	// monthly filter.
	require.NoError(t, f.store.CreditUser("u3", 20, 1, time.Now()))
	entries, _, err = f.ledger.Leaderboard("monthly")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "u3", entries[0].Username)
}

func TestLeaderboardNewFilter(t *testing.T) {
	f := newQuestFixture(t)

	base := time.Now().Add(-72 * time.Hour)
	for i, name := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, f.store.CreateUser(models.UserAccount{
			Username:     name,
			Name:         "Test User",
			PasswordHash: "hash",
			Role:         models.RoleUser,
			CreatedAt:    base.Add(time.Duration(i) * 24 * time.Hour),
		}))
	}
	// Points decide rank everywhere else; the new filter orders by join
	// date alone.
	require.NoError(t, f.store.CreditUser("oldest", 50, 1, time.Now()))

	entries, _, err := f.ledger.Leaderboard("new")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "newest", entries[0].Username)
	assert.Equal(t, "middle", entries[1].Username)
	assert.Equal(t, "oldest", entries[2].Username)
}

func TestLeaderboardRecentFeed(t *testing.T) {
	f := newQuestFixture(t)
	f.addUser(t, "alice")

	sub, err := f.lifecycle.Submit(validDraft(f, "alice", 1))
	require.NoError(t, err)
	_, err = f.lifecycle.Approve(sub.ID)
	require.NoError(t, err)

	_, recent, err := f.ledger.Leaderboard("all")
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, sub.ID, recent[0].ID)
	assert.Equal(t, models.StatusApproved, recent[0].Status)
}
