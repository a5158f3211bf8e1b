package quest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ecoquest/catalog"
	"ecoquest/models"
	"ecoquest/store"
)

type questFixture struct {
	store     *store.Store
	ledger    *Ledger
	lifecycle *Lifecycle
}

func newQuestFixture(t *testing.T) *questFixture {
	t.Helper()
	st := newTestStore(t)
	ledger := NewLedger(st, "admin", zap.NewNop())
	lifecycle := NewLifecycle(st, catalog.Default(), ledger, zap.NewNop(), nil)
	return &questFixture{store: st, ledger: ledger, lifecycle: lifecycle}
}

func (f *questFixture) addUser(t *testing.T, username string) {
	t.Helper()
	require.NoError(t, f.store.CreateUser(models.UserAccount{
		Username:     username,
		Name:         "Test User",
		Email:        username + "@example.com",
		PasswordHash: "hash",
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
	}))
}

func validDraft(f *questFixture, username string, missionID int) Draft {
	draft := f.lifecycle.StartSubmission(username, missionID, &models.Location{Lat: 1, Lng: 2})
	draft.ProofLink = "http://x"
	draft.Description = "rode my bike"
	draft.AgreedToTerms = true
	return draft
}

func TestSubmitThenApproveCreditsMissionPoints(t *testing.T) {
	f := newQuestFixture(t)
	f.addUser(t, "alice")

	// Mission 1 is worth 20 points in the catalog.
	sub, err := f.lifecycle.Submit(validDraft(f, "alice", 1))
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, sub.Status)

	user, err := f.store.GetUser("alice")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, user.PendingApprovals)

	approved, err := f.lifecycle.Approve(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)

	user, err = f.store.GetUser("alice")
	require.NoError(t, err)
	assert.Equal(t, 20, user.TotalPoints)
	assert.Equal(t, 1, user.MissionsCompleted)
	assert.Empty(t, user.PendingApprovals)
	assert.NotNil(t, user.LastCompletedDate)
}

func TestApproveHonorsPerMissionPoints(t *testing.T) {
	f := newQuestFixture(t)
	f.addUser(t, "alice")

	// Mission 9 (Plant a Tree) is worth 40 points.
	sub, err := f.lifecycle.Submit(validDraft(f, "alice", 9))
	require.NoError(t, err)

	_, err = f.lifecycle.Approve(sub.ID)
	require.NoError(t, err)

	user, err := f.store.GetUser("alice")
	require.NoError(t, err)
	assert.Equal(t, 40, user.TotalPoints)
}

func TestRejectLeavesLedgerUntouched(t *testing.T) {
	f := newQuestFixture(t)
	f.addUser(t, "alice")

	sub, err := f.lifecycle.Submit(validDraft(f, "alice", 3))
	require.NoError(t, err)

	rejected, err := f.lifecycle.Reject(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)

	user, err := f.store.GetUser("alice")
	require.NoError(t, err)
	assert.Zero(t, user.TotalPoints)
	assert.Zero(t, user.MissionsCompleted)
}

func TestTerminalSubmissionsAreNeverReDecided(t *testing.T) {
	f := newQuestFixture(t)
	f.addUser(t, "alice")

	sub, err := f.lifecycle.Submit(validDraft(f, "alice", 1))
	require.NoError(t, err)

	_, err = f.lifecycle.Approve(sub.ID)
	require.NoError(t, err)

	// Re-approving must not double-credit.
	_, err = f.lifecycle.Approve(sub.ID)
	assert.ErrorIs(t, err, models.ErrInvalidState)

	_, err = f.lifecycle.Reject(sub.ID)
	assert.ErrorIs(t, err, models.ErrInvalidState)

	user, err := f.store.GetUser("alice")
	require.NoError(t, err)
	assert.Equal(t, 20, user.TotalPoints)
	assert.Equal(t, 1, user.MissionsCompleted)
}

func TestSubmitValidation(t *testing.T) {
	f := newQuestFixture(t)
	f.addUser(t, "alice")

	noLocation := f.lifecycle.StartSubmission("alice", 1, nil)
	noLocation.ProofLink = "http://x"
	noLocation.AgreedToTerms = true
	_, err := f.lifecycle.Submit(noLocation)
	assert.ErrorIs(t, err, models.ErrValidation)

	noProof := validDraft(f, "alice", 1)
	noProof.ProofLink = ""
	_, err = f.lifecycle.Submit(noProof)
	assert.ErrorIs(t, err, models.ErrValidation)

	noTerms := validDraft(f, "alice", 1)
	noTerms.AgreedToTerms = false
	_, err = f.lifecycle.Submit(noTerms)
	assert.ErrorIs(t, err, models.ErrValidation)

	// No record was created by any failed attempt.
	subs, err := f.store.ListUserSubmissions("alice")
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestSubmitUnknownMissionOrUser(t *testing.T) {
	f := newQuestFixture(t)
	f.addUser(t, "alice")

	_, err := f.lifecycle.Submit(validDraft(f, "alice", 999))
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = f.lifecycle.Submit(validDraft(f, "ghost", 1))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDuplicateSubmissionRefused(t *testing.T) {
	f := newQuestFixture(t)
	f.addUser(t, "alice")

	sub, err := f.lifecycle.Submit(validDraft(f, "alice", 1))
	require.NoError(t, err)

	_, err = f.lifecycle.Submit(validDraft(f, "alice", 1))
	assert.ErrorIs(t, err, models.ErrConflict)

	// After a rejection the mission can be attempted again.
	_, err = f.lifecycle.Reject(sub.ID)
	require.NoError(t, err)

	_, err = f.lifecycle.Submit(validDraft(f, "alice", 1))
	assert.NoError(t, err)
}

func TestApproveOrphanedSubmission(t *testing.T) {
	f := newQuestFixture(t)
	f.addUser(t, "alice")

	sub, err := f.lifecycle.Submit(validDraft(f, "alice", 1))
	require.NoError(t, err)

	require.NoError(t, f.store.DeleteUser("alice"))

	// The transition stands even though there is no ledger to credit.
	approved, err := f.lifecycle.Approve(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)
}
