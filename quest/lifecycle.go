package quest

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ecoquest/catalog"
	"ecoquest/models"
	"ecoquest/store"
)

// Draft is a submission being assembled by a user. A missing location is
// a degraded state, not an error; Submit decides whether it blocks.
type Draft struct {
	Username      string           `json:"username"`
	MissionID     int              `json:"mission_id"`
	Location      *models.Location `json:"location,omitempty"`
	ProofLink     string           `json:"proof_link"`
	Description   string           `json:"description"`
	AgreedToTerms bool             `json:"agreed_to_terms"`
}

// Lifecycle creates submissions and moves them through their single
// pending -> approved/rejected transition.
type Lifecycle struct {
	store   *store.Store
	catalog *catalog.Catalog
	ledger  *Ledger
	log     *zap.Logger
	notify  func()
	now     func() time.Time
}

// NewLifecycle builds the submission lifecycle manager. notify is invoked
// after any state change and may be nil.
func NewLifecycle(st *store.Store, cat *catalog.Catalog, ledger *Ledger, log *zap.Logger, notify func()) *Lifecycle {
	return &Lifecycle{
		store:   st,
		catalog: cat,
		ledger:  ledger,
		log:     log,
		notify:  notify,
		now:     time.Now,
	}
}

// StartSubmission opens a draft for a mission. Location acquisition may
// have failed upstream; the draft is still usable and Submit will reject
// it if the location is required but absent.
func (lc *Lifecycle) StartSubmission(username string, missionID int, loc *models.Location) Draft {
	return Draft{
		Username:  username,
		MissionID: missionID,
		Location:  loc,
	}
}

// Submit validates a draft and persists it as a pending submission,
// marking the mission pending on the user's account. A duplicate
// in-flight or already-approved (user, mission) pair is refused.
func (lc *Lifecycle) Submit(d Draft) (models.Submission, error) {
	if _, err := lc.catalog.Get(d.MissionID); err != nil {
		return models.Submission{}, err
	}

	if err := validateDraft(d); err != nil {
		return models.Submission{}, err
	}

	if _, err := lc.store.GetUser(d.Username); err != nil {
		return models.Submission{}, err
	}

	active, err := lc.store.HasActiveSubmission(d.Username, d.MissionID)
	if err != nil {
		return models.Submission{}, err
	}
	if active {
		return models.Submission{}, fmt.Errorf("mission %d already submitted by %q: %w",
			d.MissionID, d.Username, models.ErrConflict)
	}

	sub := models.Submission{
		ID:            uuid.NewString(),
		Username:      d.Username,
		MissionID:     d.MissionID,
		Location:      d.Location,
		ProofLink:     d.ProofLink,
		Description:   d.Description,
		AgreedToTerms: d.AgreedToTerms,
		Status:        models.StatusPending,
		CreatedAt:     lc.now(),
	}

	if err := lc.store.CreateSubmission(sub); err != nil {
		return models.Submission{}, err
	}

	lc.log.Info("submission created",
		zap.String("submission_id", sub.ID),
		zap.String("username", sub.Username),
		zap.Int("mission_id", sub.MissionID))
	lc.changed()

	return sub, nil
}

// Approve moves a pending submission to approved and credits the user
// with the mission's point value. A terminal submission is never credited
// again.
func (lc *Lifecycle) Approve(submissionID string) (models.Submission, error) {
	sub, err := lc.store.DecideSubmission(submissionID, models.StatusApproved, lc.now())
	if err != nil {
		return models.Submission{}, err
	}

	points := lc.missionPoints(sub.MissionID)
	if _, err := lc.ledger.Credit(sub.Username, points, sub.MissionID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// Orphaned submission: its user was deleted after submitting.
			// The status transition stands; there is no ledger to credit.
			lc.log.Warn("approved submission has no account",
				zap.String("submission_id", sub.ID),
				zap.String("username", sub.Username))
		} else {
			return models.Submission{}, err
		}
	}

	lc.log.Info("submission approved",
		zap.String("submission_id", sub.ID),
		zap.String("username", sub.Username),
		zap.Int("points", points))
	lc.changed()

	return sub, nil
}

// Reject moves a pending submission to rejected. The ledger is untouched.
func (lc *Lifecycle) Reject(submissionID string) (models.Submission, error) {
	sub, err := lc.store.DecideSubmission(submissionID, models.StatusRejected, lc.now())
	if err != nil {
		return models.Submission{}, err
	}

	lc.log.Info("submission rejected",
		zap.String("submission_id", sub.ID),
		zap.String("username", sub.Username))
	lc.changed()

	return sub, nil
}

// defaultReward is the flat reward used when a submission references a
// mission the catalog no longer knows.
const defaultReward = 20

func (lc *Lifecycle) missionPoints(missionID int) int {
	m, err := lc.catalog.Get(missionID)
	if err != nil {
		return defaultReward
	}
	return m.Points
}

func (lc *Lifecycle) changed() {
	if lc.notify != nil {
		lc.notify()
	}
}

func validateDraft(d Draft) error {
	switch {
	case d.Location == nil:
		return fmt.Errorf("location is required: %w", models.ErrValidation)
	case d.ProofLink == "":
		return fmt.Errorf("proof link is required: %w", models.ErrValidation)
	case !d.AgreedToTerms:
		return fmt.Errorf("originality terms must be accepted: %w", models.ErrValidation)
	}
	return nil
}
