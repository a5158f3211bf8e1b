// Package quest implements the EcoQuest core: the daily mission selector,
// the submission lifecycle and the account ledger.
package quest

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"ecoquest/catalog"
	"ecoquest/models"
	"ecoquest/store"
)

// Selector rotates the active mission set once per calendar day at the
// reset hour.
type Selector struct {
	store     *store.Store
	catalog   *catalog.Catalog
	count     int
	resetHour int
	log       *zap.Logger
	notify    func()

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector builds a selector drawing count missions per day. notify is
// invoked after a rotation and may be nil.
func NewSelector(st *store.Store, cat *catalog.Catalog, count, resetHour int, log *zap.Logger, notify func()) *Selector {
	return &Selector{
		store:     st,
		catalog:   cat,
		count:     count,
		resetHour: resetHour,
		log:       log,
		notify:    notify,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed replaces the random source, for deterministic draws in tests.
func (s *Selector) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = rand.New(rand.NewSource(seed))
}

// ActiveMissions returns the day's mission set, drawing and persisting a
// fresh one when the reset condition holds. Before the reset hour the
// previous day's set keeps being served.
func (s *Selector) ActiveMissions(now time.Time) ([]models.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dateKey := models.DateKey(now)

	if ids, err := s.store.GetMissionSet(dateKey); err == nil {
		return s.resolve(ids)
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	lastReset, err := s.store.LastResetDate()
	if err != nil {
		return nil, err
	}

	if lastReset != dateKey && now.Hour() >= s.resetHour {
		return s.rotate(dateKey, now)
	}

	// Before the reset hour: keep serving whatever set exists, even from
	// a previous day.
	if _, ids, err := s.store.LatestMissionSet(); err == nil {
		return s.resolve(ids)
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	// First load ever: there is nothing to carry over, so draw a set for
	// today regardless of the hour.
	return s.rotate(dateKey, now)
}

// Run re-evaluates the reset condition on a fixed interval so a session
// open across the reset hour picks up the new set without a reload. It
// returns when ctx is cancelled.
func (s *Selector) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.ActiveMissions(time.Now()); err != nil {
				s.log.Error("mission reset check failed", zap.Error(err))
			}
		}
	}
}

func (s *Selector) rotate(dateKey string, now time.Time) ([]models.Mission, error) {
	if s.count > s.catalog.Len() {
		return nil, fmt.Errorf("catalog has %d missions, need %d", s.catalog.Len(), s.count)
	}

	all := s.catalog.All()
	ids := make([]int, 0, s.count)
	for _, i := range s.rng.Perm(len(all))[:s.count] {
		ids = append(ids, all[i].ID)
	}

	if err := s.store.SaveMissionSet(dateKey, ids, now); err != nil {
		return nil, err
	}

	s.log.Info("daily missions rotated",
		zap.String("date_key", dateKey),
		zap.Ints("mission_ids", ids))
	if s.notify != nil {
		s.notify()
	}

	// Re-read in case a concurrent caller won the INSERT OR IGNORE race.
	stored, err := s.store.GetMissionSet(dateKey)
	if err != nil {
		return nil, err
	}
	return s.resolve(stored)
}

func (s *Selector) resolve(ids []int) ([]models.Mission, error) {
	missions := make([]models.Mission, 0, len(ids))
	for _, id := range ids {
		m, err := s.catalog.Get(id)
		if err != nil {
			// A set drawn against an older catalog may reference a
			// retired mission; skip it rather than fail the whole day.
			s.log.Warn("mission set references unknown mission", zap.Int("mission_id", id))
			continue
		}
		missions = append(missions, m)
	}
	return missions, nil
}
