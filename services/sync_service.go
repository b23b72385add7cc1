package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Shxreef603/Fitly/ledger"
	"github.com/Shxreef603/Fitly/models"
)

// SyncCoordinator implements the local-first dual write. Every mutation
// lands in the local store before the call returns; when a signed-in
// user exists the same value is mirrored to the remote store in the
// background. Remote failure never rolls back the local copy and never
// blocks the caller: it is logged, flagged once for the next load, and
// the app keeps running off local state.
//
// The coordinator owns no data, only the transient syncing indicator
// and the one-shot failure flag.
type SyncCoordinator struct {
	userID uint
	local  LocalStore
	remote *RemoteStore // nil when there is no session to mirror to
	hub    *SyncHub     // optional, UI feedback only

	inflight   sync.WaitGroup
	syncing    atomic.Int32
	syncFailed atomic.Bool
}

func NewSyncCoordinator(userID uint, local LocalStore, remote *RemoteStore, hub *SyncHub) *SyncCoordinator {
	return &SyncCoordinator{userID: userID, local: local, remote: remote, hub: hub}
}

// Syncing reports whether a remote mirror attempt is in flight.
func (s *SyncCoordinator) Syncing() bool { return s.syncing.Load() > 0 }

// ConsumeSyncFailed returns the one-shot sync-failed flag and clears
// it, so the UI can show its "saved on this device, cloud sync
// incomplete" banner exactly once.
func (s *SyncCoordinator) ConsumeSyncFailed() bool {
	return s.syncFailed.Swap(false)
}

// Flush waits for in-flight remote attempts. Used on shutdown and in
// tests; callers never wait on it for correctness.
func (s *SyncCoordinator) Flush() { s.inflight.Wait() }

// SaveMeals persists the whole meals-by-date mapping locally, then
// mirrors just the touched day remotely.
func (s *SyncCoordinator) SaveMeals(all ledger.Ledger, dateKey string, day ledger.DaySlots) error {
	encoded, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to encode meals: %w", err)
	}
	if err := s.local.Set(KeyMealsByDate, string(encoded)); err != nil {
		return err
	}
	s.mirror(KeyMealsByDate, func(r *RemoteStore) error {
		return r.SetMealsForDate(s.userID, dateKey, day)
	})
	return nil
}

// SavePlan persists the active plan locally and mirrors it remotely.
func (s *SyncCoordinator) SavePlan(p ledger.Plan) error {
	encoded, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	if err := s.local.Set(KeyActivePlan, string(encoded)); err != nil {
		return err
	}
	s.mirror(KeyActivePlan, func(r *RemoteStore) error {
		return r.SetPlan(s.userID, p)
	})
	return nil
}

// SaveProfile persists the profile (including macro targets) locally
// and mirrors it remotely.
func (s *SyncCoordinator) SaveProfile(p models.Profile) error {
	encoded, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := s.local.Set(KeyUserProfile, string(encoded)); err != nil {
		return err
	}
	s.mirror(KeyUserProfile, func(r *RemoteStore) error {
		return r.SetProfile(s.userID, p)
	})
	return nil
}

// mirror runs one fire-and-forget remote attempt. No retry, no
// rollback: the local write already committed. Attempts do not wait on
// each other, so the remote side is last-write-wins per whole record.
func (s *SyncCoordinator) mirror(key string, write func(*RemoteStore) error) {
	if s.remote == nil || s.userID == 0 {
		return
	}

	s.syncing.Add(1)
	s.broadcast("sync.started", key, nil)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		err := write(s.remote)
		s.syncing.Add(-1)
		if err != nil {
			log.Printf("remote sync failed for %s (user %d): %v", key, s.userID, err)
			s.syncFailed.Store(true)
			s.broadcast("sync.failed", key, err)
			return
		}
		s.broadcast("sync.completed", key, nil)
	}()
}

func (s *SyncCoordinator) broadcast(kind, key string, err error) {
	if s.hub == nil {
		return
	}
	ev := models.SyncEvent{
		UserID:    s.userID,
		Kind:      kind,
		Key:       key,
		Timestamp: time.Now(),
	}
	if err != nil {
		ev.Error = err.Error()
	}
	s.hub.BroadcastSync(ev)
}

// LoadLocalMeals reads the meals-by-date mapping back from the local
// store. An absent key is an empty ledger.
func (s *SyncCoordinator) LoadLocalMeals() (ledger.Ledger, error) {
	raw, ok, err := s.local.Get(KeyMealsByDate)
	if err != nil {
		return nil, err
	}
	if !ok {
		return ledger.Ledger{}, nil
	}
	l := ledger.Ledger{}
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		return nil, fmt.Errorf("failed to decode stored meals: %w", err)
	}
	return l, nil
}

// LoadLocalPlan reads the active plan, nil when none was saved.
func (s *SyncCoordinator) LoadLocalPlan() (*ledger.Plan, error) {
	raw, ok, err := s.local.Get(KeyActivePlan)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var p ledger.Plan
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("failed to decode stored plan: %w", err)
	}
	return &p, nil
}

// LoadLocalProfile reads the profile, nil when none was saved.
func (s *SyncCoordinator) LoadLocalProfile() (*models.Profile, error) {
	raw, ok, err := s.local.Get(KeyUserProfile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var p models.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("failed to decode stored profile: %w", err)
	}
	return &p, nil
}

// FetchRemoteDay pulls one day from the remote store. The caller
// overwrites its local copy with whatever came back (last fetch wins).
func (s *SyncCoordinator) FetchRemoteDay(dateKey string) (ledger.DaySlots, bool, error) {
	if s.remote == nil || s.userID == 0 {
		return nil, false, nil
	}
	return s.remote.GetMealsForDate(s.userID, dateKey)
}

// FetchRemotePlan pulls the active plan from the remote store.
func (s *SyncCoordinator) FetchRemotePlan() (*ledger.Plan, error) {
	if s.remote == nil || s.userID == 0 {
		return nil, nil
	}
	return s.remote.GetPlan(s.userID)
}

// FetchRemoteProfile pulls the profile from the remote store.
func (s *SyncCoordinator) FetchRemoteProfile() (*models.Profile, error) {
	if s.remote == nil || s.userID == 0 {
		return nil, nil
	}
	return s.remote.GetProfile(s.userID)
}
