package services

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/Shxreef603/Fitly/ledger"
	"github.com/Shxreef603/Fitly/models"
)

var ErrInvalidSlot = errors.New("unknown meal slot")

// defaultCustomPlanDays applies when a custom plan is picked without a
// duration.
const defaultCustomPlanDays = 30

// Session holds one signed-in user's working state: the meal ledger,
// active plan and profile, all loaded local-first. Mutations are
// serialized per session and handed to the SyncCoordinator, never
// written directly.
type Session struct {
	userID uint
	mu     sync.Mutex

	meals   ledger.Ledger
	plan    *ledger.Plan
	profile *models.Profile

	sync *SyncCoordinator
}

// SessionManager hands out one Session per user, creating and
// hydrating it on first use.
type SessionManager struct {
	mu       sync.Mutex
	dataDir  string
	remote   *RemoteStore
	hub      *SyncHub
	sessions map[uint]*Session
}

func NewSessionManager(dataDir string, remote *RemoteStore, hub *SyncHub) *SessionManager {
	return &SessionManager{
		dataDir:  dataDir,
		remote:   remote,
		hub:      hub,
		sessions: make(map[uint]*Session),
	}
}

// Session returns the user's session, creating it from the local store
// on first call. Remote copies of the profile and plan are fetched
// best-effort and overwrite the local ones when present (last fetch
// wins); remote failure leaves local state authoritative.
func (m *SessionManager) Session(userID uint) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s, nil
	}

	local, err := NewFileStore(filepath.Join(m.dataDir, fmt.Sprintf("user-%d.json", userID)))
	if err != nil {
		return nil, err
	}

	s := &Session{
		userID: userID,
		sync:   NewSyncCoordinator(userID, local, m.remote, m.hub),
	}
	if s.meals, err = s.sync.LoadLocalMeals(); err != nil {
		return nil, err
	}
	if s.plan, err = s.sync.LoadLocalPlan(); err != nil {
		return nil, err
	}
	if s.profile, err = s.sync.LoadLocalProfile(); err != nil {
		return nil, err
	}

	if plan, err := s.sync.FetchRemotePlan(); err != nil {
		log.Printf("plan fetch failed for user %d: %v", userID, err)
	} else if plan != nil {
		s.plan = plan
		_ = s.sync.SavePlan(*plan)
	}
	if profile, err := s.sync.FetchRemoteProfile(); err != nil {
		log.Printf("profile fetch failed for user %d: %v", userID, err)
	} else if profile != nil {
		s.profile = profile
		_ = s.sync.SaveProfile(*profile)
	}

	m.sessions[userID] = s
	return s, nil
}

// Drop discards a user's in-memory session. The next access rebuilds
// it from the stores.
func (m *SessionManager) Drop(userID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		s.sync.Flush()
		delete(m.sessions, userID)
	}
}

// Flush waits for every session's in-flight mirrors. Called on
// shutdown.
func (m *SessionManager) Flush() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		s.sync.Flush()
	}
}

// MealsForDate returns the day's slots, first refreshing them from the
// remote store when one is reachable. Whatever was fetched last
// overwrites the local copy.
func (s *Session) MealsForDate(dateKey string) (ledger.DaySlots, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if day, ok, err := s.sync.FetchRemoteDay(dateKey); err != nil {
		log.Printf("day fetch failed for user %d %s: %v", s.userID, dateKey, err)
	} else if ok {
		s.meals[dateKey] = day
		if err := s.sync.SaveMeals(s.meals, dateKey, day); err != nil {
			return nil, err
		}
	}

	if day, ok := s.meals[dateKey]; ok {
		return day, nil
	}
	return ledger.InitializeDaySlots(), nil
}

// AddMeal logs a new entry into the given slot of the given day.
func (s *Session) AddMeal(dateKey string, slot ledger.Slot, entry ledger.MealEntry) (ledger.DaySlots, error) {
	if !ledger.ValidSlot(slot) {
		return nil, ErrInvalidSlot
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	day, ok := s.meals[dateKey]
	if !ok {
		day = ledger.InitializeDaySlots()
	}
	updated := ledger.AddMeal(day, slot, entry)
	return updated, s.persistDay(dateKey, updated)
}

// RemoveMeal drops an entry by id. Unknown ids leave the day as is.
func (s *Session) RemoveMeal(dateKey string, slot ledger.Slot, mealID string) (ledger.DaySlots, error) {
	if !ledger.ValidSlot(slot) {
		return nil, ErrInvalidSlot
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	day, ok := s.meals[dateKey]
	if !ok {
		day = ledger.InitializeDaySlots()
	}
	updated := ledger.RemoveMeal(day, slot, mealID)
	return updated, s.persistDay(dateKey, updated)
}

// UpdateMeal merges partial fields into an entry by id.
func (s *Session) UpdateMeal(dateKey string, slot ledger.Slot, mealID string, updates ledger.MealUpdate) (ledger.DaySlots, error) {
	if !ledger.ValidSlot(slot) {
		return nil, ErrInvalidSlot
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	day, ok := s.meals[dateKey]
	if !ok {
		day = ledger.InitializeDaySlots()
	}
	updated := ledger.UpdateMeal(day, slot, mealID, updates)
	return updated, s.persistDay(dateKey, updated)
}

// persistDay commits the new day value through the coordinator. Caller
// holds s.mu, so mutations hit the local store in issue order.
func (s *Session) persistDay(dateKey string, day ledger.DaySlots) error {
	next := make(ledger.Ledger, len(s.meals)+1)
	for k, v := range s.meals {
		next[k] = v
	}
	next[dateKey] = day
	if err := s.sync.SaveMeals(next, dateKey, day); err != nil {
		return err
	}
	s.meals = next
	return nil
}

// Totals recomputes the day's macro sums from the ledger. Derived
// values are never persisted.
func (s *Session) Totals(dateKey string) ledger.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, ok := s.meals[dateKey]
	if !ok {
		return ledger.Totals{}
	}
	return ledger.CalculateTotals(day)
}

// Streak recomputes the consecutive-day streak ending today.
func (s *Session) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ledger.CalculateStreak(s.meals, time.Now())
}

// Plan returns the active plan, nil when none is selected.
func (s *Session) Plan() *ledger.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan
}

// SelectPlan activates a plan starting now, replacing any previous one.
// A custom plan without a duration gets the default.
func (s *Session) SelectPlan(planType ledger.PlanType, duration int) (ledger.Plan, error) {
	if duration <= 0 {
		if planType != ledger.PlanCustom {
			return ledger.Plan{}, errors.New("plan duration must be positive")
		}
		duration = defaultCustomPlanDays
	}

	p := ledger.Plan{Type: planType, StartDate: time.Now(), Duration: duration}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sync.SavePlan(p); err != nil {
		return ledger.Plan{}, err
	}
	s.plan = &p
	return p, nil
}

// ReplacePlan overwrites the active plan wholesale.
func (s *Session) ReplacePlan(p ledger.Plan) error {
	if p.Duration <= 0 {
		return errors.New("plan duration must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sync.SavePlan(p); err != nil {
		return err
	}
	s.plan = &p
	return nil
}

// PlanProgress recomputes progress from the active plan as of now.
func (s *Session) PlanProgress() ledger.PlanProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ledger.GetPlanProgress(s.plan, time.Now())
}

// Profile returns the stored profile, nil before onboarding.
func (s *Session) Profile() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SaveProfile replaces the profile and mirrors it.
func (s *Session) SaveProfile(p models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sync.SaveProfile(p); err != nil {
		return err
	}
	s.profile = &p
	return nil
}

// Goals returns the current macro targets, zero when unset.
func (s *Session) Goals() models.MacroTargets {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return models.MacroTargets{}
	}
	return s.profile.Macros
}

// SaveGoals updates just the macro targets within the profile.
func (s *Session) SaveGoals(m models.MacroTargets) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := models.Profile{}
	if s.profile != nil {
		p = *s.profile
	}
	p.Macros = m
	if err := s.sync.SaveProfile(p); err != nil {
		return err
	}
	s.profile = &p
	return nil
}

// Syncing reports whether a remote mirror attempt is in flight.
func (s *Session) Syncing() bool { return s.sync.Syncing() }

// ConsumeSyncFailed returns and clears the one-shot sync-failed flag.
func (s *Session) ConsumeSyncFailed() bool { return s.sync.ConsumeSyncFailed() }
