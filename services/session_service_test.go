package services

import (
	"testing"
	"time"

	"github.com/Shxreef603/Fitly/ledger"
	"github.com/Shxreef603/Fitly/models"
)

func testManager(t *testing.T) *SessionManager {
	t.Helper()
	return NewSessionManager(t.TempDir(), nil, nil)
}

func TestSessionAddRemoveUpdateMeal(t *testing.T) {
	m := testManager(t)
	s, err := m.Session(1)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}

	today := ledger.ToDateKey(time.Now())
	entry := ledger.NewMealEntry("Chicken Bowl", 520, 42, 48, 14, "🍗")

	day, err := s.AddMeal(today, ledger.SlotLunch, entry)
	if err != nil {
		t.Fatalf("AddMeal: %v", err)
	}
	if len(day[ledger.SlotLunch]) != 1 {
		t.Fatalf("lunch entries = %d, want 1", len(day[ledger.SlotLunch]))
	}

	newCals := 600.0
	day, err = s.UpdateMeal(today, ledger.SlotLunch, entry.ID, ledger.MealUpdate{Calories: &newCals})
	if err != nil {
		t.Fatalf("UpdateMeal: %v", err)
	}
	if got := day[ledger.SlotLunch][0].Calories; got != 600 {
		t.Errorf("calories after update = %v, want 600", got)
	}

	day, err = s.RemoveMeal(today, ledger.SlotLunch, entry.ID)
	if err != nil {
		t.Fatalf("RemoveMeal: %v", err)
	}
	if len(day[ledger.SlotLunch]) != 0 {
		t.Errorf("lunch entries after remove = %d, want 0", len(day[ledger.SlotLunch]))
	}
}

func TestSessionRejectsUnknownSlot(t *testing.T) {
	m := testManager(t)
	s, err := m.Session(1)
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.AddMeal("2025-03-01", ledger.Slot("brunch"), ledger.NewMealEntry("Toast", 200, 6, 30, 5, ""))
	if err != ErrInvalidSlot {
		t.Errorf("err = %v, want ErrInvalidSlot", err)
	}
}

func TestSessionTotalsAndStreak(t *testing.T) {
	m := testManager(t)
	s, err := m.Session(1)
	if err != nil {
		t.Fatal(err)
	}

	now := time.Now()
	today := ledger.ToDateKey(now)
	yesterday := ledger.ToDateKey(now.AddDate(0, 0, -1))

	if _, err := s.AddMeal(today, ledger.SlotBreakfast, ledger.NewMealEntry("Oats", 300, 10, 50, 6, "")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddMeal(today, ledger.SlotDinner, ledger.NewMealEntry("Steak", 700, 60, 5, 45, "")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddMeal(yesterday, ledger.SlotLunch, ledger.NewMealEntry("Wrap", 450, 25, 40, 18, "")); err != nil {
		t.Fatal(err)
	}

	totals := s.Totals(today)
	if totals.Calories != 1000 || totals.Protein != 70 {
		t.Errorf("totals = %+v", totals)
	}
	if got := s.Streak(); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestSessionSurvivesDrop(t *testing.T) {
	m := testManager(t)
	s, err := m.Session(1)
	if err != nil {
		t.Fatal(err)
	}

	entry := ledger.NewMealEntry("Pasta", 650, 22, 90, 20, "🍝")
	if _, err := s.AddMeal("2025-03-01", ledger.SlotDinner, entry); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SelectPlan(ledger.PlanNoSugar, 30); err != nil {
		t.Fatal(err)
	}

	m.Drop(1)

	reloaded, err := m.Session(1)
	if err != nil {
		t.Fatal(err)
	}
	day, err := reloaded.MealsForDate("2025-03-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(day[ledger.SlotDinner]) != 1 || day[ledger.SlotDinner][0].ID != entry.ID {
		t.Errorf("meals lost across sessions: %+v", day)
	}
	plan := reloaded.Plan()
	if plan == nil || plan.Type != ledger.PlanNoSugar {
		t.Errorf("plan lost across sessions: %+v", plan)
	}
}

func TestSelectPlanDefaults(t *testing.T) {
	m := testManager(t)
	s, err := m.Session(1)
	if err != nil {
		t.Fatal(err)
	}

	p, err := s.SelectPlan(ledger.PlanCustom, 0)
	if err != nil {
		t.Fatalf("SelectPlan: %v", err)
	}
	if p.Duration != defaultCustomPlanDays {
		t.Errorf("custom duration = %d, want %d", p.Duration, defaultCustomPlanDays)
	}

	if _, err := s.SelectPlan(ledger.PlanSevenDay, 0); err == nil {
		t.Error("built-in plan without duration should error")
	}
}

func TestReplacePlanValidatesDuration(t *testing.T) {
	m := testManager(t)
	s, err := m.Session(1)
	if err != nil {
		t.Fatal(err)
	}
	err = s.ReplacePlan(ledger.Plan{Type: ledger.PlanCustom, StartDate: time.Now(), Duration: 0})
	if err == nil {
		t.Error("zero duration should be rejected")
	}
}

func TestSessionPlanProgress(t *testing.T) {
	m := testManager(t)
	s, err := m.Session(1)
	if err != nil {
		t.Fatal(err)
	}

	if got := s.PlanProgress(); got != (ledger.PlanProgress{}) {
		t.Errorf("progress without plan = %+v, want zero", got)
	}

	start := time.Now().Add(-48 * time.Hour)
	if err := s.ReplacePlan(ledger.Plan{Type: ledger.PlanSevenDay, StartDate: start, Duration: 7}); err != nil {
		t.Fatal(err)
	}
	got := s.PlanProgress()
	if got.CurrentDay != 3 || got.TotalDays != 7 {
		t.Errorf("progress = %+v, want day 3 of 7", got)
	}
}

func TestSessionGoals(t *testing.T) {
	m := testManager(t)
	s, err := m.Session(1)
	if err != nil {
		t.Fatal(err)
	}

	if got := s.Goals(); got != (models.MacroTargets{}) {
		t.Errorf("goals before onboarding = %+v, want zero", got)
	}

	if err := s.SaveProfile(models.Profile{FullName: "Riley", Onboarded: true}); err != nil {
		t.Fatal(err)
	}
	targets := models.MacroTargets{Calories: 2100, Protein: 145, Carbs: 210, Fat: 60}
	if err := s.SaveGoals(targets); err != nil {
		t.Fatal(err)
	}

	if got := s.Goals(); got != targets {
		t.Errorf("goals = %+v, want %+v", got, targets)
	}
	p := s.Profile()
	if p == nil || p.FullName != "Riley" {
		t.Errorf("profile fields lost when saving goals: %+v", p)
	}
}

func TestSessionHydratesFromRemote(t *testing.T) {
	db := testDB(t)
	uid := testUser(t, db)
	remote := NewRemoteStore(db)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if err := remote.SetPlan(uid, ledger.Plan{Type: ledger.PlanNinetyDay, StartDate: start, Duration: 90}); err != nil {
		t.Fatal(err)
	}
	day := ledger.InitializeDaySlots()
	day[ledger.SlotSnack] = []ledger.MealEntry{{ID: "m1", Name: "Apple", Calories: 95}}
	if err := remote.SetMealsForDate(uid, "2025-03-01", day); err != nil {
		t.Fatal(err)
	}

	m := NewSessionManager(t.TempDir(), remote, nil)
	s, err := m.Session(uid)
	if err != nil {
		t.Fatal(err)
	}

	plan := s.Plan()
	if plan == nil || plan.Type != ledger.PlanNinetyDay {
		t.Errorf("remote plan not hydrated: %+v", plan)
	}

	got, err := s.MealsForDate("2025-03-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(got[ledger.SlotSnack]) != 1 || got[ledger.SlotSnack][0].Name != "Apple" {
		t.Errorf("remote day not hydrated: %+v", got)
	}
}
