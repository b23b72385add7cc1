package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Shxreef603/Fitly/ledger"
	"github.com/Shxreef603/Fitly/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testLocal(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestSaveMealsWithoutRemote(t *testing.T) {
	local := testLocal(t)
	coord := NewSyncCoordinator(0, local, nil, nil)

	day := ledger.InitializeDaySlots()
	day[ledger.SlotDinner] = []ledger.MealEntry{{ID: "m1", Name: "Curry", Calories: 540}}
	all := ledger.Ledger{"2025-03-01": day}

	if err := coord.SaveMeals(all, "2025-03-01", day); err != nil {
		t.Fatalf("SaveMeals: %v", err)
	}
	coord.Flush()

	if coord.Syncing() {
		t.Error("no remote configured, nothing should be syncing")
	}
	if coord.ConsumeSyncFailed() {
		t.Error("no remote configured, sync must not be flagged failed")
	}

	got, err := coord.LoadLocalMeals()
	if err != nil {
		t.Fatalf("LoadLocalMeals: %v", err)
	}
	if len(got["2025-03-01"][ledger.SlotDinner]) != 1 {
		t.Errorf("local copy missing saved entry: %+v", got)
	}
}

func TestSaveMealsMirrorsRemotely(t *testing.T) {
	db := testDB(t)
	remote := NewRemoteStore(db)
	uid := testUser(t, db)
	coord := NewSyncCoordinator(uid, testLocal(t), remote, nil)

	day := ledger.InitializeDaySlots()
	day[ledger.SlotBreakfast] = []ledger.MealEntry{{ID: "m1", Name: "Toast"}}
	if err := coord.SaveMeals(ledger.Ledger{"2025-03-01": day}, "2025-03-01", day); err != nil {
		t.Fatalf("SaveMeals: %v", err)
	}
	coord.Flush()

	got, ok, err := remote.GetMealsForDate(uid, "2025-03-01")
	if err != nil || !ok {
		t.Fatalf("remote copy missing: ok=%v err=%v", ok, err)
	}
	if got[ledger.SlotBreakfast][0].Name != "Toast" {
		t.Errorf("remote day = %+v", got)
	}
	if coord.ConsumeSyncFailed() {
		t.Error("successful mirror must not set the failure flag")
	}
}

func TestRemoteFailureKeepsLocalAndSetsFlagOnce(t *testing.T) {
	// An unmigrated database makes every remote write fail.
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	coord := NewSyncCoordinator(1, testLocal(t), NewRemoteStore(db), nil)

	day := ledger.InitializeDaySlots()
	day[ledger.SlotLunch] = []ledger.MealEntry{{ID: "m1", Name: "Soup"}}
	if err := coord.SaveMeals(ledger.Ledger{"2025-03-01": day}, "2025-03-01", day); err != nil {
		t.Fatalf("local write must succeed despite broken remote: %v", err)
	}
	coord.Flush()

	got, err := coord.LoadLocalMeals()
	if err != nil {
		t.Fatal(err)
	}
	if len(got["2025-03-01"][ledger.SlotLunch]) != 1 {
		t.Error("local copy lost after remote failure")
	}

	if !coord.ConsumeSyncFailed() {
		t.Error("failure flag not set after remote error")
	}
	if coord.ConsumeSyncFailed() {
		t.Error("failure flag must clear once read")
	}
}

func TestSavePlanRoundTrip(t *testing.T) {
	coord := NewSyncCoordinator(0, testLocal(t), nil, nil)

	if p, err := coord.LoadLocalPlan(); err != nil || p != nil {
		t.Fatalf("expected empty plan, got %+v err=%v", p, err)
	}

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if err := coord.SavePlan(ledger.Plan{Type: ledger.PlanNinetyDay, StartDate: start, Duration: 90}); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	p, err := coord.LoadLocalPlan()
	if err != nil || p == nil {
		t.Fatalf("LoadLocalPlan: %v", err)
	}
	if p.Type != ledger.PlanNinetyDay || p.Duration != 90 || !p.StartDate.Equal(start) {
		t.Errorf("plan = %+v", p)
	}
}

func TestSaveProfileRoundTrip(t *testing.T) {
	coord := NewSyncCoordinator(0, testLocal(t), nil, nil)

	profile := models.Profile{
		FullName: "Sam",
		Macros:   models.MacroTargets{Calories: 2200, Protein: 150, Carbs: 230, Fat: 61},
	}
	if err := coord.SaveProfile(profile); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	got, err := coord.LoadLocalProfile()
	if err != nil || got == nil {
		t.Fatalf("LoadLocalProfile: %v", err)
	}
	if got.FullName != "Sam" || got.Macros.Protein != 150 {
		t.Errorf("profile = %+v", got)
	}
}
