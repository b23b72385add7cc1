package ledger

import (
	"reflect"
	"testing"
	"time"
)

func entry(id string, calories, protein, carbs, fat float64) MealEntry {
	return MealEntry{
		ID:        id,
		Name:      "entry " + id,
		Calories:  calories,
		Protein:   protein,
		Carbs:     carbs,
		Fat:       fat,
		Timestamp: time.Date(2025, 3, 7, 12, 0, 0, 0, time.Local),
	}
}

func TestInitializeDaySlots(t *testing.T) {
	d := InitializeDaySlots()
	if len(d) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(d))
	}
	for _, s := range Slots {
		entries, ok := d[s]
		if !ok {
			t.Fatalf("missing slot %s", s)
		}
		if len(entries) != 0 {
			t.Errorf("slot %s not empty", s)
		}
	}
}

func TestAddMeal(t *testing.T) {
	d := InitializeDaySlots()
	got := AddMeal(d, SlotLunch, entry("a", 500, 30, 40, 10))

	if len(got[SlotLunch]) != 1 {
		t.Fatalf("expected 1 lunch entry, got %d", len(got[SlotLunch]))
	}
	if len(d[SlotLunch]) != 0 {
		t.Errorf("AddMeal mutated its input")
	}
	for _, s := range []Slot{SlotBreakfast, SlotSnack, SlotDinner} {
		if len(got[s]) != 0 {
			t.Errorf("slot %s should be untouched", s)
		}
	}

	// no dedup: repeated identical add appends
	got = AddMeal(got, SlotLunch, entry("a", 500, 30, 40, 10))
	if len(got[SlotLunch]) != 2 {
		t.Errorf("expected 2 lunch entries after repeated add, got %d", len(got[SlotLunch]))
	}
}

func TestRemoveMeal(t *testing.T) {
	d := AddMeal(InitializeDaySlots(), SlotDinner, entry("a", 100, 0, 0, 0))
	d = AddMeal(d, SlotDinner, entry("b", 200, 0, 0, 0))
	d = AddMeal(d, SlotDinner, entry("c", 300, 0, 0, 0))

	got := RemoveMeal(d, SlotDinner, "b")
	if len(got[SlotDinner]) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got[SlotDinner]))
	}
	if got[SlotDinner][0].ID != "a" || got[SlotDinner][1].ID != "c" {
		t.Errorf("entry order not preserved: %v", got[SlotDinner])
	}

	// removing an absent id is a no-op
	same := RemoveMeal(d, SlotDinner, "nope")
	if !reflect.DeepEqual(same, d) {
		t.Errorf("remove of absent id changed the day")
	}
}

func TestAddThenRemove_RoundTrip(t *testing.T) {
	base := AddMeal(InitializeDaySlots(), SlotBreakfast, entry("x", 150, 5, 20, 3))
	added := AddMeal(base, SlotBreakfast, entry("y", 90, 2, 12, 1))
	back := RemoveMeal(added, SlotBreakfast, "y")
	if !reflect.DeepEqual(back, base) {
		t.Errorf("add then remove did not restore the pre-add state")
	}
}

func TestUpdateMeal(t *testing.T) {
	orig := entry("a", 500, 30, 40, 10)
	d := AddMeal(InitializeDaySlots(), SlotLunch, orig)

	name := "grilled chicken"
	calories := 450.0
	got := UpdateMeal(d, SlotLunch, "a", MealUpdate{Name: &name, Calories: &calories})

	updated := got[SlotLunch][0]
	if updated.Name != name || updated.Calories != calories {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.Protein != 30 || updated.Carbs != 40 || updated.Fat != 10 {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if updated.ID != orig.ID || !updated.Timestamp.Equal(orig.Timestamp) {
		t.Errorf("id or timestamp changed: %+v", updated)
	}
	if d[SlotLunch][0].Name != orig.Name {
		t.Errorf("UpdateMeal mutated its input")
	}

	// unknown id is a no-op
	same := UpdateMeal(d, SlotLunch, "nope", MealUpdate{Name: &name})
	if !reflect.DeepEqual(same, d) {
		t.Errorf("update of absent id changed the day")
	}
}

func TestCalculateTotals(t *testing.T) {
	d := AddMeal(InitializeDaySlots(), SlotLunch, entry("a", 500, 30, 40, 10))
	got := CalculateTotals(d)
	want := Totals{Calories: 500, Protein: 30, Carbs: 40, Fat: 10}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	if got := CalculateTotals(InitializeDaySlots()); got != (Totals{}) {
		t.Errorf("empty day should total zero, got %+v", got)
	}
}

// Aggregation is additive across slots: the whole-day total equals the
// elementwise sum of single-slot totals.
func TestCalculateTotals_AdditiveAcrossSlots(t *testing.T) {
	d := InitializeDaySlots()
	d = AddMeal(d, SlotBreakfast, entry("a", 300, 20, 30, 8))
	d = AddMeal(d, SlotLunch, entry("b", 650, 45, 60, 22))
	d = AddMeal(d, SlotSnack, entry("c", 180, 4, 25, 7))
	d = AddMeal(d, SlotDinner, entry("d", 520, 38, 42, 18))

	var sum Totals
	for _, s := range Slots {
		only := InitializeDaySlots()
		for _, e := range d[s] {
			only = AddMeal(only, s, e)
		}
		st := CalculateTotals(only)
		sum.Calories += st.Calories
		sum.Protein += st.Protein
		sum.Carbs += st.Carbs
		sum.Fat += st.Fat
	}

	if got := CalculateTotals(d); got != sum {
		t.Errorf("whole-day total %+v != slot-wise sum %+v", got, sum)
	}
}

func TestNewMealEntry_UniqueIDs(t *testing.T) {
	a := NewMealEntry("oats", 150, 5, 27, 3, "🥣")
	b := NewMealEntry("oats", 150, 5, 27, 3, "🥣")
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct non-empty ids, got %q and %q", a.ID, b.ID)
	}
	if a.Timestamp.IsZero() {
		t.Errorf("expected creation timestamp to be set")
	}
}
