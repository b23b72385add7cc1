package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Slot is one of the four fixed meal buckets within a day.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotSnack     Slot = "snack"
	SlotDinner    Slot = "dinner"
)

// Slots lists every slot in display order.
var Slots = []Slot{SlotBreakfast, SlotLunch, SlotSnack, SlotDinner}

// ValidSlot reports whether s names one of the four meal buckets.
func ValidSlot(s Slot) bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotSnack, SlotDinner:
		return true
	}
	return false
}

// MealEntry is a single logged meal. Identity is the ID; the entry is
// immutable except through UpdateMeal, which never touches ID or Timestamp.
type MealEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	Icon      string    `json:"icon,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMealEntry stamps a fresh entry with a unique id and creation time.
func NewMealEntry(name string, calories, protein, carbs, fat float64, icon string) MealEntry {
	return MealEntry{
		ID:        uuid.NewString(),
		Name:      name,
		Calories:  calories,
		Protein:   protein,
		Carbs:     carbs,
		Fat:       fat,
		Icon:      icon,
		Timestamp: time.Now(),
	}
}

// DaySlots maps each slot to its ordered entries (insertion order is
// display order). All four slots are always present, empty by default.
type DaySlots map[Slot][]MealEntry

// InitializeDaySlots returns a day with four empty slots.
func InitializeDaySlots() DaySlots {
	d := make(DaySlots, len(Slots))
	for _, s := range Slots {
		d[s] = []MealEntry{}
	}
	return d
}

// clone copies d so callers always get a fresh value back. A missing
// slot defaults to an empty sequence.
func (d DaySlots) clone() DaySlots {
	out := make(DaySlots, len(Slots))
	for _, s := range Slots {
		entries := d[s]
		cp := make([]MealEntry, len(entries))
		copy(cp, entries)
		out[s] = cp
	}
	return out
}

// AddMeal appends meal to the end of slot's sequence. Other slots are
// untouched. Repeated identical adds produce multiple entries.
func AddMeal(d DaySlots, slot Slot, meal MealEntry) DaySlots {
	out := d.clone()
	out[slot] = append(out[slot], meal)
	return out
}

// RemoveMeal drops the entry with the given id from slot. Unknown ids
// are a no-op, not an error.
func RemoveMeal(d DaySlots, slot Slot, mealID string) DaySlots {
	out := d.clone()
	entries := out[slot]
	kept := make([]MealEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != mealID {
			kept = append(kept, e)
		}
	}
	out[slot] = kept
	return out
}

// MealUpdate carries the fields UpdateMeal may change; nil means "keep".
type MealUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Icon     *string  `json:"icon,omitempty"`
}

// UpdateMeal merges updates into the matching entry, leaving id and
// timestamp untouched. Unknown ids are a no-op.
func UpdateMeal(d DaySlots, slot Slot, mealID string, updates MealUpdate) DaySlots {
	out := d.clone()
	entries := out[slot]
	for i, e := range entries {
		if e.ID != mealID {
			continue
		}
		if updates.Name != nil {
			e.Name = *updates.Name
		}
		if updates.Calories != nil {
			e.Calories = *updates.Calories
		}
		if updates.Protein != nil {
			e.Protein = *updates.Protein
		}
		if updates.Carbs != nil {
			e.Carbs = *updates.Carbs
		}
		if updates.Fat != nil {
			e.Fat = *updates.Fat
		}
		if updates.Icon != nil {
			e.Icon = *updates.Icon
		}
		entries[i] = e
		break
	}
	return out
}

// Totals is the per-day macro sum across all four slots.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// CalculateTotals sums each macro across every entry in every slot.
// The result is the exact sum, no rounding.
func CalculateTotals(d DaySlots) Totals {
	var t Totals
	for _, s := range Slots {
		for _, e := range d[s] {
			t.Calories += e.Calories
			t.Protein += e.Protein
			t.Carbs += e.Carbs
			t.Fat += e.Fat
		}
	}
	return t
}

// EntryCount reports how many entries the day holds across all slots.
func EntryCount(d DaySlots) int {
	n := 0
	for _, s := range Slots {
		n += len(d[s])
	}
	return n
}
