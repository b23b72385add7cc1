package ledger

import (
	"testing"
	"time"
)

func dayWithOneMeal(id string) DaySlots {
	return AddMeal(InitializeDaySlots(), SlotBreakfast, entry(id, 200, 10, 20, 5))
}

func TestCalculateStreak(t *testing.T) {
	today := time.Date(2025, 3, 7, 9, 0, 0, 0, time.Local)
	key := func(daysAgo int) string { return ToDateKey(today.AddDate(0, 0, -daysAgo)) }

	tests := []struct {
		name   string
		ledger Ledger
		want   int
	}{
		{"empty ledger", Ledger{}, 0},
		{"nil ledger", nil, 0},
		{
			"only today",
			Ledger{key(0): dayWithOneMeal("a")},
			1,
		},
		{
			"today and yesterday",
			Ledger{key(0): dayWithOneMeal("a"), key(1): dayWithOneMeal("b")},
			2,
		},
		{
			"today inactive breaks the streak regardless of history",
			Ledger{key(1): dayWithOneMeal("a"), key(2): dayWithOneMeal("b")},
			0,
		},
		{
			"gap two days back",
			Ledger{key(0): dayWithOneMeal("a"), key(1): dayWithOneMeal("b"), key(3): dayWithOneMeal("c")},
			2,
		},
		{
			"day with empty slots is inactive",
			Ledger{key(0): InitializeDaySlots()},
			0,
		},
		{
			"presence not totals decides activity",
			Ledger{key(0): AddMeal(InitializeDaySlots(), SlotSnack, entry("z", 0, 0, 0, 0))},
			1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := CalculateStreak(test.ledger, today); got != test.want {
				t.Errorf("expected streak %d, got %d", test.want, got)
			}
		})
	}
}

func TestCalculateStreak_BoundedToOneYear(t *testing.T) {
	today := time.Date(2025, 3, 7, 9, 0, 0, 0, time.Local)
	l := Ledger{}
	for i := 0; i < 400; i++ {
		l[ToDateKey(today.AddDate(0, 0, -i))] = dayWithOneMeal("a")
	}
	if got := CalculateStreak(l, today); got != 365 {
		t.Errorf("expected streak capped at 365, got %d", got)
	}
}
