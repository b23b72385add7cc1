package ledger

import (
	"math"
	"testing"
	"time"
)

func TestGetPlanProgress(t *testing.T) {
	today := time.Date(2025, 3, 7, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		plan     *Plan
		wantDay  int
		wantTot  int
		wantPct  float64
	}{
		{"no plan", nil, 0, 0, 0},
		{
			"started today",
			&Plan{Type: PlanSevenDay, StartDate: today, Duration: 7},
			1, 7, 100.0 / 7,
		},
		{
			"mid plan",
			&Plan{Type: PlanNinetyDay, StartDate: today.AddDate(0, 0, -44), Duration: 90},
			45, 90, 50,
		},
		{
			"expired plan clamps to duration",
			&Plan{Type: PlanSevenDay, StartDate: today.AddDate(0, 0, -10), Duration: 7},
			7, 7, 100,
		},
		{
			"future start clamps up to day one",
			&Plan{Type: PlanNoSugar, StartDate: today.AddDate(0, 0, 5), Duration: 30},
			1, 30, 100.0 / 30,
		},
		{
			"last day",
			&Plan{Type: PlanCustom, StartDate: today.AddDate(0, 0, -6), Duration: 7},
			7, 7, 100,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := GetPlanProgress(test.plan, today)
			if got.CurrentDay != test.wantDay || got.TotalDays != test.wantTot {
				t.Errorf("expected day %d/%d, got %d/%d", test.wantDay, test.wantTot, got.CurrentDay, got.TotalDays)
			}
			if math.Abs(got.Percentage-test.wantPct) > 1e-9 {
				t.Errorf("expected percentage %.4f, got %.4f", test.wantPct, got.Percentage)
			}
		})
	}
}

// CurrentDay stays in [1, D] and Percentage in [100/D, 100] for any
// start date once a plan exists.
func TestGetPlanProgress_Bounds(t *testing.T) {
	today := time.Date(2025, 3, 7, 10, 0, 0, 0, time.Local)
	for _, daysAgo := range []int{-400, -1, 0, 1, 6, 7, 8, 100, 400} {
		p := &Plan{Type: PlanSevenDay, StartDate: today.AddDate(0, 0, -daysAgo), Duration: 7}
		got := GetPlanProgress(p, today)
		if got.CurrentDay < 1 || got.CurrentDay > 7 {
			t.Errorf("start %d days ago: currentDay %d out of [1,7]", daysAgo, got.CurrentDay)
		}
		if got.Percentage < 100.0/7-1e-9 || got.Percentage > 100+1e-9 {
			t.Errorf("start %d days ago: percentage %.4f out of range", daysAgo, got.Percentage)
		}
	}
}
