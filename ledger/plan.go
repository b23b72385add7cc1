package ledger

import (
	"math"
	"time"
)

// PlanType is one of the selectable challenge kinds.
type PlanType string

const (
	PlanNinetyDay PlanType = "90-day"
	PlanSevenDay  PlanType = "7-day"
	PlanNoSugar   PlanType = "no-sugar"
	PlanCustom    PlanType = "custom"
)

// Plan is a user-selected challenge: a start instant plus a fixed
// duration in days. At most one plan is active per user; edits replace
// it wholesale.
type Plan struct {
	Type      PlanType  `json:"type"`
	StartDate time.Time `json:"startDate"`
	Duration  int       `json:"duration"`
}

// PlanProgress describes how far into a plan the user is.
type PlanProgress struct {
	CurrentDay int     `json:"currentDay"`
	TotalDays  int     `json:"totalDays"`
	Percentage float64 `json:"percentage"`
}

// GetPlanProgress computes day-by-day progress as of today. The day of
// start counts as day 1. CurrentDay is clamped to [1, duration] so the
// displayed fraction stays well-formed even for future start dates or
// long-expired plans. A nil plan yields the zero progress.
func GetPlanProgress(p *Plan, today time.Time) PlanProgress {
	if p == nil || p.Duration <= 0 {
		return PlanProgress{}
	}

	daysPassed := int(math.Floor(today.Sub(p.StartDate).Hours()/24)) + 1
	currentDay := daysPassed
	if currentDay < 1 {
		currentDay = 1
	}
	if currentDay > p.Duration {
		currentDay = p.Duration
	}

	return PlanProgress{
		CurrentDay: currentDay,
		TotalDays:  p.Duration,
		Percentage: float64(currentDay) / float64(p.Duration) * 100,
	}
}
