package models

import (
	"time"

	"gorm.io/gorm"
)

// ActivePlan is the one plan a user may have at a time. Edits replace
// it wholesale; there is no soft delete.
type ActivePlan struct {
	gorm.Model
	UserID    uint   `gorm:"uniqueIndex;not null"`
	Type      string // "90-day" | "7-day" | "no-sugar" | "custom"
	StartDate time.Time
	Duration  int // days, > 0
}
