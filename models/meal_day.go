package models

import (
	"gorm.io/gorm"
)

// MealDay is the remote copy of one day's slots, stored as a whole
// document per user+date. Writes upsert the full day; the last write
// observed wins.
type MealDay struct {
	gorm.Model
	UserID  uint   `gorm:"index:idx_meal_days_user_date,unique;not null"`
	DateKey string `gorm:"index:idx_meal_days_user_date,unique;type:varchar(10);not null"`
	Slots   string // JSON-encoded {breakfast,lunch,snack,dinner} arrays
}
