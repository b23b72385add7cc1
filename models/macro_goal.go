package models

import (
	"gorm.io/gorm"
)

// MacroGoal holds a user's daily macro targets.
type MacroGoal struct {
	gorm.Model
	UserID   uint    `gorm:"uniqueIndex;not null"`
	Calories float64 // e.g. 2000 kcal
	Protein  float64 // e.g. 150 g
	Carbs    float64 // e.g. 200 g
	Fat      float64 // e.g. 65 g
}
