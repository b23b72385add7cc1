package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FullName  string
	Gender    string
	Age       int
	Height    float64 // cm
	Weight    float64 // kg
	Activity  string  // sedentary | light | moderate | very | extra
	Goal      string  // cut | maintain | bulk
	Onboarded bool
}
